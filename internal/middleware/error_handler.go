package middleware

import (
	"net/http"
	"strings"

	"multiarm/pkg/logger"

	jsonres "multiarm/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler normalizes errors that escape the handlers into the shared
// response envelope.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	msg := "Internal server error"
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			msg = m
		}
	}

	logger.Error("Unhandled request error", "status", code, "error", err)

	_ = c.JSON(code, jsonres.Error(statusCode(code), msg, nil))
}

func statusCode(code int) string {
	text := http.StatusText(code)
	if text == "" {
		return "ERROR"
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}
