package middleware

import (
	"multiarm/business/bandit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TraceID assigns a request-scoped trace id, preferring an incoming
// X-Request-ID header over a freshly generated uuid. The id flows through
// the request context into the engine's debug logs.
func TraceID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tid := c.Request().Header.Get(echo.HeaderXRequestID)
			if tid == "" {
				tid = uuid.NewString()
			}

			ctx := bandit.ContextWithTraceID(c.Request().Context(), tid)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(echo.HeaderXRequestID, tid)

			return next(c)
		}
	}
}
