package rest

import (
	"net/http"

	"multiarm/business/bandit"
	"multiarm/domain"

	"github.com/labstack/echo/v4"
)

type BanditAdminHandler struct {
	defaultsRepo bandit.DefaultsRepository
}

func NewBanditAdminHandler(defaultsRepo bandit.DefaultsRepository) *BanditAdminHandler {
	return &BanditAdminHandler{
		defaultsRepo: defaultsRepo,
	}
}

// GET /api/v1/admin/bandit/defaults?subtype=epsilon_first
func (h *BanditAdminHandler) GetDefaults(c echo.Context) error {
	ctx := c.Request().Context()

	subtype := c.QueryParam("subtype")
	if subtype == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "subtype is required",
		})
	}

	d, ok, err := h.defaultsRepo.GetDefaults(ctx, subtype)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{
			"error": "defaults not found",
		})
	}

	return c.JSON(http.StatusOK, d)
}

// PUT /api/v1/admin/bandit/defaults
// body: BanditDefaults JSON
func (h *BanditAdminHandler) UpsertDefaults(c echo.Context) error {
	ctx := c.Request().Context()

	var body domain.BanditDefaults
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "invalid body: " + err.Error(),
		})
	}
	if body.Subtype == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "subtype is required",
		})
	}
	if !bandit.KnownSubtype(body.Subtype) {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "unknown subtype",
		})
	}
	if body.Epsilon < 0 || body.Epsilon > 1 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "epsilon must be in [0, 1]",
		})
	}
	if body.TotalSamples <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "total_samples must be positive",
		})
	}

	if err := h.defaultsRepo.UpsertDefaults(ctx, body); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "ok",
	})
}
