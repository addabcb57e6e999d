package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"multiarm/business/bandit"
	"multiarm/domain"
	"multiarm/pkg/metrics"

	jsonres "multiarm/pkg/response"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const banditEpsilonEndpoint = "bandit_epsilon"

type (
	BanditHandler struct {
		validate  *validator.Validate
		allocator AllocatorService
	}

	AllocatorService interface {
		Allocate(ctx context.Context, subtype string, hist domain.HistoricalInfo, rawHyperparams map[string]any) (domain.Allocation, string, error)
	}

	SampledArmPayload struct {
		Win   float64 `json:"win" validate:"gte=0"`
		Loss  float64 `json:"loss" validate:"gte=0"`
		Total float64 `json:"total" validate:"gte=0"`
	}

	HistoricalInfoPayload struct {
		ArmsSampled map[string]SampledArmPayload `json:"arms_sampled" validate:"dive"`
	}

	BanditEpsilonRequest struct {
		Subtype            string                `json:"subtype"`
		HistoricalInfo     HistoricalInfoPayload `json:"historical_info"`
		HyperparameterInfo map[string]any        `json:"hyperparameter_info"`
	}

	BanditEpsilonResponse struct {
		Endpoint string            `json:"endpoint"`
		Arms     domain.Allocation `json:"arms"`
		Winner   string            `json:"winner"`
	}
)

func NewBanditHandler(svc AllocatorService) *BanditHandler {
	return &BanditHandler{
		validate:  validator.New(),
		allocator: svc,
	}
}

// Allocate handles POST /bandit/epsilon: it predicts the optimal arm from a
// set of arms given historical data, responding with the full allocation and
// the chosen winner.
func (h *BanditHandler) Allocate(c echo.Context) error {
	start := time.Now()

	var req BanditEpsilonRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	}
	if err := h.validate.Struct(&req); err != nil {
		return c.JSON(http.StatusBadRequest, jsonres.Error("BAD_REQUEST", err.Error(), nil))
	}
	if len(req.HistoricalInfo.ArmsSampled) == 0 {
		return c.JSON(http.StatusBadRequest, jsonres.Error(
			"EMPTY_HISTORY", "historical_info.arms_sampled must contain at least one arm", nil,
		))
	}

	hist := domain.HistoricalInfo{
		ArmsSampled: make(map[string]domain.SampledArm, len(req.HistoricalInfo.ArmsSampled)),
	}
	for name, arm := range req.HistoricalInfo.ArmsSampled {
		hist.ArmsSampled[name] = domain.SampledArm{Win: arm.Win, Loss: arm.Loss, Total: arm.Total}
	}

	alloc, winner, err := h.allocator.Allocate(c.Request().Context(), req.Subtype, hist, req.HyperparameterInfo)
	if err != nil {
		return h.allocationError(c, err)
	}

	metrics.AllocationTotal.Inc()
	metrics.AllocationDuration.Observe(time.Since(start).Seconds())

	return c.JSON(http.StatusOK, BanditEpsilonResponse{
		Endpoint: banditEpsilonEndpoint,
		Arms:     alloc,
		Winner:   winner,
	})
}

// allocationError maps each engine failure to its own client-facing error
// code instead of a generic 500.
func (h *BanditHandler) allocationError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, bandit.ErrEmptyHistory):
		return c.JSON(http.StatusBadRequest, jsonres.Error("EMPTY_HISTORY", err.Error(), nil))
	case errors.Is(err, bandit.ErrUnknownSubtype):
		return c.JSON(http.StatusBadRequest, jsonres.Error("UNKNOWN_SUBTYPE", err.Error(), nil))
	case errors.Is(err, bandit.ErrInvalidHyperparameters):
		return c.JSON(http.StatusBadRequest, jsonres.Error("INVALID_HYPERPARAMETERS", err.Error(), nil))
	case errors.Is(err, bandit.ErrInvalidAllocation):
		return c.JSON(http.StatusInternalServerError, jsonres.Error("INVALID_ALLOCATION", err.Error(), nil))
	default:
		return c.JSON(http.StatusInternalServerError, jsonres.Error("INTERNAL_ERROR", err.Error(), nil))
	}
}

// Pretty handles GET /bandit/epsilon/pretty: a browsable example
// request/response pair for the endpoint.
func (h *BanditHandler) Pretty(c echo.Context) error {
	exampleRequest := BanditEpsilonRequest{
		Subtype: bandit.SubtypeEpsilonFirst,
		HistoricalInfo: HistoricalInfoPayload{
			ArmsSampled: map[string]SampledArmPayload{
				"arm1": {Win: 20, Loss: 5, Total: 25},
				"arm2": {Win: 20, Loss: 10, Total: 30},
				"arm3": {Win: 0, Loss: 0, Total: 0},
			},
		},
		HyperparameterInfo: map[string]any{
			"epsilon":       bandit.DefaultEpsilon,
			"total_samples": bandit.DefaultTotalSamples,
		},
	}
	exampleResponse := BanditEpsilonResponse{
		Endpoint: banditEpsilonEndpoint,
		Arms:     domain.Allocation{"arm1": 1.0, "arm2": 0.0, "arm3": 0.0},
		Winner:   "arm1",
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(echo.Map{
		"endpoint":         banditEpsilonEndpoint,
		"subtypes":         bandit.Subtypes(),
		"example_request":  exampleRequest,
		"example_response": exampleResponse,
	}))
}
