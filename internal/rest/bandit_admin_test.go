package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"multiarm/domain"
	"multiarm/internal/repository/memory"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRequest(t *testing.T, h *BanditAdminHandler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if method == http.MethodGet {
		require.NoError(t, h.GetDefaults(c))
	} else {
		require.NoError(t, h.UpsertDefaults(c))
	}
	return rec
}

func TestAdminDefaults_GetMissing(t *testing.T) {
	h := NewBanditAdminHandler(memory.NewBanditDefaultsRepository())

	rec := adminRequest(t, h, http.MethodGet, "/api/v1/admin/bandit/defaults?subtype=epsilon_first", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminDefaults_GetRequiresSubtype(t *testing.T) {
	h := NewBanditAdminHandler(memory.NewBanditDefaultsRepository())

	rec := adminRequest(t, h, http.MethodGet, "/api/v1/admin/bandit/defaults", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminDefaults_UpsertThenGet(t *testing.T) {
	h := NewBanditAdminHandler(memory.NewBanditDefaultsRepository())

	rec := adminRequest(t, h, http.MethodPut, "/api/v1/admin/bandit/defaults",
		`{"subtype": "epsilon_first", "epsilon": 0.2, "total_samples": 500}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = adminRequest(t, h, http.MethodGet, "/api/v1/admin/bandit/defaults?subtype=epsilon_first", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var d domain.BanditDefaults
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &d))
	assert.Equal(t, "epsilon_first", d.Subtype)
	assert.Equal(t, 0.2, d.Epsilon)
	assert.Equal(t, 500.0, d.TotalSamples)
}

func TestAdminDefaults_UpsertValidation(t *testing.T) {
	h := NewBanditAdminHandler(memory.NewBanditDefaultsRepository())

	tests := []struct {
		name string
		body string
	}{
		{"missing subtype", `{"epsilon": 0.2, "total_samples": 500}`},
		{"unknown subtype", `{"subtype": "greedy", "epsilon": 0.2, "total_samples": 500}`},
		{"epsilon out of range", `{"subtype": "epsilon_first", "epsilon": 2, "total_samples": 500}`},
		{"total_samples not positive", `{"subtype": "epsilon_first", "epsilon": 0.2, "total_samples": 0}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := adminRequest(t, h, http.MethodPut, "/api/v1/admin/bandit/defaults", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
