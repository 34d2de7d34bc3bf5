package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/japb1998/outreach-crm/internal/api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndListClients(t *testing.T) {
	r := api.InitRoutes()

	body := `{"name":"Acme","email":"a@acme.io","preferredChannel":"email"}`
	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Acme", created["name"])
	assert.NotZero(t, created["id"])
	assert.NotEmpty(t, created["createdAt"])

	req = httptest.NewRequest(http.MethodGet, "/api/clients", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var listed struct {
		Records []map[string]any `json:"records"`
		Count   int              `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listed))
	assert.GreaterOrEqual(t, listed.Count, 1)
}

func TestCreateClientValidation(t *testing.T) {
	r := api.InitRoutes()

	req := httptest.NewRequest(http.MethodPost, "/api/clients", strings.NewReader(`{"name":"Acme"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var payload struct {
		Errors []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	require.NotEmpty(t, payload.Errors)
	assert.Equal(t, "Email", payload.Errors[0].Field)
}

func TestCreateFollowUpRejectsBadTimestamp(t *testing.T) {
	r := api.InitRoutes()

	body := `{"clientId":1,"subject":"check in","channel":"email","scheduledFor":"next tuesday"}`
	req := httptest.NewRequest(http.MethodPost, "/api/follow-ups", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "RFC3339")
}

func TestUnknownClientAnswers404(t *testing.T) {
	r := api.InitRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/clients/99999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmailStatusUnconfigured(t *testing.T) {
	r := api.InitRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/email/status", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var status struct {
		IsValid bool   `json:"isValid"`
		Error   string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.False(t, status.IsValid)
	assert.NotEmpty(t, status.Error)
}

func TestDashboardStatsShape(t *testing.T) {
	r := api.InitRoutes()

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var stats map[string]int
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	for _, key := range []string{"totalClients", "pendingFollowUps", "sentThisWeek", "responseRate"} {
		_, ok := stats[key]
		assert.True(t, ok, "missing %s", key)
	}
}
