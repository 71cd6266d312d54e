package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/hubdispo/hubdispo/internal/account"
	"github.com/hubdispo/hubdispo/internal/models"
	"github.com/hubdispo/hubdispo/internal/synth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct{ err error }

func (s stubChecker) HealthCheck(ctx context.Context) error { return s.err }

func newTestServer(t *testing.T, opts ...Option) *Server {
	t.Helper()
	now := time.Date(2025, time.May, 12, 10, 0, 0, 0, time.UTC)
	g := synth.New(synth.WithSeed(99), synth.WithClock(func() time.Time { return now }))
	ds, err := synth.Build(g, synth.DefaultCounts())
	require.NoError(t, err)

	accounts, err := account.NewService(account.NewMemoryStorage(), 0, nil)
	require.NoError(t, err)

	return NewServer(ds, accounts, nil, opts...)
}

func do(t *testing.T, s *Server, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func TestHealth(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode[map[string]any](t, rec)["status"])

	down := newTestServer(t, WithHealthCheck(stubChecker{err: errors.New("refused")}))
	rec = do(t, down, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestDashboard(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	stats := decode[map[string]any](t, rec)
	assert.EqualValues(t, 50, stats["totalShipments"])
	assert.EqualValues(t, 2, stats["criticalAlerts"])
}

func TestListShipments(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/shipments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[struct {
		Shipments []models.Shipment `json:"shipments"`
		Count     int               `json:"count"`
	}](t, rec)
	assert.Equal(t, 50, all.Count)
	assert.Len(t, all.Shipments, 50)

	rec = do(t, s, http.MethodGet, "/api/shipments?sort=value&order=desc&limit=5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	top := decode[struct {
		Shipments []models.Shipment `json:"shipments"`
	}](t, rec)
	require.Len(t, top.Shipments, 5)
	for i := 1; i < len(top.Shipments); i++ {
		assert.GreaterOrEqual(t, top.Shipments[i-1].Value, top.Shipments[i].Value)
	}
}

func TestListShipments_BadQuery(t *testing.T) {
	s := newTestServer(t)

	for _, target := range []string{
		"/api/shipments?sort=colour",
		"/api/shipments?order=sideways",
		"/api/shipments?limit=ten",
		"/api/shipments?offset=-1",
	} {
		rec := do(t, s, http.MethodGet, target, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Contains(t, decode[map[string]string](t, rec), "error", target)
	}
}

func TestListHugeLimit(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/shipments?offset=1&limit=9223372036854775807", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 49, decode[map[string]any](t, rec)["count"])

	rec = do(t, s, http.MethodGet, "/api/consolidations?offset=1&limit=9223372036854775807", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 7, decode[map[string]any](t, rec)["count"])
}

func TestGetShipment(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/shipments/SHP-000001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "SHP-000001", decode[models.Shipment](t, rec).ID)

	rec = do(t, s, http.MethodGet, "/api/shipments/SHP-999999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestConsolidations(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/consolidations?sort=savings&order=desc", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[struct {
		Groups []models.ConsolidationGroup `json:"consolidationGroups"`
	}](t, rec)
	require.Len(t, list.Groups, 8)
	assert.GreaterOrEqual(t, list.Groups[0].EstimatedSavings, list.Groups[7].EstimatedSavings)

	rec = do(t, s, http.MethodGet, "/api/consolidations/CONS-001", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	detail := decode[map[string]any](t, rec)
	assert.LessOrEqual(t, detail["loadPercent"].(float64), 80.0)

	rec = do(t, s, http.MethodGet, "/api/consolidations/CONS-999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListAlerts(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/alerts?severity=critical", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	critical := decode[struct {
		Alerts []models.Alert `json:"alerts"`
	}](t, rec)
	require.Len(t, critical.Alerts, 2)
	assert.Equal(t, "ALT-002", critical.Alerts[0].ID)
	assert.Equal(t, "ALT-011", critical.Alerts[1].ID)

	rec = do(t, s, http.MethodGet, "/api/alerts?limit=3", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, decode[map[string]any](t, rec)["count"])

	rec = do(t, s, http.MethodGet, "/api/alerts?action_required=maybe", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAuthFlow(t *testing.T) {
	s := newTestServer(t)

	rec := do(t, s, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/auth/login", map[string]string{
		"email": account.DemoEmail, "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/auth/login", map[string]string{
		"email": account.DemoEmail, "password": account.DemoPassword,
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, account.DemoEmail, decode[models.UserProfile](t, rec).Email)

	rec = do(t, s, http.MethodGet, "/api/auth/me", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Demo", decode[models.UserProfile](t, rec).FirstName)

	rec = do(t, s, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, s, http.MethodGet, "/api/auth/me", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRegister(t *testing.T) {
	s := newTestServer(t)
	form := map[string]string{
		"email":     "Lise@Example.be",
		"password":  "s3cret",
		"firstName": "Lise",
		"lastName":  "Peeters",
		"company":   "Peeters BV",
	}

	rec := do(t, s, http.MethodPost, "/api/auth/register", form)
	require.Equal(t, http.StatusCreated, rec.Code)
	profile := decode[models.UserProfile](t, rec)
	assert.Equal(t, "lise@example.be", profile.Email)
	assert.Equal(t, models.PlanStarter, profile.Plan)

	rec = do(t, s, http.MethodPost, "/api/auth/register", form)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = do(t, s, http.MethodPost, "/api/auth/register", map[string]string{"email": "x@y.be"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	form["email"] = "long@example.be"
	form["password"] = strings.Repeat("p", 80)
	rec = do(t, s, http.MethodPost, "/api/auth/register", form)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decode[map[string]string](t, rec)["error"], "72 bytes")
}

func TestShutdownBeforeStart(t *testing.T) {
	assert.NoError(t, newTestServer(t).Shutdown(context.Background()))
}
