package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	cfg := testConfig(t)
	log := logger.Nop()

	h := NewHandler(svc, cfg, log)

	require.NotNil(t, h)
	assert.Equal(t, svc, h.services)
	assert.Equal(t, cfg.Storage.Files, h.files)
	assert.Equal(t, cfg.Server, h.server)
	assert.Equal(t, log, h.logger)
}

// ─────────────────────────────────────────────
// Init: route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
}

// protected routes reach the auth middleware and answer 401 without a token
var protectedRoutes = []routeCase{
	{http.MethodPost, "/api/recipes"},
	{http.MethodPut, "/api/recipes/1"},
	{http.MethodDelete, "/api/recipes/1"},
	{http.MethodGet, "/api/favorites"},
	{http.MethodGet, "/api/favorites/ids"},
	{http.MethodPost, "/api/favorites/1"},
	{http.MethodPost, "/api/upload"},
}

func TestInit_ProtectedRoutesRequireToken(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range protectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"No token provided"}`, rec.Body.String())
		})
	}
}

func TestInit_AdminRoutesRejectRegularUsers(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range []routeCase{
		{http.MethodPost, "/api/recipes"},
		{http.MethodPut, "/api/recipes/1"},
		{http.MethodDelete, "/api/recipes/1"},
		{http.MethodPost, "/api/upload"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", "Bearer "+userToken)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusForbidden, rec.Code)
			assert.JSONEq(t, `{"error":"Admin only"}`, rec.Body.String())
		})
	}
}

func TestInit_UnknownAPIRouteReturnsJSON404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not found"}`, rec.Body.String())
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	for _, tc := range []routeCase{
		{http.MethodPost, "/api/version"},
		{http.MethodGet, "/api/contact"},
		{http.MethodPost, "/health"},
	} {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_SetsTraceAndCORSHeaders(t *testing.T) {
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "test-version", rec.Body.String())
}

func TestInit_RecoversFromHandlerPanic(t *testing.T) {
	// RecipeService is nil, so the list handler panics
	router := newTestHandler(t, &service.Services{}).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/recipes", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Server error"}`, rec.Body.String())
}
