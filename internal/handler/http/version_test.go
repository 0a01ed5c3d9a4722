package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/MKhiriev/go-recipe-box/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetServerVersion(t *testing.T) {
	h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{version: "1.2.3"}})

	rec := serve(t, h, http.MethodGet, "/api/version", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
}

func TestHealth(t *testing.T) {
	want := models.Health{
		Status:         "ok",
		PID:            42,
		Uptime:         1.5,
		FrontendDir:    "/srv/frontend",
		FrontendExists: true,
		Database:       "uninitialized",
		Version:        "1.2.3",
	}
	h := newTestHandler(t, &service.Services{AppInfoService: &fakeAppInfoService{health: want}})

	rec := serve(t, h, http.MethodGet, "/health", "")

	require.Equal(t, http.StatusOK, rec.Code)

	var got models.Health
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
	assert.Contains(t, rec.Body.String(), `"frontendExists":true`)
}
