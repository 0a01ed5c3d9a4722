package handler

import (
	"testing"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	cfg := &config.StructuredConfig{Server: config.Server{HTTPAddress: ":5000"}}

	h, err := NewHandlers(&service.Services{}, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, &config.StructuredConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
