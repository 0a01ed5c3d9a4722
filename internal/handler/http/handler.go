package http

import (
	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/service"
)

type Handler struct {
	services *service.Services

	files  config.Files
	server config.Server

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		files:    cfg.Storage.Files,
		server:   cfg.Server,
		logger:   logger,
	}
}
