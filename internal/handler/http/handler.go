package http

import (
	"github.com/MKhiriev/go-api-scaffold/internal/auth"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
)

type Handler struct {
	services   *service.Services
	authorizer *auth.Authorizer

	logger *logger.Logger
}

func NewHandler(services *service.Services, authorizer *auth.Authorizer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		authorizer: authorizer,
		logger:     logger,
	}
}
