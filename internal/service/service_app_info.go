package service

import (
	"context"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

type appInfoService struct {
	serviceName string
	appVersion  string

	logger *logger.Logger
}

// NewAppInfoService constructs an AppInfoService from the application
// identity settings. An unset version is reported as "N/A".
func NewAppInfoService(cfg config.App, logger *logger.Logger) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{
		serviceName: cfg.ServiceName,
		appVersion:  version,
		logger:      logger,
	}
}

func (s *appInfoService) GetServiceName(ctx context.Context) string {
	return s.serviceName
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}
