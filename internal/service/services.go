package service

import (
	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
)

// Services bundles the business-logic layer handed to the HTTP handlers.
// Users is nil when no database is configured; the route composer treats
// that as "persistence feature disabled" and does not mount the user routes.
type Services struct {
	Users   UserService
	AppInfo AppInfoService
}

// NewServices constructs all services. storages may be nil when the
// persistence feature is off.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	services := &Services{
		AppInfo: NewAppInfoService(cfg.App, logger),
	}

	if storages != nil {
		services.Users = NewUserService(storages.Users, logger)
	}

	return services
}
