package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-api-scaffold/internal/config"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
)

// TestAppInfoService verifies service name passthrough and the "N/A"
// fallback for an unset version.
func TestAppInfoService(t *testing.T) {
	tests := []struct {
		name        string
		cfg         config.App
		wantName    string
		wantVersion string
	}{
		{
			name:        "name and version set",
			cfg:         config.App{ServiceName: "go-api-scaffold", Version: "1.2.3"},
			wantName:    "go-api-scaffold",
			wantVersion: "1.2.3",
		},
		{
			name:        "version unset falls back",
			cfg:         config.App{ServiceName: "go-api-scaffold"},
			wantName:    "go-api-scaffold",
			wantVersion: "N/A",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewAppInfoService(tt.cfg, logger.Nop())
			ctx := context.Background()

			assert.Equal(t, tt.wantName, svc.GetServiceName(ctx))
			assert.Equal(t, tt.wantVersion, svc.GetAppVersion(ctx))
		})
	}
}
