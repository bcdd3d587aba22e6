package handler

import (
	"github.com/MKhiriev/user-admin/internal/config"
	"github.com/MKhiriev/user-admin/internal/flash"
	"github.com/MKhiriev/user-admin/internal/handler/http"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/internal/service"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, flashStore flash.Store, registry *prometheus.Registry, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, flashStore, registry, logger).AllowOrigins(cfg.AllowedOrigins...),
	}, nil
}
