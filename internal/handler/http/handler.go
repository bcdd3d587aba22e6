package http

import (
	"strings"

	"github.com/MKhiriev/user-admin/internal/flash"
	"github.com/MKhiriev/user-admin/internal/logger"
	"github.com/MKhiriev/user-admin/internal/service"
	"github.com/go-playground/form/v4"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services *service.Services
	flash    flash.Store
	decoder  *form.Decoder
	views    *views
	metrics  *requestMetrics
	registry *prometheus.Registry

	allowedOrigins []string

	logger *logger.Logger
}

// NewHandler builds the front-end handler. Request metrics are registered on
// registry, which is also what GET /metrics exposes. A nil registry disables
// both.
func NewHandler(services *service.Services, flashStore flash.Store, registry *prometheus.Registry, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		flash:    flashStore,
		decoder:  newFormDecoder(),
		views:    mustParseViews(),
		registry: registry,
		logger:   logger,
	}
	if registry != nil {
		h.metrics = newRequestMetrics(registry)
	}

	logger.Info().Bool("metrics", h.metrics != nil).Msg("http handler created")
	return h
}

// newFormDecoder returns a form decoder that trims surrounding whitespace
// from every submitted string value.
func newFormDecoder() *form.Decoder {
	decoder := form.NewDecoder()
	decoder.RegisterCustomTypeFunc(func(values []string) (any, error) {
		if len(values) == 0 {
			return "", nil
		}
		return strings.TrimSpace(values[0]), nil
	}, "")
	return decoder
}

// AllowOrigins enables CORS for the given origins on every route. Without
// origins no CORS headers are sent.
func (h *Handler) AllowOrigins(origins ...string) *Handler {
	h.allowedOrigins = origins
	return h
}
