package http

import (
	"io"
	"net/http"

	"github.com/MKhiriev/user-admin/internal/logger"
)

// getServerVersion answers the build version as plain text.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := io.WriteString(w, serverVersion); err != nil {
		logger.FromRequest(r).Warn().Err(err).Msg("failed to write version")
	}
}
