package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/user-admin/internal/service"
)

var errorStatusMap = map[error]int{
	ErrMalformedUserID:       http.StatusNotFound,
	service.ErrInvalidUserID: http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
