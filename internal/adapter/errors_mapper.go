package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/user-admin/models"
	"github.com/go-resty/resty/v2"
)

func isSuccess(resp *resty.Response) bool {
	return resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices
}

func isCreated(resp *resty.Response) bool {
	return resp.StatusCode() == http.StatusOK || resp.StatusCode() == http.StatusCreated
}

// mapCreationError builds a [*CreationError] from a rejected register_user
// response.
func mapCreationError(resp *resty.Response) *CreationError {
	return &CreationError{
		StatusCode: resp.StatusCode(),
		Message:    extractErrorMessage(resp.Body()),
	}
}

// extractErrorMessage returns the "message" field of a JSON error body. When
// the body is not a JSON object or has no message, the raw text is returned.
func extractErrorMessage(body []byte) string {
	var errResp models.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != nil {
		if msg, ok := errResp.Message.(string); ok {
			return msg
		}
		return fmt.Sprint(errResp.Message)
	}

	return string(body)
}

func mapLocationError(resp *resty.Response) error {
	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("%w: http %d: %s", ErrLocationNotSaved, resp.StatusCode(), body)
}
