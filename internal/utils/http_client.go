package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// Header values shared by every data API request.
const (
	HeaderContentType = "Content-Type"
	HeaderAccept      = "Accept"
	MIMEJSON          = "application/json"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient with a default-configured resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewJSONHTTPClient creates an HTTPClient bound to baseURL that sends and
// accepts JSON on every request. A zero timeout leaves requests unbounded.
//
// Example usage:
//
//	client := utils.NewJSONHTTPClient("http://localhost:3000", 5*time.Second)
//	resp, err := client.R().Get("/users")
func NewJSONHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeaders(map[string]string{
			HeaderContentType: MIMEJSON,
			HeaderAccept:      MIMEJSON,
		})

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return client
}
