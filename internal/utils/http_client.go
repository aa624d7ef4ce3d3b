package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is the resty client used by the CLI adapter.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a JSON client for baseURL. A zero timeout leaves
// resty's default.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &HTTPClient{Client: c}
}
