package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-smtp-mailer/internal/utils"
)

// mapHTTPError returns nil for 2xx responses. Otherwise the status is mapped
// to a sentinel error and the server's message is appended.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	message := errorMessage(resp)

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, message)
	case http.StatusUnauthorized:
		return fmt.Errorf("%w: %s", ErrUnauthorized, message)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, message)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, message)
	case http.StatusServiceUnavailable:
		return fmt.Errorf("%w: %s", ErrServiceUnavailable, message)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, message)
	default:
		return fmt.Errorf("http %d: %s", resp.StatusCode(), message)
	}
}

// errorMessage extracts the "error" field of a JSON error body, falling back
// to the raw body and then to the status text.
func errorMessage(resp *resty.Response) string {
	body := strings.TrimSpace(string(resp.Body()))

	var e utils.ErrorResponse
	if err := json.Unmarshal([]byte(body), &e); err == nil && e.Error != "" {
		return e.Error
	}
	if body == "" {
		return http.StatusText(resp.StatusCode())
	}
	return body
}
