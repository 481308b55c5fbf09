package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-phone-auth/models"
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	respErr := &ResponseError{
		StatusCode: resp.StatusCode(),
		Message:    responseMessage(resp.Body()),
	}

	switch {
	case resp.StatusCode() == http.StatusBadRequest:
		respErr.kind = ErrBadRequest
	case resp.StatusCode() == http.StatusUnauthorized:
		respErr.kind = ErrUnauthorized
	case resp.StatusCode() == http.StatusNotFound:
		respErr.kind = ErrNotFound
	case resp.StatusCode() >= http.StatusInternalServerError:
		respErr.kind = ErrServerError
	default:
		respErr.kind = ErrUnexpected
	}

	return respErr
}

// responseMessage extracts {"message": ...} from body and falls back to the
// raw text for non-JSON bodies.
func responseMessage(body []byte) string {
	var msg models.MessageResponse
	if err := json.Unmarshal(body, &msg); err == nil && msg.Message != "" {
		return msg.Message
	}
	return strings.TrimSpace(string(body))
}
