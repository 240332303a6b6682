package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-file-crypt/models"
)

// decodeEnvelope checks the envelope of resp and decodes the body into out.
// The status code is not trusted on its own: the server always answers
// with an envelope, so a body that is not one is a transport failure.
func decodeEnvelope(op string, resp *resty.Response, out any) error {
	body := resp.Body()

	var env models.Envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("unexpected response (HTTP %d): %w", resp.StatusCode(), err)}
	}

	if !env.Success {
		return envelopeError(resp.StatusCode(), env.Error)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &NetworkError{Op: op, Err: fmt.Errorf("unexpected response: %w", err)}
	}

	return nil
}

func envelopeError(status int, message string) *EnvelopeError {
	message = strings.TrimSpace(message)
	if message == "" {
		message = http.StatusText(status)
	}
	return &EnvelopeError{StatusCode: status, Message: message}
}
