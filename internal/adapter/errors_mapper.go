package adapter

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for a successful call. A 2xx response with
// "error": true (the duplicate account case) is a failure too.
func mapHTTPError(resp *resty.Response) error {
	var envelope models.Envelope
	hasEnvelope := json.Unmarshal(resp.Body(), &envelope) == nil

	if resp.IsSuccess() {
		if hasEnvelope && envelope.Error {
			return &APIError{Status: resp.StatusCode(), Message: envelope.Message}
		}
		return nil
	}

	message := envelope.Message
	if !hasEnvelope || message == "" {
		message = strings.TrimSpace(string(resp.Body()))
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode())
	}

	return &APIError{Status: resp.StatusCode(), Message: message}
}
