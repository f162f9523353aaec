package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// errorResponse maps a sentinel error to the status and message sent to the
// client. An empty message means the sentinel's own text is shown.
type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is checked in order; the first match wins.
var errorResponses = []errorResponse{
	{target: utils.ErrInvalidJSON, status: http.StatusBadRequest, message: msgInvalidJSON},

	{target: validators.ErrEmailRequired, status: http.StatusBadRequest},
	{target: validators.ErrUsernameRequired, status: http.StatusBadRequest},
	{target: validators.ErrPasswordRequired, status: http.StatusBadRequest},
	{target: validators.ErrTitleRequired, status: http.StatusBadRequest},
	{target: validators.ErrContentRequired, status: http.StatusBadRequest},
	{target: validators.ErrNoChangesProvided, status: http.StatusBadRequest},
	{target: validators.ErrSearchQueryRequired, status: http.StatusBadRequest},

	{target: service.ErrWrongPassword, status: http.StatusBadRequest, message: msgInvalidCredentials},
	{target: service.ErrTokenIsExpiredOrInvalid, status: http.StatusUnauthorized, message: http.StatusText(http.StatusUnauthorized)},

	// duplicate accounts are a soft failure: 200 with error=true
	{target: store.ErrUserAlreadyExists, status: http.StatusOK, message: msgUserAlreadyExists},
	{target: store.ErrNoteNotFound, status: http.StatusNotFound, message: msgNoteDoesNotExist},
	{target: store.ErrNoUserWasFound, status: http.StatusNotFound, message: msgUserDoesNotExist},
}

// responseFromError returns the status and client message for err.
// Unknown errors become 500 "Internal Server Error.".
func responseFromError(err error) (int, string) {
	for _, resp := range errorResponses {
		if errors.Is(err, resp.target) {
			if resp.message == "" {
				return resp.status, resp.target.Error()
			}
			return resp.status, resp.message
		}
	}

	return http.StatusInternalServerError, msgInternalServerError
}

// writeError logs err and answers with the JSON envelope mapped from it.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("uri", r.RequestURI).Msg("unexpected error occurred")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	writeEnvelope(w, status, true, message)
}

func writeEnvelope(w http.ResponseWriter, status int, isError bool, message string) {
	utils.WriteJSON(w, models.Envelope{Error: isError, Message: message}, status)
}
