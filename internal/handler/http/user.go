package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.UserService.GetUser(r.Context(), userID)
	if err != nil {
		// a valid token of a deleted account
		if errors.Is(err, store.ErrNoUserWasFound) {
			writeEnvelope(w, http.StatusUnauthorized, true, msgUserDoesNotExist)
			return
		}
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{
		Envelope: models.Envelope{Error: false, Message: msgUserFound},
		User:     user,
	}, http.StatusOK)
}

// logout deletes the caller's account. See UserService.Logout.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	callerID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	userID := chi.URLParam(r, "userId")
	if !utils.IsValidID(userID) {
		writeError(w, r, store.ErrNoUserWasFound)
		return
	}

	if err := h.services.UserService.Logout(r.Context(), callerID, userID); err != nil {
		writeError(w, r, err)
		return
	}

	writeEnvelope(w, http.StatusOK, false, msgLoggedOut)
}

// userIDFromRequest returns the id stored by the auth middleware. Without
// it the request is answered with a bare 401.
func userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Err(ErrNoUserInContext).Send()
		w.WriteHeader(http.StatusUnauthorized)
		return "", false
	}

	return userID, true
}
