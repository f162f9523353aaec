package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, registeredUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeEnvelope(w, http.StatusInternalServerError, true, msgInternalServerError)
		return
	}

	log.Info().Str("user_id", registeredUser.ID).Msg("user registered")

	utils.WriteJSON(w, models.RegisterResponse{
		Envelope:    models.Envelope{Error: false, Message: msgRegistrationSuccessful},
		User:        registeredUser,
		AccessToken: token.String(),
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := utils.DecodeJSON(r.Body, &req); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		// an unknown username is a bad request here, not a 404
		if errors.Is(err, store.ErrNoUserWasFound) {
			writeEnvelope(w, http.StatusBadRequest, true, msgUserDoesNotExist)
			return
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		writeEnvelope(w, http.StatusInternalServerError, true, msgInternalServerError)
		return
	}

	log.Debug().Str("user_id", foundUser.ID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.LoginResponse{
		Envelope:    models.Envelope{Error: false, Message: msgLoginSuccessful},
		Username:    foundUser.Username,
		AccessToken: token.String(),
	}, http.StatusOK)
}
