package http

import (
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

// auth admits requests carrying a valid "Authorization: <scheme> <jwt>"
// header and stores the token subject with utils.WithUserID. Anything else
// gets a bare 401 without a body.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := h.authenticate(r)
		if err != nil {
			logger.FromRequest(r).Error().Err(err).Str("uri", r.RequestURI).Msg("request rejected by auth gate")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithUserID(r.Context(), userID)))
	})
}

func (h *Handler) authenticate(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	raw, err := utils.ParseBearerToken(header)
	if err != nil {
		return "", err
	}

	token, err := h.services.AuthService.ParseToken(r.Context(), raw)
	if err != nil {
		return "", err
	}

	return token.UserID, nil
}
