package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-phone-auth/internal/app"
	"github.com/MKhiriev/go-phone-auth/internal/logger"
	"github.com/MKhiriev/go-phone-auth/internal/utils"
	"github.com/MKhiriev/go-phone-auth/models"
)

// maxCredentialsBodyBytes caps the body of the register and login requests.
const maxCredentialsBodyBytes = 4 << 10

// decodeCredentials reads a JSON [models.Credentials] body of at most
// maxCredentialsBodyBytes.
func decodeCredentials(w http.ResponseWriter, r *http.Request) (models.Credentials, error) {
	var creds models.Credentials
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxCredentialsBodyBytes)).Decode(&creds); err != nil {
		return models.Credentials{}, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return creds, nil
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", registeredUser.UserID).Msg("user registered")
	utils.WriteMessage(w, app.MsgRegistered, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	creds, err := decodeCredentials(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	w.Header().Set("Authorization", utils.BearerHeader(token.String()))
	utils.WriteJSON(w, models.LoginResponse{
		Message: app.MsgLoggedIn,
		Token:   token.String(),
		User:    foundUser.Summary(),
	}, http.StatusOK)
}

// me returns the identity carried by the verified bearer token. It never
// touches the credential store.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrEmptyAuthorizationHeader)
		return
	}
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		logger.FromRequest(r).Debug().Int64("user_id", userID).Msg("identity requested")
	}

	utils.WriteJSON(w, models.UserSummary{ID: claims.UserID, Phone: claims.Phone}, http.StatusOK)
}

// writeError reports err to the client with the status and message from
// errorStatusMap. Unexpected errors are logged with their cause; the client
// only sees the generic message.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	resp := responseFromError(err)

	log := logger.FromRequest(r)
	if resp.status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
	} else {
		log.Info().Err(err).Int("status", resp.status).Msg("request rejected")
	}

	utils.WriteMessage(w, resp.message, resp.status)
}
