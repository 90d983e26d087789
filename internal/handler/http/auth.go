package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/socialix/internal/app"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/models"
)

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.issueSession(w, r, registeredUser, h.settings.RegisterTokenTTL) {
		return
	}

	log.Info().Str("user_id", registeredUser.ID.String()).Msg("user signed in")
	utils.WriteJSON(w, models.SignInResponse{
		Message: app.MsgSignInWelcome + registeredUser.UserName,
		Data:    registeredUser,
	}, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if !h.issueSession(w, r, foundUser, h.settings.LoginTokenTTL) {
		return
	}

	log.Info().Str("user_id", foundUser.ID.String()).Msg("user logged in")
	utils.WriteMessage(w, app.MsgLoginWelcome+foundUser.UserName, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearSessionCookie(w)
	utils.WriteMessage(w, app.MsgLogout, http.StatusOK)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSessionUser)
		return
	}

	utils.WriteJSON(w, models.MeResponse{Me: user}, http.StatusOK)
}

// issueSession signs a token for user and hands it out both as the session
// cookie and as a bearer Authorization header. It reports false after writing
// an error response.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, user models.User, ttl time.Duration) bool {
	token, err := h.services.AuthService.CreateToken(r.Context(), user, ttl)
	if err != nil {
		writeError(w, r, err)
		return false
	}

	h.setSessionCookie(w, token.SignedString)
	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	return true
}
