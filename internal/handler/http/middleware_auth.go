package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/service"
	"github.com/MKhiriev/socialix/internal/utils"
)

// auth is the gate in front of every protected route.
//
// The session token is read from the access token cookie, falling back to the
// second part of the "Authorization" header. [service.AuthService.Authenticate]
// resolves it to a user with followers populated, and that user is stored in
// the request context via [utils.WithUser]. The request logger gains a
// user_id field.
//
// Failures are answered with 401: missing token, invalid or expired token,
// and a valid token whose user no longer exists.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := sessionToken(r)
		if err != nil {
			writeError(w, r, err)
			return
		}

		user, err := h.services.AuthService.Authenticate(r.Context(), raw)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r).WithUserID(user.ID.String())
		ctx := utils.WithUser(log.WithContext(r.Context()), user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionToken returns the raw token carried by r. A request with neither a
// cookie nor an Authorization header yields [service.ErrMissingToken].
func sessionToken(r *http.Request) (string, error) {
	if cookie, err := r.Cookie(accessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", service.ErrMissingToken
	}

	return getTokenFromAuthHeader(authHeader)
}

// getTokenFromAuthHeader extracts the token from a raw "Authorization" header
// value of the form "<scheme> <token>". The scheme itself is not checked.
//
// It returns:
//   - [ErrInvalidAuthorizationHeader] if there is no second part.
//   - [ErrEmptyToken] if the second part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
