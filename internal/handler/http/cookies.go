package http

import (
	"net/http"
)

const accessTokenCookie = "accessToken"

// setSessionCookie stores token in the access token cookie. The cookie
// lifetime comes from settings and is independent of the token TTL.
func (h *Handler) setSessionCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:        accessTokenCookie,
		Value:       token,
		Path:        "/",
		MaxAge:      int(h.settings.CookieMaxAge.Seconds()),
		HttpOnly:    true,
		Secure:      !h.settings.CookieInsecure,
		SameSite:    http.SameSiteNoneMode,
		Partitioned: true,
	})
}

// clearSessionCookie expires the access token cookie.
func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:        accessTokenCookie,
		Value:       "",
		Path:        "/",
		MaxAge:      -1,
		HttpOnly:    true,
		Secure:      !h.settings.CookieInsecure,
		SameSite:    http.SameSiteNoneMode,
		Partitioned: true,
	})
}
