package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const corsMaxAge = 300

// withCORS allows any origin with credentials. Browsers refuse a literal "*"
// together with credentials, so AllowOriginFunc makes the request Origin echo
// back instead. Preflight requests are answered with 204.
var withCORS = cors.Handler(cors.Options{
	AllowOriginFunc:      func(*http.Request, string) bool { return true },
	AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
	AllowedHeaders:       []string{"Content-Type", "Authorization"},
	ExposedHeaders:       []string{"Set-Cookie"},
	AllowCredentials:     true,
	MaxAge:               corsMaxAge,
	OptionsSuccessStatus: http.StatusNoContent,
})
