package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/service"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/models"
)

// errorStatus pairs a sentinel with its response status. The list is scanned
// in order, so a more specific sentinel must precede a broader one.
type errorStatus struct {
	target error
	status int
}

var errorStatusTable = []errorStatus{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrFormParse, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrMissingTarget, http.StatusBadRequest},
	{service.ErrInvalidUserID, http.StatusBadRequest},
	{service.ErrSelfFollow, http.StatusBadRequest},

	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{ErrNoSessionUser, http.StatusUnauthorized},
	{service.ErrInvalidCredentials, http.StatusUnauthorized},
	{service.ErrMissingToken, http.StatusUnauthorized},
	{service.ErrInvalidToken, http.StatusUnauthorized},
	{service.ErrUnknownUser, http.StatusUnauthorized},

	{service.ErrUserNotFound, http.StatusNotFound},
	{service.ErrTargetNotFound, http.StatusNotFound},

	{service.ErrUserAlreadyExists, http.StatusConflict},

	{service.ErrUpstream, http.StatusBadGateway},
}

// statusFromError returns the status mapped to the first sentinel err wraps,
// or 500.
func statusFromError(err error) (int, error) {
	for _, e := range errorStatusTable {
		if errors.Is(err, e.target) {
			return e.status, e.target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError writes the JSON error envelope for err. Client errors carry the
// sentinel text as message and the full chain as error; server errors expose
// only the status text.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, sentinel := statusFromError(err)

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		body := models.ErrorResponse{Message: http.StatusText(status)}
		if sentinel != nil {
			body.Message = sentinel.Error()
		}
		utils.WriteJSON(w, body, status)
		return
	}

	log.Warn().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteJSON(w, models.ErrorResponse{Message: sentinel.Error(), Error: err.Error()}, status)
}
