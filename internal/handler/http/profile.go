package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/socialix/internal/app"
	"github.com/MKhiriev/socialix/internal/logger"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/models"
)

const (
	profileTextField  = "text"
	profileMediaField = "media"

	// multipartOverhead is the slack allowed on top of the media limit for
	// boundaries and text fields.
	multipartOverhead = 1 << 20
)

// updateProfile accepts a multipart form with an optional "text" field (the
// new bio, empty allowed) and an optional "media" file (the new profile
// image). It answers only after every mutation has completed.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	user, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSessionUser)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.settings.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(h.settings.MaxUploadBytes); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrFormParse, err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	var update models.ProfileUpdate

	if values, ok := r.MultipartForm.Value[profileTextField]; ok && len(values) > 0 {
		bio := values[0]
		update.Bio = &bio
	}

	file, header, err := r.FormFile(profileMediaField)
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		writeError(w, r, fmt.Errorf("%w: %w", ErrFormParse, err))
		return
	default:
		defer file.Close()

		if header.Size > h.settings.MaxUploadBytes {
			writeError(w, r, fmt.Errorf("%w: media exceeds %d bytes", ErrFormParse, h.settings.MaxUploadBytes))
			return
		}

		update.Media = &models.MediaFile{
			Content:     file,
			FileName:    header.Filename,
			Size:        header.Size,
			ContentType: header.Header.Get("Content-Type"),
		}
	}

	updated, err := h.services.ProfileService.UpdateProfile(r.Context(), user.ID, update)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Bool("bio", update.Bio != nil).Bool("media", update.Media != nil).Msg("profile updated")
	utils.WriteJSON(w, models.UserResponse{Message: app.MsgProfileUpdated, User: updated}, http.StatusCreated)
}
