package http

import (
	"net/http"

	"github.com/MKhiriev/socialix/internal/app"
	"github.com/MKhiriev/socialix/internal/utils"
	"github.com/MKhiriev/socialix/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) followUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := utils.UserFromContext(r.Context())
	if !ok {
		writeError(w, r, ErrNoSessionUser)
		return
	}

	result, err := h.services.UserService.ToggleFollow(r.Context(), actor.ID, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteMessage(w, result.Message(), http.StatusCreated)
}

func (h *Handler) getUserDetails(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.UserService.GetUserDetails(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UserResponse{Message: app.MsgUserDetailsFetched, User: user}, http.StatusOK)
}

func (h *Handler) searchUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.SearchUsers(r.Context(), chi.URLParam(r, "query"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Message: app.MsgUsersSearched, Users: users}, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.ListUsers(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Message: app.MsgAllUsersFetched, Users: users}, http.StatusOK)
}
