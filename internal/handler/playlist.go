package handler

import (
	"errors"
	"net/http"

	"github.com/spotifaux/spotifaux-go/internal/middleware"
	"github.com/spotifaux/spotifaux-go/internal/model"
	"github.com/spotifaux/spotifaux-go/internal/service"
)

// PlaylistHandler handles HTTP requests for the caller's playlists.
type PlaylistHandler struct {
	service *service.PlaylistService
}

// NewPlaylistHandler creates a new PlaylistHandler.
func NewPlaylistHandler(svc *service.PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{service: svc}
}

// HandleListPlaylists handles GET /playlists requests.
func (h *PlaylistHandler) HandleListPlaylists(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	playlists, err := h.service.List(r.Context(), user.ID, baseURL(r))
	if err != nil {
		writeInternalError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, playlists)
}

// HandleGetPlaylist handles GET /playlists/{id} requests.
func (h *PlaylistHandler) HandleGetPlaylist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	resp, err := h.service.Get(r.Context(), id, user.ID, baseURL(r))
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleCreatePlaylist handles POST /playlists requests.
func (h *PlaylistHandler) HandleCreatePlaylist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	var req model.CreatePlaylistRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), user.ID, req, baseURL(r))
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleUpdatePlaylist handles PUT /playlists/{id} requests. Omitted fields are left unchanged.
func (h *PlaylistHandler) HandleUpdatePlaylist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req model.UpdatePlaylistRequest
	if !decodeBody(w, r, &req) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, user.ID, req, baseURL(r))
	if err != nil {
		writePlaylistError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDeletePlaylist handles DELETE /playlists/{id} requests.
func (h *PlaylistHandler) HandleDeletePlaylist(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("Not authenticated"))
		return
	}

	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, user.ID); err != nil {
		writePlaylistError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func writePlaylistError(w http.ResponseWriter, r *http.Request, err error) {
	var unknown *service.UnknownTracksError
	switch {
	case errors.Is(err, service.ErrPlaylistNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
	case errors.Is(err, service.ErrNameRequired), errors.As(err, &unknown):
		writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
	default:
		writeInternalError(w, r, err)
	}
}
