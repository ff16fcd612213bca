package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/spotifaux/spotifaux-go/internal/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Auth      *AuthHandler
	Tracks    *TrackHandler
	Playlists *PlaylistHandler
}

// NewRouter wires the API routes. sessionAuth guards the protected group;
// when audioDir is non-empty its files are served under /audio/.
func NewRouter(h Handlers, sessionAuth func(http.Handler) http.Handler, audioDir string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/auth/signup", h.Auth.HandleSignup)
	r.Post("/auth/login", h.Auth.HandleLogin)
	r.Post("/auth/logout", h.Auth.HandleLogout)

	r.Get("/tracks", h.Tracks.HandleListTracks)
	r.Get("/search", h.Tracks.HandleSearch)

	if audioDir != "" {
		r.Handle("/audio/*", http.StripPrefix("/audio/", http.FileServer(http.Dir(audioDir))))
	}

	r.Group(func(r chi.Router) {
		r.Use(sessionAuth)
		r.Get("/auth/me", h.Auth.HandleMe)

		r.Get("/playlists", h.Playlists.HandleListPlaylists)
		r.Post("/playlists", h.Playlists.HandleCreatePlaylist)
		r.Get("/playlists/{id}", h.Playlists.HandleGetPlaylist)
		r.Put("/playlists/{id}", h.Playlists.HandleUpdatePlaylist)
		r.Delete("/playlists/{id}", h.Playlists.HandleDeletePlaylist)
	})

	return r
}
