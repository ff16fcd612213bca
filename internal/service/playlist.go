package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spotifaux/spotifaux-go/internal/model"
	"github.com/spotifaux/spotifaux-go/internal/repository"
)

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrForbidden        = errors.New("forbidden")
	ErrNameRequired     = errors.New("playlist name must not be empty")
)

// UnknownTracksError reports track IDs that are not in the catalog.
type UnknownTracksError = repository.UnknownTracksError

// PlaylistService handles owner-scoped playlist operations.
type PlaylistService struct {
	repo    *repository.PlaylistRepository
	catalog *CatalogService
}

// NewPlaylistService creates a new PlaylistService.
func NewPlaylistService(repo *repository.PlaylistRepository, catalog *CatalogService) *PlaylistService {
	return &PlaylistService{repo: repo, catalog: catalog}
}

// List returns the user's playlists with tracks resolved.
func (s *PlaylistService) List(ctx context.Context, userID int64, baseURL string) ([]model.PlaylistResponse, error) {
	playlists, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]model.PlaylistResponse, len(playlists))
	for i, p := range playlists {
		out[i] = s.catalog.PopulatePlaylist(p, baseURL)
	}
	return out, nil
}

// Get returns a single playlist owned by userID.
func (s *PlaylistService) Get(ctx context.Context, id, userID int64, baseURL string) (model.PlaylistResponse, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return model.PlaylistResponse{}, mapPlaylistError(err)
	}
	if p.UserID != userID {
		return model.PlaylistResponse{}, ErrForbidden
	}
	return s.catalog.PopulatePlaylist(*p, baseURL), nil
}

// Create stores a new playlist owned by userID.
func (s *PlaylistService) Create(ctx context.Context, userID int64, req model.CreatePlaylistRequest, baseURL string) (model.PlaylistResponse, error) {
	p := &model.Playlist{
		UserID: userID,
		Name:   req.Name,
		Tracks: req.Tracks,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return model.PlaylistResponse{}, mapPlaylistError(err)
	}
	slog.Info("playlist created", "playlist_id", p.ID, "user_id", userID)

	return s.catalog.PopulatePlaylist(*p, baseURL), nil
}

// Update applies a partial update to a playlist owned by userID.
func (s *PlaylistService) Update(ctx context.Context, id, userID int64, req model.UpdatePlaylistRequest, baseURL string) (model.PlaylistResponse, error) {
	p, err := s.repo.Update(ctx, id, userID, repository.PlaylistChanges{
		Name:   req.Name,
		Tracks: req.Tracks,
	})
	if err != nil {
		return model.PlaylistResponse{}, mapPlaylistError(err)
	}
	slog.Info("playlist updated", "playlist_id", id, "user_id", userID)

	return s.catalog.PopulatePlaylist(*p, baseURL), nil
}

// Delete removes a playlist owned by userID.
func (s *PlaylistService) Delete(ctx context.Context, id, userID int64) error {
	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return mapPlaylistError(err)
	}
	slog.Info("playlist deleted", "playlist_id", id, "user_id", userID)
	return nil
}

func mapPlaylistError(err error) error {
	switch {
	case errors.Is(err, repository.ErrPlaylistNotFound):
		return ErrPlaylistNotFound
	case errors.Is(err, repository.ErrNotOwner):
		return ErrForbidden
	case errors.Is(err, repository.ErrEmptyName):
		return ErrNameRequired
	default:
		return err
	}
}
