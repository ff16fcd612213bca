package service

import (
	"net/url"
	"strings"

	"github.com/spotifaux/spotifaux-go/internal/model"
	"github.com/spotifaux/spotifaux-go/internal/repository"
)

// AudioPath is the URL prefix under which preview files are served.
const AudioPath = "/audio/"

// CatalogService presents catalog tracks to clients.
type CatalogService struct {
	catalog *repository.Catalog
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(catalog *repository.Catalog) *CatalogService {
	return &CatalogService{catalog: catalog}
}

// ListTracks returns the full catalog.
func (s *CatalogService) ListTracks(baseURL string) []model.TrackResponse {
	return s.serializeAll(s.catalog.All(), baseURL)
}

// Search returns tracks whose title or artist contains query, ignoring case.
func (s *CatalogService) Search(query, baseURL string) []model.TrackResponse {
	return s.serializeAll(s.catalog.Search(query), baseURL)
}

// PopulatePlaylist resolves the playlist's track IDs. IDs missing from the
// catalog are dropped.
func (s *CatalogService) PopulatePlaylist(p model.Playlist, baseURL string) model.PlaylistResponse {
	tracks := make([]model.TrackResponse, 0, len(p.Tracks))
	for _, id := range p.Tracks {
		if t, ok := s.catalog.ByID(id); ok {
			tracks = append(tracks, SerializeTrack(t, baseURL))
		}
	}

	return model.PlaylistResponse{
		ID:        p.ID,
		UserID:    p.UserID,
		Name:      p.Name,
		Tracks:    tracks,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (s *CatalogService) serializeAll(tracks []model.Track, baseURL string) []model.TrackResponse {
	out := make([]model.TrackResponse, len(tracks))
	for i, t := range tracks {
		out[i] = SerializeTrack(t, baseURL)
	}
	return out
}

// SerializeTrack replaces the preview file name with an absolute URL under baseURL.
func SerializeTrack(t model.Track, baseURL string) model.TrackResponse {
	return model.TrackResponse{
		ID:       t.ID,
		Title:    t.Title,
		Artist:   t.Artist,
		Album:    t.Album,
		Cover:    t.Cover,
		Duration: t.Duration,
		Preview:  AudioURL(baseURL, t.PreviewFile),
	}
}

// AudioURL builds the playable URL of an audio file.
func AudioURL(baseURL, filename string) string {
	path := (&url.URL{Path: AudioPath + filename}).EscapedPath()
	return strings.TrimRight(baseURL, "/") + path
}
