package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spotifaux/spotifaux-go/internal/model"
)

var ErrDuplicateTrackID = errors.New("duplicate track id")

// Catalog is the read-only track list loaded once at startup.
type Catalog struct {
	tracks []model.Track
	byID   map[int64]model.Track
}

// LoadCatalog reads the track list from path. A missing or malformed file is an error.
func LoadCatalog(path string) (*Catalog, error) {
	var tracks []model.Track
	if err := readJSONFile(path, &tracks); err != nil {
		return nil, fmt.Errorf("loading catalog: %w", err)
	}
	return NewCatalog(tracks)
}

// NewCatalog builds a catalog from tracks, rejecting non-positive or repeated IDs.
func NewCatalog(tracks []model.Track) (*Catalog, error) {
	c := &Catalog{
		tracks: make([]model.Track, len(tracks)),
		byID:   make(map[int64]model.Track, len(tracks)),
	}
	copy(c.tracks, tracks)

	for _, t := range c.tracks {
		if t.ID <= 0 {
			return nil, fmt.Errorf("track %q: id must be positive, got %d", t.Title, t.ID)
		}
		if _, exists := c.byID[t.ID]; exists {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateTrackID, t.ID)
		}
		c.byID[t.ID] = t
	}

	return c, nil
}

// ByID returns the track with the given id.
func (c *Catalog) ByID(id int64) (model.Track, bool) {
	t, ok := c.byID[id]
	return t, ok
}

// All returns every track in load order.
func (c *Catalog) All() []model.Track {
	out := make([]model.Track, len(c.tracks))
	copy(out, c.tracks)
	return out
}

// Search returns tracks whose title or artist contains query, ignoring case.
// An empty query matches every track.
func (c *Catalog) Search(query string) []model.Track {
	q := strings.ToLower(query)
	out := make([]model.Track, 0)
	for _, t := range c.tracks {
		if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Artist), q) {
			out = append(out, t)
		}
	}
	return out
}

// Len returns the number of tracks.
func (c *Catalog) Len() int {
	return len(c.tracks)
}
