package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spotifaux/spotifaux-go/internal/model"
)

var (
	ErrPlaylistNotFound = errors.New("playlist not found")
	ErrNotOwner         = errors.New("playlist belongs to another user")
	ErrEmptyName        = errors.New("playlist name must not be empty")
)

// UnknownTracksError reports track IDs that are not in the catalog.
type UnknownTracksError struct {
	IDs []int64
}

func (e *UnknownTracksError) Error() string {
	ids := make([]string, len(e.IDs))
	for i, id := range e.IDs {
		ids[i] = strconv.FormatInt(id, 10)
	}
	return "unknown track ids: [" + strings.Join(ids, ", ") + "]"
}

// TrackLookup resolves catalog track IDs.
type TrackLookup interface {
	ByID(id int64) (model.Track, bool)
}

// PlaylistChanges lists the fields of a partial update. Nil fields are left unchanged.
type PlaylistChanges struct {
	Name   *string
	Tracks *[]int64
}

// PlaylistRepository holds playlist records in memory and writes the full set
// back to its JSON file on every change. Track IDs are checked against the
// catalog on write only.
type PlaylistRepository struct {
	mu        sync.RWMutex
	path      string
	playlists []model.Playlist
	tracks    TrackLookup
	now       func() time.Time
}

// LoadPlaylistRepository reads playlists from path. A missing file yields an
// empty repository; a malformed one is an error.
func LoadPlaylistRepository(path string, tracks TrackLookup) (*PlaylistRepository, error) {
	var playlists []model.Playlist
	if err := readJSONFile(path, &playlists); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading playlists: %w", err)
		}
	}
	if playlists == nil {
		playlists = []model.Playlist{}
	}

	return &PlaylistRepository{
		path:      path,
		playlists: playlists,
		tracks:    tracks,
		now:       func() time.Time { return time.Now().UTC() },
	}, nil
}

// ListByUser returns the user's playlists in storage order.
func (r *PlaylistRepository) ListByUser(_ context.Context, userID int64) ([]model.Playlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.Playlist, 0)
	for _, p := range r.playlists {
		if p.UserID == userID {
			out = append(out, clonePlaylist(p))
		}
	}
	return out, nil
}

// GetByID retrieves a playlist regardless of owner.
func (r *PlaylistRepository) GetByID(_ context.Context, id int64) (*model.Playlist, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrPlaylistNotFound
	}
	p := clonePlaylist(r.playlists[i])
	return &p, nil
}

// Create validates and stores a new playlist owned by playlist.UserID. ID and
// timestamps are assigned here and written back into playlist.
func (r *PlaylistRepository) Create(ctx context.Context, playlist *model.Playlist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := strings.TrimSpace(playlist.Name)
	if name == "" {
		return ErrEmptyName
	}
	if err := r.checkTracks(playlist.Tracks); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	now := r.now()
	created := model.Playlist{
		ID:        r.nextID(),
		UserID:    playlist.UserID,
		Name:      name,
		Tracks:    cloneIDs(playlist.Tracks),
		CreatedAt: now,
		UpdatedAt: now,
	}

	playlists := make([]model.Playlist, len(r.playlists), len(r.playlists)+1)
	copy(playlists, r.playlists)
	playlists = append(playlists, created)

	if err := r.persist(playlists); err != nil {
		return err
	}

	*playlist = clonePlaylist(created)
	return nil
}

// Update applies changes to the playlist with the given id on behalf of
// ownerID. UpdatedAt is refreshed on every successful call, even when no
// field changes.
func (r *PlaylistRepository) Update(ctx context.Context, id, ownerID int64, changes PlaylistChanges) (*model.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return nil, ErrPlaylistNotFound
	}
	if r.playlists[i].UserID != ownerID {
		return nil, ErrNotOwner
	}

	updated := clonePlaylist(r.playlists[i])
	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)
		if name == "" {
			return nil, ErrEmptyName
		}
		updated.Name = name
	}
	if changes.Tracks != nil {
		if err := r.checkTracks(*changes.Tracks); err != nil {
			return nil, err
		}
		updated.Tracks = cloneIDs(*changes.Tracks)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	updated.UpdatedAt = r.now()

	playlists := make([]model.Playlist, len(r.playlists))
	copy(playlists, r.playlists)
	playlists[i] = updated

	if err := r.persist(playlists); err != nil {
		return nil, err
	}

	out := clonePlaylist(updated)
	return &out, nil
}

// Delete removes the playlist with the given id on behalf of ownerID.
func (r *PlaylistRepository) Delete(ctx context.Context, id, ownerID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrPlaylistNotFound
	}
	if r.playlists[i].UserID != ownerID {
		return ErrNotOwner
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	playlists := make([]model.Playlist, 0, len(r.playlists)-1)
	playlists = append(playlists, r.playlists[:i]...)
	playlists = append(playlists, r.playlists[i+1:]...)

	return r.persist(playlists)
}

// Count returns the number of stored playlists.
func (r *PlaylistRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.playlists)
}

// persist writes playlists to disk and, on success, makes them the current state.
func (r *PlaylistRepository) persist(playlists []model.Playlist) error {
	if err := writeJSONFile(r.path, playlists); err != nil {
		return err
	}
	r.playlists = playlists
	return nil
}

func (r *PlaylistRepository) checkTracks(ids []int64) error {
	var unknown []int64
	for _, id := range ids {
		if _, ok := r.tracks.ByID(id); !ok {
			unknown = append(unknown, id)
		}
	}
	if len(unknown) > 0 {
		return &UnknownTracksError{IDs: unknown}
	}
	return nil
}

func (r *PlaylistRepository) indexOf(id int64) int {
	for i, p := range r.playlists {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *PlaylistRepository) nextID() int64 {
	var maxID int64
	for _, p := range r.playlists {
		if p.ID > maxID {
			maxID = p.ID
		}
	}
	return maxID + 1
}

func clonePlaylist(p model.Playlist) model.Playlist {
	p.Tracks = cloneIDs(p.Tracks)
	return p
}

func cloneIDs(ids []int64) []int64 {
	out := make([]int64, len(ids))
	copy(out, ids)
	return out
}
