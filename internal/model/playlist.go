package model

import "time"

// Playlist represents a playlist as stored in playlists.json. Tracks holds
// catalog track IDs in play order; duplicates are allowed.
type Playlist struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	Tracks    []int64   `json:"tracks"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreatePlaylistRequest represents a playlist creation request.
type CreatePlaylistRequest struct {
	Name   string  `json:"name" validate:"required"`
	Tracks []int64 `json:"tracks"`
}

// UpdatePlaylistRequest represents a partial playlist update. Nil fields are left unchanged.
type UpdatePlaylistRequest struct {
	Name   *string  `json:"name"`
	Tracks *[]int64 `json:"tracks"`
}

// PlaylistResponse is a playlist with its track IDs resolved to tracks.
type PlaylistResponse struct {
	ID        int64           `json:"id"`
	UserID    int64           `json:"user_id"`
	Name      string          `json:"name"`
	Tracks    []TrackResponse `json:"tracks"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
