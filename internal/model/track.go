package model

// Track is a catalog entry as stored in tracks.json.
type Track struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album,omitempty"`
	Cover       string `json:"cover,omitempty"`
	Duration    int    `json:"duration,omitempty"`
	PreviewFile string `json:"preview_file"`
}

// TrackResponse is a track as presented to clients. PreviewFile is replaced
// by an absolute, playable Preview URL.
type TrackResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Album    string `json:"album,omitempty"`
	Cover    string `json:"cover,omitempty"`
	Duration int    `json:"duration,omitempty"`
	Preview  string `json:"preview"`
}
