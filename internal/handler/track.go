package handler

import (
	"net/http"

	"github.com/spotifaux/spotifaux-go/internal/service"
)

// TrackHandler serves the public catalog.
type TrackHandler struct {
	service *service.CatalogService
}

// NewTrackHandler creates a new TrackHandler.
func NewTrackHandler(svc *service.CatalogService) *TrackHandler {
	return &TrackHandler{service: svc}
}

// HandleListTracks handles GET /tracks requests.
func (h *TrackHandler) HandleListTracks(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.ListTracks(baseURL(r)))
}

// HandleSearch handles GET /search?q= requests. The q parameter is required
// but may be empty.
func (h *TrackHandler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if !query.Has("q") {
		writeViolations(w, FieldViolation{
			Loc:  []string{"query", "q"},
			Msg:  "field required",
			Type: "value_error.missing",
		})
		return
	}

	tracks := h.service.Search(query.Get("q"), baseURL(r))
	writeJSON(w, http.StatusOK, tracks)
}
