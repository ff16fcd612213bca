package handler

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spotifaux/spotifaux-go/internal/model"
)

func TestPlaylists_RequireSession(t *testing.T) {
	env := newTestEnv(t)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/playlists"},
		{http.MethodPost, "/playlists"},
		{http.MethodGet, "/playlists/1"},
		{http.MethodPut, "/playlists/1"},
		{http.MethodDelete, "/playlists/1"},
	} {
		if rec := env.do(tc.method, tc.path, nil, nil); rec.Code != http.StatusUnauthorized {
			t.Errorf("%s %s status = %d, want 401", tc.method, tc.path, rec.Code)
		}
	}
}

func TestCreatePlaylist_UnknownTrack(t *testing.T) {
	env := newTestEnv(t)
	session := env.signup("a@x.com")

	rec := env.do(http.MethodPost, "/playlists", map[string]any{"name": "Mix", "tracks": []int{1, 2}}, session)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400, body %s", rec.Code, rec.Body)
	}
	if got := decode[map[string]string](t, rec); got["detail"] != "unknown track ids: [2]" {
		t.Errorf("detail = %q", got["detail"])
	}

	list := decode[[]model.PlaylistResponse](t, env.do(http.MethodGet, "/playlists", nil, session))
	if len(list) != 0 {
		t.Errorf("playlists after rejected create = %+v", list)
	}
	if _, err := os.Stat(filepath.Join(env.dataDir, "playlists.json")); !os.IsNotExist(err) {
		t.Error("rejected create must not persist anything")
	}
}

func TestPlaylistLifecycle(t *testing.T) {
	env := newTestEnv(t)
	session := env.signup("a@x.com")

	rec := env.do(http.MethodPost, "/playlists", map[string]any{"name": " Mix ", "tracks": []int{3, 1, 3}}, session)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", rec.Code, rec.Body)
	}
	created := decode[model.PlaylistResponse](t, rec)
	if created.ID != 1 || created.UserID != 1 || created.Name != "Mix" || len(created.Tracks) != 3 {
		t.Errorf("created = %+v", created)
	}
	if created.Tracks[0].Preview != "http://example.com/audio/atw.mp3" {
		t.Errorf("track not enriched: %+v", created.Tracks[0])
	}

	got := env.do(http.MethodGet, "/playlists/1", nil, session)
	if got.Code != http.StatusOK {
		t.Fatalf("get status = %d", got.Code)
	}

	put := env.do(http.MethodPut, "/playlists/1", map[string]string{"name": "New"}, session)
	if put.Code != http.StatusOK {
		t.Fatalf("update status = %d, body %s", put.Code, put.Body)
	}
	updated := decode[model.PlaylistResponse](t, put)
	if updated.Name != "New" || len(updated.Tracks) != 3 {
		t.Errorf("updated = %+v, tracks must be preserved", updated)
	}
	if updated.UpdatedAt.Before(created.UpdatedAt) || !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("timestamps not maintained: %+v", updated)
	}

	put = env.do(http.MethodPut, "/playlists/1", map[string]any{"tracks": []int{1}}, session)
	if updated := decode[model.PlaylistResponse](t, put); updated.Name != "New" || len(updated.Tracks) != 1 {
		t.Errorf("tracks-only update = %+v", updated)
	}

	if rec := env.do(http.MethodPut, "/playlists/1", map[string]any{"tracks": []int{99}}, session); rec.Code != http.StatusBadRequest {
		t.Errorf("update with unknown track status = %d, want 400", rec.Code)
	}
	if rec := env.do(http.MethodPut, "/playlists/1", map[string]string{"name": "   "}, session); rec.Code != http.StatusBadRequest {
		t.Errorf("update with blank name status = %d, want 400", rec.Code)
	}

	list := decode[[]model.PlaylistResponse](t, env.do(http.MethodGet, "/playlists", nil, session))
	if len(list) != 1 || list[0].Name != "New" {
		t.Errorf("list = %+v", list)
	}

	del := env.do(http.MethodDelete, "/playlists/1", nil, session)
	if del.Code != http.StatusNoContent || del.Body.Len() != 0 {
		t.Errorf("delete = %d %q, want 204 empty", del.Code, del.Body.String())
	}
	if rec := env.do(http.MethodDelete, "/playlists/1", nil, session); rec.Code != http.StatusNotFound {
		t.Errorf("second delete status = %d, want 404", rec.Code)
	}
	if rec := env.do(http.MethodGet, "/playlists/1", nil, session); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete status = %d, want 404", rec.Code)
	}
}

func TestPlaylistOwnership(t *testing.T) {
	env := newTestEnv(t)
	alice := env.signup("alice@x.com")
	bob := env.signup("bob@x.com")

	rec := env.do(http.MethodPost, "/playlists", map[string]any{"name": "Alice's", "tracks": []int{1}}, alice)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}

	if rec := env.do(http.MethodGet, "/playlists/1", nil, bob); rec.Code != http.StatusForbidden {
		t.Errorf("foreign get status = %d, want 403", rec.Code)
	}
	if rec := env.do(http.MethodPut, "/playlists/1", map[string]string{"name": "Mine now"}, bob); rec.Code != http.StatusForbidden {
		t.Errorf("foreign update status = %d, want 403", rec.Code)
	}
	if rec := env.do(http.MethodDelete, "/playlists/1", nil, bob); rec.Code != http.StatusForbidden {
		t.Errorf("foreign delete status = %d, want 403", rec.Code)
	}

	if list := decode[[]model.PlaylistResponse](t, env.do(http.MethodGet, "/playlists", nil, bob)); len(list) != 0 {
		t.Errorf("bob sees %d playlists, want 0", len(list))
	}

	got := env.do(http.MethodGet, "/playlists/1", nil, alice)
	if got.Code != http.StatusOK || decode[model.PlaylistResponse](t, got).Name != "Alice's" {
		t.Errorf("alice's playlist changed or vanished: %d %s", got.Code, got.Body)
	}
}

func TestPlaylist_InvalidInput(t *testing.T) {
	env := newTestEnv(t)
	session := env.signup("a@x.com")

	if rec := env.do(http.MethodGet, "/playlists/abc", nil, session); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("non-numeric id status = %d, want 422", rec.Code)
	}
	if rec := env.do(http.MethodGet, "/playlists/0", nil, session); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("zero id status = %d, want 422", rec.Code)
	}
	if rec := env.do(http.MethodPost, "/playlists", map[string]any{"tracks": []int{1}}, session); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("missing name status = %d, want 422", rec.Code)
	}
	if rec := env.do(http.MethodPost, "/playlists", `{"name": "x", "tracks": "nope"}`, session); rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("wrongly typed tracks status = %d, want 422", rec.Code)
	}

	huge := `{"name": "` + strings.Repeat("a", maxBodyBytes) + `"}`
	if rec := env.do(http.MethodPost, "/playlists", huge, session); rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("oversize body status = %d, want 413", rec.Code)
	}
}

func TestCreatePlaylist_TracksOmitted(t *testing.T) {
	env := newTestEnv(t)
	session := env.signup("a@x.com")

	rec := env.do(http.MethodPost, "/playlists", map[string]string{"name": "Empty"}, session)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body)
	}
	if !strings.Contains(rec.Body.String(), `"tracks":[]`) {
		t.Errorf("body = %s, want empty tracks array", rec.Body)
	}
}
