package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/spotifaux/spotifaux-go/internal/model"
)

func writeFixture(t *testing.T, name string, v any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal fixture: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func readFixture(t *testing.T, path string, v any) {
	t.Helper()
	if err := readJSONFile(path, v); err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
}

func testTracks() []model.Track {
	return []model.Track{
		{ID: 1, Title: "Blue Monday", Artist: "New Order", PreviewFile: "blue.mp3"},
		{ID: 3, Title: "Around the World", Artist: "Daft Punk", PreviewFile: "atw.mp3"},
		{ID: 7, Title: "Windowlicker", Artist: "Aphex Twin", PreviewFile: "wl.mp3"},
	}
}

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := NewCatalog(testTracks())
	if err != nil {
		t.Fatalf("NewCatalog() unexpected error: %v", err)
	}
	return c
}
