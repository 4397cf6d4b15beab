package site

import (
	"path/filepath"
	"testing"
	"time"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test_site.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testPlaceholder(path string) Placeholder {
	return Placeholder{
		Path:        path,
		Width:       1024,
		Height:      575,
		BlurDataURL: "data:image/png;base64,AAAA",
		Size:        2048,
		ModTime:     time.Date(2024, 3, 10, 8, 30, 0, 123456789, time.UTC),
	}
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSaveAndGetPlaceholder(t *testing.T) {
	s := setupTestStore(t)
	want := testPlaceholder("/images/hero/hooks.png")

	if err := s.SavePlaceholder(want); err != nil {
		t.Fatalf("SavePlaceholder failed: %v", err)
	}
	got, ok, err := s.GetPlaceholder(want.Path)
	if err != nil {
		t.Fatalf("GetPlaceholder failed: %v", err)
	}
	if !ok {
		t.Fatal("expected placeholder to be found")
	}
	if got.Path != want.Path {
		t.Errorf("Path = %q, want %q", got.Path, want.Path)
	}
	if got.Width != want.Width || got.Height != want.Height {
		t.Errorf("size = %dx%d, want %dx%d", got.Width, got.Height, want.Width, want.Height)
	}
	if got.BlurDataURL != want.BlurDataURL {
		t.Errorf("BlurDataURL = %q, want %q", got.BlurDataURL, want.BlurDataURL)
	}
	if got.Size != want.Size {
		t.Errorf("Size = %d, want %d", got.Size, want.Size)
	}
	if !got.ModTime.Equal(want.ModTime) {
		t.Errorf("ModTime = %v, want %v", got.ModTime, want.ModTime)
	}
}

func TestGetPlaceholderMissing(t *testing.T) {
	s := setupTestStore(t)
	_, ok, err := s.GetPlaceholder("/images/nope.png")
	if err != nil {
		t.Fatalf("GetPlaceholder failed: %v", err)
	}
	if ok {
		t.Error("expected no placeholder")
	}
}

func TestSavePlaceholderUpdate(t *testing.T) {
	s := setupTestStore(t)
	p := testPlaceholder("/images/a.png")
	if err := s.SavePlaceholder(p); err != nil {
		t.Fatalf("SavePlaceholder failed: %v", err)
	}
	p.Width = 640
	p.Size = 999
	if err := s.SavePlaceholder(p); err != nil {
		t.Fatalf("SavePlaceholder (update) failed: %v", err)
	}
	got, _, err := s.GetPlaceholder(p.Path)
	if err != nil {
		t.Fatalf("GetPlaceholder failed: %v", err)
	}
	if got.Width != 640 || got.Size != 999 {
		t.Errorf("got width %d size %d, want 640 and 999", got.Width, got.Size)
	}
	all, err := s.ListPlaceholders()
	if err != nil {
		t.Fatalf("ListPlaceholders failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected 1 row after upsert, got %d", len(all))
	}
}

func TestDeletePlaceholder(t *testing.T) {
	s := setupTestStore(t)
	p := testPlaceholder("/images/a.png")
	if err := s.SavePlaceholder(p); err != nil {
		t.Fatalf("SavePlaceholder failed: %v", err)
	}
	if err := s.DeletePlaceholder(p.Path); err != nil {
		t.Fatalf("DeletePlaceholder failed: %v", err)
	}
	if _, ok, _ := s.GetPlaceholder(p.Path); ok {
		t.Error("placeholder should be gone")
	}
	if err := s.DeletePlaceholder("/images/never-saved.png"); err != nil {
		t.Errorf("deleting a missing row should not fail: %v", err)
	}
}

func TestListPlaceholders(t *testing.T) {
	s := setupTestStore(t)
	for _, p := range []string{"/images/c.png", "/images/a.png", "/images/b.png"} {
		if err := s.SavePlaceholder(testPlaceholder(p)); err != nil {
			t.Fatalf("SavePlaceholder(%s) failed: %v", p, err)
		}
	}
	all, err := s.ListPlaceholders()
	if err != nil {
		t.Fatalf("ListPlaceholders failed: %v", err)
	}
	want := []string{"/images/a.png", "/images/b.png", "/images/c.png"}
	if len(all) != len(want) {
		t.Fatalf("got %d placeholders, want %d", len(all), len(want))
	}
	for i, p := range all {
		if p.Path != want[i] {
			t.Errorf("all[%d].Path = %q, want %q", i, p.Path, want[i])
		}
	}
}

func TestListPlaceholdersEmpty(t *testing.T) {
	s := setupTestStore(t)
	all, err := s.ListPlaceholders()
	if err != nil {
		t.Fatalf("ListPlaceholders failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected no placeholders, got %d", len(all))
	}
}
