package scraper

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestCacheRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	courses := []Course{
		{Code: "COSC_O 222", Title: "Data Structures", SectionNumber: "L2D"},
	}

	source := "https://wd10.myworkday.com/ubc/course-page"

	// nothing cached yet
	if _, ok := ReadCache(source); ok {
		t.Fatal("expected cache miss before writing")
	}

	WriteCache(source, courses)

	got, ok := ReadCache(source)
	if !ok {
		t.Fatal("expected cache hit after writing")
	}
	if len(got) != 1 || got[0].Code != "COSC_O 222" {
		t.Errorf("cached courses = %+v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	source := "expired-source"
	WriteCache(source, []Course{{Code: "MATH 101", Title: "Calculus I"}})

	// age the entry past the cache duration by rewriting its timestamp
	path, err := getCachePath(source)
	if err != nil {
		t.Fatalf("getCachePath failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read cache file: %v", err)
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("failed to parse cache file: %v", err)
	}

	entry.Timestamp = time.Now().Add(-cacheDuration - time.Hour)
	aged, _ := json.Marshal(entry)
	if err := os.WriteFile(path, aged, 0644); err != nil {
		t.Fatalf("failed to rewrite cache file: %v", err)
	}

	if _, ok := ReadCache(source); ok {
		t.Error("expected cache miss for expired entry")
	}
}

func TestCacheIgnoresCorruptFiles(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	source := "corrupt-source"
	path, err := getCachePath(source)
	if err != nil {
		t.Fatalf("getCachePath failed: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create cache dir: %v", err)
	}
	if err := os.WriteFile(path, []byte("not json {"), 0644); err != nil {
		t.Fatalf("failed to write corrupt file: %v", err)
	}

	if _, ok := ReadCache(source); ok {
		t.Error("expected cache miss for corrupt entry")
	}
}
