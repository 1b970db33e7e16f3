package scraper

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// cacheDuration determines how long extracted courses are kept before a
// source is re-parsed
const cacheDuration = 12 * time.Hour

// CacheEntry represents the disk data format
type CacheEntry struct {
	Timestamp time.Time `json:"timestamp"`
	Courses   []Course  `json:"courses"`
}

func getCachePath(source string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}

	cacheDir := filepath.Join(homeDir, ".wdsched_cache")
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", fmt.Errorf("could not create cache directory: %w", err)
	}

	// Sources are URLs or arbitrary file paths; hash them into a safe name
	sum := sha1.Sum([]byte(source))
	return filepath.Join(cacheDir, hex.EncodeToString(sum[:])+".json"), nil
}

// ReadCache returns the cached course list for a source if one exists and
// has not expired
func ReadCache(source string) ([]Course, bool) {
	path, err := getCachePath(source)
	if err != nil {
		return nil, false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, false
	}

	var entry CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, false
	}

	if time.Since(entry.Timestamp) > cacheDuration {
		return nil, false
	}

	return entry.Courses, true
}

// WriteCache saves an extracted course list to disk
func WriteCache(source string, courses []Course) {
	path, err := getCachePath(source)
	if err != nil {
		return
	}

	entry := CacheEntry{
		Timestamp: time.Now(),
		Courses:   courses,
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		return
	}

	_ = os.WriteFile(path, data, 0644)
}

// ExtractCoursesFromSource loads a document from a URL or file and extracts
// its courses, consulting the cache for URL sources. Local files re-parse
// every time since reading them is as cheap as the cache.
func (c *Client) ExtractCoursesFromSource(source string, useCache bool) ([]Course, error) {
	if useCache {
		if cached, ok := ReadCache(source); ok {
			return cached, nil
		}
	}

	doc, err := c.LoadDocument(source)
	if err != nil {
		return nil, err
	}

	courses := ExtractCourses(doc)
	if useCache && len(courses) > 0 {
		WriteCache(source, courses)
	}

	return courses, nil
}
