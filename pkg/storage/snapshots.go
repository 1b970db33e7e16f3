package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"wdsched/pkg/scraper"

	"github.com/google/uuid"
)

// MaxSnapshots caps how many saved schedules are kept
const MaxSnapshots = 6

// Snapshot is one saved schedule: a named, timestamped copy of a course list
type Snapshot struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	SavedAt time.Time        `json:"savedAt"`
	Courses []scraper.Course `json:"courses"`
}

// Meta renders the "3 courses · Saved Sep 1, 2026" line shown next to a snapshot
func (s Snapshot) Meta() string {
	return fmt.Sprintf("%d courses · Saved %s", len(s.Courses), s.SavedAt.Format("Jan 2, 2006"))
}

func getStorePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".wdsched_schedules.json"), nil
}

// Load reads all saved snapshots from disk, dropping entries that are
// missing their course list. A missing file is an empty store, not an error.
func Load() ([]Snapshot, error) {
	path, err := getStorePath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read saved schedules: %w", err)
	}

	var snapshots []Snapshot
	if err := json.Unmarshal(data, &snapshots); err != nil {
		return nil, fmt.Errorf("failed to parse saved schedules: %w", err)
	}

	return sanitize(snapshots), nil
}

// persist writes the whole snapshot list back as one blob
func persist(snapshots []Snapshot) error {
	path, err := getStorePath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(sanitize(snapshots), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize saved schedules: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write saved schedules: %w", err)
	}

	return nil
}

// SaveNew appends a snapshot of the given courses and persists the list.
// Fails when the store is full so the caller can prompt for a deletion.
func SaveNew(name string, courses []scraper.Course) (*Snapshot, error) {
	snapshots, err := Load()
	if err != nil {
		return nil, err
	}

	if len(snapshots) >= MaxSnapshots {
		return nil, fmt.Errorf("cannot save more than %d schedules; delete one first", MaxSnapshots)
	}

	if name == "" {
		name = "Untitled"
	}

	snapshot := Snapshot{
		ID:      uuid.NewString(),
		Name:    name,
		SavedAt: time.Now(),
		Courses: append([]scraper.Course(nil), courses...),
	}

	snapshots = append(snapshots, snapshot)
	if err := persist(snapshots); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

// Delete removes the snapshot with the given ID and persists the list
func Delete(id string) error {
	snapshots, err := Load()
	if err != nil {
		return err
	}

	kept := snapshots[:0]
	found := false
	for _, s := range snapshots {
		if s.ID == id {
			found = true
			continue
		}
		kept = append(kept, s)
	}

	if !found {
		return fmt.Errorf("no saved schedule with id %s", id)
	}

	return persist(kept)
}

// Get returns the snapshot with the given ID
func Get(id string) (*Snapshot, error) {
	snapshots, err := Load()
	if err != nil {
		return nil, err
	}

	for i := range snapshots {
		if snapshots[i].ID == id {
			return &snapshots[i], nil
		}
	}

	return nil, fmt.Errorf("no saved schedule with id %s", id)
}

func sanitize(snapshots []Snapshot) []Snapshot {
	var kept []Snapshot
	for _, s := range snapshots {
		if s.Courses == nil {
			continue
		}
		if s.Name == "" {
			s.Name = "Untitled"
		}
		if s.SavedAt.IsZero() {
			s.SavedAt = time.Now()
		}
		kept = append(kept, s)
	}
	return kept
}
