package storage

import (
	"fmt"
	"testing"

	"wdsched/pkg/scraper"
)

func testCourses() []scraper.Course {
	return []scraper.Course{
		{Code: "COSC_O 222", Title: "Data Structures", SectionNumber: "L2D"},
		{Code: "MATH 101", Title: "Calculus I", SectionNumber: "101"},
	}
}

func setupHome(t *testing.T) {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests
}

func TestSaveLoadDelete(t *testing.T) {
	setupHome(t)

	// empty store to start
	snapshots, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snapshots) != 0 {
		t.Fatalf("expected empty store, got %d snapshots", len(snapshots))
	}

	saved, err := SaveNew("Winter Term 1", testCourses())
	if err != nil {
		t.Fatalf("SaveNew failed: %v", err)
	}
	if saved.ID == "" {
		t.Error("expected a generated snapshot ID")
	}
	if saved.SavedAt.IsZero() {
		t.Error("expected a save timestamp")
	}

	snapshots, err = Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(snapshots) != 1 {
		t.Fatalf("snapshots = %d, want 1", len(snapshots))
	}
	if snapshots[0].Name != "Winter Term 1" || len(snapshots[0].Courses) != 2 {
		t.Errorf("loaded snapshot = %+v", snapshots[0])
	}

	got, err := Get(saved.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.Courses[0].Code != "COSC_O 222" {
		t.Errorf("snapshot course = %+v", got.Courses[0])
	}

	if err := Delete(saved.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	snapshots, _ = Load()
	if len(snapshots) != 0 {
		t.Errorf("snapshots after delete = %d, want 0", len(snapshots))
	}

	if err := Delete(saved.ID); err == nil {
		t.Error("expected error deleting a missing snapshot")
	}
}

func TestSaveNewCap(t *testing.T) {
	setupHome(t)

	for i := 0; i < MaxSnapshots; i++ {
		if _, err := SaveNew(fmt.Sprintf("Schedule %d", i), testCourses()); err != nil {
			t.Fatalf("SaveNew %d failed: %v", i, err)
		}
	}

	if _, err := SaveNew("one too many", testCourses()); err == nil {
		t.Errorf("expected SaveNew to fail at the %d-snapshot cap", MaxSnapshots)
	}
}

func TestSaveNewDefaultsName(t *testing.T) {
	setupHome(t)

	saved, err := SaveNew("", testCourses())
	if err != nil {
		t.Fatalf("SaveNew failed: %v", err)
	}
	if saved.Name != "Untitled" {
		t.Errorf("name = %q, want Untitled", saved.Name)
	}
}
