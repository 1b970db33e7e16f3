package exporter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"wdsched/pkg/scraper"
)

func TestGenerateCSV(t *testing.T) {
	courses := []scraper.Course{
		{
			Code:                "COSC_O 222",
			Title:               "Data Structures",
			SectionNumber:       "L2D",
			Instructor:          "Smith, Alice",
			Meeting:             "Mon / Wed | 1:30 p.m. - 2:50 p.m.\nLibrary (LIB)",
			InstructionalFormat: "Lecture",
		},
	}

	var buf bytes.Buffer
	if err := GenerateCSV(courses, &buf); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	output := buf.String()

	if !strings.HasPrefix(output, "code,title,section_number,instructor,meeting,instructionalFormat") {
		t.Errorf("unexpected header row:\n%s", output)
	}

	// fields with commas or newlines must be quoted
	if !strings.Contains(output, `"Smith, Alice"`) {
		t.Errorf("expected comma-containing field to be quoted:\n%s", output)
	}

	// the output must round-trip through a CSV reader
	records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
	if err != nil {
		t.Fatalf("generated CSV does not parse: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1 row", len(records))
	}
	if records[1][4] != courses[0].Meeting {
		t.Errorf("meeting field = %q, want %q", records[1][4], courses[0].Meeting)
	}
}

func TestGenerateCSVQuotesEmbeddedQuotes(t *testing.T) {
	courses := []scraper.Course{
		{Code: "ENGL 112", Title: `An "Introduction" to Prose`},
	}

	var buf bytes.Buffer
	if err := GenerateCSV(courses, &buf); err != nil {
		t.Fatalf("GenerateCSV failed: %v", err)
	}

	if !strings.Contains(buf.String(), `"An ""Introduction"" to Prose"`) {
		t.Errorf("expected doubled internal quotes:\n%s", buf.String())
	}
}
