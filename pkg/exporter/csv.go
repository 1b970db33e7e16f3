package exporter

import (
	"encoding/csv"
	"io"

	"wdsched/pkg/scraper"
)

// csvHeader matches the column order of the course list view
var csvHeader = []string{"code", "title", "section_number", "instructor", "meeting", "instructionalFormat"}

// GenerateCSV writes the course list as RFC 4180 CSV. Fields containing
// commas, quotes, or newlines are quoted with doubled internal quotes.
func GenerateCSV(courses []scraper.Course, w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, c := range courses {
		record := []string{
			c.Code,
			c.Title,
			c.SectionNumber,
			c.Instructor,
			c.Meeting,
			c.InstructionalFormat,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
