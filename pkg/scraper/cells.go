package scraper

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// rowReader resolves the cells of one data row against the header maps.
// Lookup tries the stable column key first and falls back to position;
// both are best-effort and a miss yields an empty result, never an error.
type rowReader struct {
	cells     []*goquery.Selection
	cellByKey map[string]*goquery.Selection
	maps      HeaderMaps
}

func newRowReader(row *goquery.Selection, maps HeaderMaps) *rowReader {
	r := &rowReader{
		cellByKey: make(map[string]*goquery.Selection),
		maps:      maps,
	}

	row.Find(dataCellSelector).Each(func(i int, cell *goquery.Selection) {
		r.cells = append(r.cells, cell)
		if key := cellKey(cell); key != "" {
			if _, seen := r.cellByKey[key]; !seen {
				r.cellByKey[key] = cell
			}
		}
	})

	return r
}

// cellKey mirrors columnKey for data cells: Workday stamps the column's
// component key into an id inside the cell.
func cellKey(cell *goquery.Selection) string {
	return compKey(cell)
}

// cell returns the row cell for a semantic field, or nil
func (r *rowReader) cell(field string) *goquery.Selection {
	if key := r.maps.ColKey[field]; key != "" {
		if c, ok := r.cellByKey[key]; ok {
			return c
		}
	}

	if pos, ok := r.maps.Pos[field]; ok && pos >= 0 && pos < len(r.cells) {
		return r.cells[pos]
	}

	return nil
}

// text returns the trimmed text of the field's cell, or ""
func (r *rowReader) text(field string) string {
	cell := r.cell(field)
	if cell == nil {
		return ""
	}
	return strings.TrimSpace(cell.Text())
}
