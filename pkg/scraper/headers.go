package scraper

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Semantic fields resolved by BuildHeaderMaps
const (
	FieldInstructor          = "instructor"
	FieldMeeting             = "meeting"
	FieldDeliveryMode        = "deliveryMode"
	FieldTitle               = "title"
	FieldCode                = "code"
	FieldSection             = "section"
	FieldInstructionalFormat = "instructionalFormat"
	FieldStartDate           = "startDate"
)

// Label synonyms per field, tried in order. The column Workday labels
// "Status" has carried instructional-format text in every capture we have,
// so status labels resolve to instructionalFormat rather than a status field.
var fieldSynonyms = map[string][]string{
	FieldInstructor:   {"instructor", "instructors"},
	FieldMeeting:      {"meeting", "meeting patterns", "meeting pattern"},
	FieldDeliveryMode: {"delivery mode", "mode", "modality"},
	FieldTitle:        {"title", "course listing", "course name", "course"},
	FieldCode:         {"class code", "code", "course code", "course id"},
	FieldSection:      {"section", "sect", "sec"},
	FieldInstructionalFormat: {
		"instructional format",
		"format",
		"component",
		"type",
		"status",
		"registration status",
	},
	FieldStartDate: {"start date", "start", "begins"},
}

var compIDRE = regexp.MustCompile(`^gen-dwr-comp-(\d+\.\d+)-`)
var digitsRE = regexp.MustCompile(`^\d+$`)

type headerInfo struct {
	pos  int
	key  string
	norm string
}

// BuildHeaderMaps inspects the grid's header cells and maps every semantic
// field to a column key and positional index. Exact normalized label match
// wins over substring match; the first header satisfying either test is
// taken. Unmatched fields resolve to ""/-1 and readers degrade to empty
// strings.
func BuildHeaderMaps(gridRoot *goquery.Selection) HeaderMaps {
	var headers []headerInfo

	gridRoot.Find(headerCellSelector).Each(func(pos int, el *goquery.Selection) {
		text := headerText(el)
		if text == "" {
			return
		}
		headers = append(headers, headerInfo{
			pos:  pos,
			key:  columnKey(el),
			norm: NormalizeText(text),
		})
	})

	maps := HeaderMaps{
		ColKey: make(map[string]string),
		Pos:    make(map[string]int),
	}

	for field, synonyms := range fieldSynonyms {
		hit := findHeader(headers, synonyms)
		if hit == nil {
			maps.ColKey[field] = ""
			maps.Pos[field] = -1
			continue
		}
		maps.ColKey[field] = hit.key
		maps.Pos[field] = hit.pos
	}

	return maps
}

func findHeader(headers []headerInfo, synonyms []string) *headerInfo {
	normalized := make([]string, len(synonyms))
	for i, s := range synonyms {
		normalized[i] = NormalizeText(s)
	}

	for i := range headers {
		for _, n := range normalized {
			if headers[i].norm == n {
				return &headers[i]
			}
		}
	}

	for i := range headers {
		for _, n := range normalized {
			if strings.Contains(headers[i].norm, n) {
				return &headers[i]
			}
		}
	}

	return nil
}

// headerText prefers the title attribute, then an inner h4, then the cell text
func headerText(el *goquery.Selection) string {
	if title, ok := el.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return strings.TrimSpace(title)
	}
	if h4 := el.Find("h4"); h4.Length() > 0 {
		return strings.TrimSpace(h4.First().Text())
	}
	return strings.TrimSpace(el.Text())
}

// columnKey extracts the stable column identifier for a header cell:
// the Workday component key (the "252.9" in id="gen-dwr-comp-252.9-640")
// when present, otherwise an aria-colindex on the cell or a near ancestor.
// Empty means only positional lookup will work for this column.
func columnKey(el *goquery.Selection) string {
	if key := compKey(el); key != "" {
		return key
	}

	cur := el
	for i := 0; i < 5 && cur.Length() > 0; i++ {
		if v, ok := cur.Attr("aria-colindex"); ok && digitsRE.MatchString(v) {
			return v
		}
		cur = cur.Parent()
	}

	return ""
}

// compKey looks on the element and inside it for a gen-dwr-comp id
func compKey(el *goquery.Selection) string {
	if id, ok := el.Attr("id"); ok {
		if m := compIDRE.FindStringSubmatch(id); m != nil {
			return m[1]
		}
	}

	key := ""
	el.Find(`[id^="gen-dwr-comp-"]`).EachWithBreak(func(i int, inner *goquery.Selection) bool {
		id, _ := inner.Attr("id")
		if m := compIDRE.FindStringSubmatch(id); m != nil {
			key = m[1]
			return false
		}
		return true
	})
	return key
}
