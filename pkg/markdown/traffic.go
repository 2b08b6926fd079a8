package markdown

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	trafficHeader = regexp.MustCompile(`\| Concorrente\s*\| Busca Orgânica \(%\)`)
	leadingFloat  = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
)

// TrafficRecord is one row of the traffic sources comparison table.
type TrafficRecord struct {
	Competitor    string  `json:"competitor"`
	OrganicSearch float64 `json:"organic_search"`
	PaidSearch    float64 `json:"paid_search"`
	Social        float64 `json:"social"`
	Direct        float64 `json:"direct"`
	Referral      float64 `json:"referral"`
}

// ExtractTraffic finds the first traffic table in md and returns its rows.
// It returns nil when there is no table or no row names a competitor.
// Malformed numbers become 0.
func ExtractTraffic(md string) []TrafficRecord {
	lines := strings.Split(md, "\n")
	for i, line := range lines {
		if !trafficHeader.MatchString(line) {
			continue
		}
		if i+1 >= len(lines) || !strings.HasPrefix(trimRow(lines[i+1]), "|-") {
			continue
		}

		var records []TrafficRecord
		for _, row := range lines[i+2:] {
			row = trimRow(row)
			if !strings.HasPrefix(row, "|") {
				break
			}
			if rec, ok := parseTrafficRow(row); ok {
				records = append(records, rec)
			}
		}
		if len(records) == 0 {
			return nil
		}
		return records
	}
	return nil
}

func parseTrafficRow(row string) (TrafficRecord, bool) {
	cells := strings.Split(row, "|")
	if len(cells) < 2 {
		return TrafficRecord{}, false
	}
	cells = cells[1 : len(cells)-1]
	for i := range cells {
		cells[i] = strings.TrimSpace(cells[i])
	}

	cell := func(i int) string {
		if i < len(cells) {
			return cells[i]
		}
		return ""
	}

	name := cell(0)
	if name == "" {
		return TrafficRecord{}, false
	}
	return TrafficRecord{
		Competitor:    name,
		OrganicSearch: parseNumber(cell(1)),
		PaidSearch:    parseNumber(cell(2)),
		Social:        parseNumber(cell(3)),
		Direct:        parseNumber(cell(4)),
		Referral:      parseNumber(cell(5)),
	}, true
}

// parseNumber reads the leading decimal number of s, so "45%" is 45.
func parseNumber(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return v
}

func trimRow(line string) string {
	return strings.TrimRight(strings.TrimLeft(line, " \t"), "\r")
}
