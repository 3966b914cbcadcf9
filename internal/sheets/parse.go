package sheets

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bookingproto/rategen/internal/domain"
)

// Record is one parsed data row, keyed by the column names from the header
// row. Missing cells are present as empty strings.
type Record map[string]string

// recordsFromRows converts a raw tab into records. Sheet layout: row 1 holds
// the column keys, row 2 a human-readable description, data starts at row 3.
// Blank rows are skipped.
func recordsFromRows(rows [][]string) ([]Record, error) {
	if len(rows) < 3 {
		return nil, fmt.Errorf("tab must have at least 3 rows (keys, description, data), got %d", len(rows))
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
	}

	var out []Record
	for _, row := range rows[2:] {
		blank := true
		for _, c := range row {
			if strings.TrimSpace(c) != "" {
				blank = false
				break
			}
		}
		if blank {
			continue
		}

		rec := make(Record, len(header))
		for i, key := range header {
			if key == "" {
				continue
			}
			val := ""
			if i < len(row) {
				val = strings.TrimSpace(row[i])
			}
			rec[key] = val
		}
		out = append(out, rec)
	}
	return out, nil
}

// parseInt reads spreadsheet integers, tolerating thousands spaces, NBSP and
// comma decimals ("12 900,00" -> 12900).
func parseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return int(f)
}

func parseFloat(s string, def float64) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "\u00a0", "")
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// parseYes accepts the affirmative spellings used in the sheet, including
// the Russian one.
func parseYes(s string) bool {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "YES", "Y", "TRUE", "1", "ДА":
		return true
	}
	return false
}

// splitList parses semicolon-separated cells (amenities, photos, applies_to),
// dropping quotes and empty parts.
func splitList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = strings.NewReplacer(`"`, "", "“", "", "”", "").Replace(s)
	var out []string
	for _, p := range strings.Split(s, ";") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// parseDay parses a YYYY-MM-DD cell; ok is false for empty or malformed
// values.
func parseDay(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	d, err := domain.ParseDay(s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}
