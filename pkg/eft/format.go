package eft

import (
	"fmt"
	"strconv"
	"strings"
)

var monthNames = [13]string{
	"Unknown",
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// FormatHeight renders the Type-2 height field ("FII" or "FIII": one foot
// digit followed by zero-padded inches) as `F'II"`. Anything else passes
// through unchanged.
func FormatHeight(h string) string {
	if len(h) < 3 || len(h) > 4 {
		return h
	}
	for _, r := range h {
		if r < '0' || r > '9' {
			return h
		}
	}
	return fmt.Sprintf("%c'%s\"", h[0], h[1:])
}

// FormatDate renders a date as "<Month> <day>, <year>". A nil date is
// "Unknown"; an out-of-range month puts "Unknown" in the month slot.
func FormatDate(d *Date) string {
	if d == nil {
		return "Unknown"
	}
	month := "Unknown"
	if d.Month >= 1 && d.Month <= 12 {
		month = monthNames[d.Month]
	}
	return fmt.Sprintf("%s %d, %d", month, d.Day, d.Year)
}

// ResolveFinger maps user input to a finger position code. It accepts a
// decimal code 1..14 or a position name like "right_thumb" (case
// insensitive; '-' and ' ' are treated as '_').
func ResolveFinger(input string) (int, error) {
	if code, err := strconv.Atoi(input); err == nil {
		if _, ok := fingerPositions[code]; !ok {
			return 0, &ValidationError{Msg: fmt.Sprintf("unknown finger position %d", code)}
		}
		return code, nil
	}

	key := strings.ToLower(input)
	key = strings.ReplaceAll(key, "-", "_")
	key = strings.ReplaceAll(key, " ", "_")
	if code, ok := fingerAliases[key]; ok {
		return code, nil
	}
	return 0, &ValidationError{Msg: fmt.Sprintf("unknown finger position %q", input)}
}

// FilterRecords returns the records matching the finger selector, or all of
// them when the selector is empty. A selector matching nothing fails.
func FilterRecords(records []Type4Record, selector string) ([]Type4Record, error) {
	if selector == "" {
		return records, nil
	}
	code, err := ResolveFinger(selector)
	if err != nil {
		return nil, err
	}

	var out []Type4Record
	for _, rec := range records {
		if rec.FingerPosition == code {
			out = append(out, rec)
		}
	}
	if len(out) == 0 {
		return nil, &ValidationError{Msg: fmt.Sprintf("no record matches finger position %d", code)}
	}
	return out, nil
}

// ExportFilename builds "<pos padded to 2>-<slug>.<format>", falling back
// to "finger-<pos>" for unknown positions. An empty format means "tiff".
func ExportFilename(pos int, format string) string {
	if format == "" {
		format = "tiff"
	}
	slug := fmt.Sprintf("finger-%d", pos)
	if fp, ok := fingerPositions[pos]; ok {
		slug = fp.Slug
	}
	return fmt.Sprintf("%02d-%s.%s", pos, slug, format)
}
