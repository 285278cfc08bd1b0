package services

import (
	"regexp"
	"strings"
	"time"
)

const (
	DateSpanDate  = "date"
	DateSpanRange = "range"

	maxDateSpans = 20
)

// DateSpan - дата или период, найденные в тексте договора.
type DateSpan struct {
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Kind   string    `json:"kind"`
	Source string    `json:"source"`
}

const datePattern = `\d{2}\.\d{2}\.\d{4}|\d{4}-\d{2}-\d{2}|\d{2}/\d{2}/\d{4}`

var (
	singleDateRegexps = []*regexp.Regexp{
		regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		regexp.MustCompile(`\b\d{2}\.\d{2}\.\d{4}\b`),
		regexp.MustCompile(`\b\d{2}/\d{2}/\d{4}\b`),
	}
	rangeRegexps = []*regexp.Regexp{
		// с 01.02.2026 по 10.02.2026
		regexp.MustCompile(`(?i)(?:со|с)\s*(` + datePattern + `)\s*(?:по|до)\s*(` + datePattern + `)`),
		// 01.02.2026 - 10.02.2026
		regexp.MustCompile(`(` + datePattern + `)\s*[-–—]\s*(` + datePattern + `)`),
	}
	dateLayouts = []string{"2006-01-02", "02.01.2006", "02/01/2006"}
)

func parseContractDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ExtractDateSpans ищет в тексте периоды ("с A по B", "A - B"), а затем отдельные даты,
// не вошедшие в найденные периоды. Одинаковые пары (начало, конец) не повторяются.
func ExtractDateSpans(text string) []DateSpan {
	spans := make([]DateSpan, 0)

	for _, re := range rangeRegexps {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			a, okA := parseContractDate(m[1])
			b, okB := parseContractDate(m[2])
			if !okA || !okB {
				continue
			}
			if b.Before(a) {
				a, b = b, a
			}
			spans = append(spans, DateSpan{Start: a, End: b, Kind: DateSpanRange, Source: m[0]})
			if len(spans) >= maxDateSpans {
				return dedupDateSpans(spans)
			}
		}
	}

	rangeSources := make([]string, 0, len(spans))
	for _, s := range spans {
		rangeSources = append(rangeSources, s.Source)
	}
	captured := strings.Join(rangeSources, "\n")

singles:
	for _, re := range singleDateRegexps {
		for _, raw := range re.FindAllString(text, -1) {
			if strings.Contains(captured, raw) {
				continue
			}
			d, ok := parseContractDate(raw)
			if !ok {
				continue
			}
			spans = append(spans, DateSpan{Start: d, End: d, Kind: DateSpanDate, Source: raw})
			if len(spans) >= maxDateSpans {
				break singles
			}
		}
	}

	return dedupDateSpans(spans)
}

func dedupDateSpans(spans []DateSpan) []DateSpan {
	type key struct{ start, end time.Time }
	seen := make(map[key]bool, len(spans))
	out := make([]DateSpan, 0, len(spans))
	for _, s := range spans {
		k := key{s.Start, s.End}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, s)
	}
	return out
}
