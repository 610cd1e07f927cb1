package utils

import (
	"fmt"
	"strings"
	"time"

	"clubcourt-backend/internal/domain"
)

// Recurrence is a parsed repeat rule. The wire form is "Daily", or
// "Weekly;Tue,Thu": a frequency keyword, then for weekly rules a semicolon
// and a comma-separated weekday list. The weekday list is authoritative;
// occurrences fall only on the listed days.
type Recurrence struct {
	Days []time.Weekday
}

var weekdayNames = map[string]time.Weekday{
	"MON": time.Monday,
	"TUE": time.Tuesday,
	"WED": time.Wednesday,
	"THU": time.Thursday,
	"FRI": time.Friday,
	"SAT": time.Saturday,
	"SUN": time.Sunday,
}

// ParseRecurrenceRule parses a rule like "Daily" or "Weekly;Tue,Thu". Day
// names are matched case-insensitively on their first three letters, so
// "Tuesday" and "tue" both work. Duplicate days collapse to one.
func ParseRecurrenceRule(rule string) (*Recurrence, error) {
	freq, daysPart, hasDays := strings.Cut(rule, ";")
	freq = strings.TrimSpace(freq)

	if strings.EqualFold(freq, "Daily") {
		if hasDays && strings.TrimSpace(daysPart) != "" {
			return nil, fmt.Errorf("%w: daily recurrence takes no day list", domain.ErrInvalidInput)
		}
		return &Recurrence{Days: []time.Weekday{
			time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
			time.Thursday, time.Friday, time.Saturday,
		}}, nil
	}
	if !strings.EqualFold(freq, "Weekly") {
		return nil, fmt.Errorf("%w: unsupported recurrence frequency %q", domain.ErrInvalidInput, freq)
	}
	if !hasDays {
		return nil, fmt.Errorf("%w: recurrence rule %q missing day list", domain.ErrInvalidInput, rule)
	}

	seen := make(map[time.Weekday]bool)
	var days []time.Weekday
	for _, name := range strings.Split(daysPart, ",") {
		name = strings.TrimSpace(name)
		if len(name) < 3 {
			return nil, fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, name)
		}
		day, ok := weekdayNames[strings.ToUpper(name[:3])]
		if !ok {
			return nil, fmt.Errorf("%w: unknown weekday %q", domain.ErrInvalidInput, name)
		}
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	if len(days) == 0 {
		return nil, fmt.Errorf("%w: recurrence rule %q has no weekdays", domain.ErrInvalidInput, rule)
	}
	return &Recurrence{Days: days}, nil
}

// Occurrences returns the first n start times falling on a listed weekday
// from start onward, keeping start's clock time. start itself counts when its
// weekday is listed.
func (r *Recurrence) Occurrences(start time.Time, n int) []time.Time {
	listed := make(map[time.Weekday]bool, len(r.Days))
	for _, d := range r.Days {
		listed[d] = true
	}

	var out []time.Time
	for t := start; len(out) < n; t = t.AddDate(0, 0, 1) {
		if listed[t.Weekday()] {
			out = append(out, t)
		}
	}
	return out
}
