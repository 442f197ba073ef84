package admin

import (
	"fmt"
	"strconv"
	"time"
)

// Start-date filter presets offered on the event list.
const (
	DateAny       = ""
	DateToday     = "today"
	DatePast7Days = "past_7_days"
	DateThisMonth = "this_month"
	DateThisYear  = "this_year"
)

// Range is a half-open time window [From, To). Nil bounds are open.
type Range struct {
	From *time.Time
	To   *time.Time
}

// PresetRange returns the window a start-date preset selects, relative to now
// in now's location.
func PresetRange(preset string, now time.Time) (Range, error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	tomorrow := today.AddDate(0, 0, 1)

	var from, to time.Time
	switch preset {
	case DateAny:
		return Range{}, nil
	case DateToday:
		from, to = today, tomorrow
	case DatePast7Days:
		from, to = today.AddDate(0, 0, -7), tomorrow
	case DateThisMonth:
		from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(0, 1, 0)
	case DateThisYear:
		from = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		to = from.AddDate(1, 0, 0)
	default:
		return Range{}, fmt.Errorf("unknown start filter %q", preset)
	}
	return Range{From: &from, To: &to}, nil
}

// Hierarchy is a date drill-down position. Zero fields are unset; Month
// requires Year and Day requires Month.
type Hierarchy struct {
	Year  int
	Month int
	Day   int
}

// ParseHierarchy reads the year/month/day drill-down parameters.
func ParseHierarchy(year, month, day string) (Hierarchy, error) {
	var h Hierarchy
	var err error
	if year != "" {
		if h.Year, err = strconv.Atoi(year); err != nil || h.Year < 1 || h.Year > 9999 {
			return Hierarchy{}, fmt.Errorf("invalid year %q", year)
		}
	}
	if month != "" {
		if h.Year == 0 {
			return Hierarchy{}, fmt.Errorf("month requires year")
		}
		if h.Month, err = strconv.Atoi(month); err != nil || h.Month < 1 || h.Month > 12 {
			return Hierarchy{}, fmt.Errorf("invalid month %q", month)
		}
	}
	if day != "" {
		if h.Month == 0 {
			return Hierarchy{}, fmt.Errorf("day requires month")
		}
		h.Day, err = strconv.Atoi(day)
		last := time.Date(h.Year, time.Month(h.Month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
		if err != nil || h.Day < 1 || h.Day > last {
			return Hierarchy{}, fmt.Errorf("invalid day %q", day)
		}
	}
	return h, nil
}

// Range returns the window the drill-down position covers in loc.
func (h Hierarchy) Range(loc *time.Location) Range {
	var from, to time.Time
	switch {
	case h.Day != 0:
		from = time.Date(h.Year, time.Month(h.Month), h.Day, 0, 0, 0, 0, loc)
		to = from.AddDate(0, 0, 1)
	case h.Month != 0:
		from = time.Date(h.Year, time.Month(h.Month), 1, 0, 0, 0, 0, loc)
		to = from.AddDate(0, 1, 0)
	case h.Year != 0:
		from = time.Date(h.Year, time.January, 1, 0, 0, 0, 0, loc)
		to = from.AddDate(1, 0, 0)
	default:
		return Range{}
	}
	return Range{From: &from, To: &to}
}

// Unit is the granularity of the next drill-down level.
func (h Hierarchy) Unit() string {
	switch {
	case h.Month != 0:
		return "day"
	case h.Year != 0:
		return "month"
	default:
		return "year"
	}
}

// Intersect narrows r to the part also covered by o.
func (r Range) Intersect(o Range) Range {
	out := r
	if o.From != nil && (out.From == nil || o.From.After(*out.From)) {
		out.From = o.From
	}
	if o.To != nil && (out.To == nil || o.To.Before(*out.To)) {
		out.To = o.To
	}
	return out
}
