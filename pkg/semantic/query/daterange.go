package query

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// RangeKind discriminates the date-range grammar variants.
type RangeKind int

const (
	// RangeAbsolute is a [start, end] pair of ISO strings.
	RangeAbsolute RangeKind = iota
	// RangeRelative is `last N unit` / `next N unit`, including the
	// shorthand presets (last_7_days, last_30_days).
	RangeRelative
	// RangeToDate is month_to_date / year_to_date.
	RangeToDate
	// RangePeriod is this|last|next week|month|quarter|year.
	RangePeriod
	// RangeSingleOp is before:<d> / after:<d> / on:<d>.
	RangeSingleOp
)

// RangeDirection is the sign of a relative or period range.
type RangeDirection string

const (
	DirLast RangeDirection = "last"
	DirNext RangeDirection = "next"
	DirThis RangeDirection = "this"
)

// DateRange is the parsed form of a time-dimension date range. Raw preserves
// the wire spelling for round-tripping.
type DateRange struct {
	Kind RangeKind

	// RangeAbsolute
	Start string
	End   string

	// RangeRelative / RangePeriod
	Direction RangeDirection
	N         int
	Unit      Granularity

	// RangeSingleOp
	Op     string // before, after, on
	OpDate string

	Raw string
}

// UnmarshalJSON accepts either a two-element array of ISO strings or a
// grammar string (preset, relative, period, or single-operator form).
func (r *DateRange) UnmarshalJSON(data []byte) error {
	var pair []string
	if err := json.Unmarshal(data, &pair); err == nil {
		if len(pair) != 2 {
			return fmt.Errorf("absolute date range needs exactly [start, end], got %d values", len(pair))
		}
		parsed, err := ParseDateRange(pair)
		if err != nil {
			return err
		}
		*r = *parsed
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("date range must be a string or [start, end] array")
	}
	parsed, err := ParseDateRangeString(s)
	if err != nil {
		return err
	}
	*r = *parsed
	return nil
}

// MarshalJSON mirrors UnmarshalJSON: absolute ranges as arrays, everything
// else as the original grammar string.
func (r DateRange) MarshalJSON() ([]byte, error) {
	if r.Kind == RangeAbsolute {
		return json.Marshal([2]string{r.Start, r.End})
	}
	return json.Marshal(r.Raw)
}

// ParseDateRange builds an absolute range from a [start, end] pair.
func ParseDateRange(pair []string) (*DateRange, error) {
	if len(pair) != 2 {
		return nil, fmt.Errorf("absolute date range needs exactly [start, end]")
	}
	for _, v := range pair {
		if _, err := ParseISO(v); err != nil {
			return nil, err
		}
	}
	return &DateRange{Kind: RangeAbsolute, Start: pair[0], End: pair[1], Raw: pair[0] + "," + pair[1]}, nil
}

// ParseDateRangeString parses the named-preset / relative / period /
// single-operator grammar.
func ParseDateRangeString(s string) (*DateRange, error) {
	raw := s
	norm := strings.ToLower(strings.TrimSpace(s))

	if op, date, ok := splitSingleOp(norm); ok {
		if _, err := ParseISO(date); err != nil {
			return nil, fmt.Errorf("date range %q: %w", raw, err)
		}
		return &DateRange{Kind: RangeSingleOp, Op: op, OpDate: date, Raw: raw}, nil
	}

	norm = strings.ReplaceAll(norm, "_", " ")
	fields := strings.Fields(norm)

	switch norm {
	case "today":
		return &DateRange{Kind: RangePeriod, Direction: DirThis, Unit: GranDay, Raw: raw}, nil
	case "yesterday":
		return &DateRange{Kind: RangePeriod, Direction: DirLast, Unit: GranDay, Raw: raw}, nil
	case "month to date":
		return &DateRange{Kind: RangeToDate, Unit: GranMonth, Raw: raw}, nil
	case "year to date":
		return &DateRange{Kind: RangeToDate, Unit: GranYear, Raw: raw}, nil
	}

	// this|last|next <unit>
	if len(fields) == 2 {
		dir := RangeDirection(fields[0])
		if dir == DirThis || dir == DirLast || dir == DirNext {
			unit, err := parseRangeUnit(fields[1])
			if err != nil {
				return nil, fmt.Errorf("date range %q: %w", raw, err)
			}
			return &DateRange{Kind: RangePeriod, Direction: dir, Unit: unit, Raw: raw}, nil
		}
	}

	// last|next N <unit>[s]
	if len(fields) == 3 {
		dir := RangeDirection(fields[0])
		if dir == DirLast || dir == DirNext {
			n, err := strconv.Atoi(fields[1])
			if err != nil || n < 1 {
				return nil, fmt.Errorf("date range %q: count must be a positive integer", raw)
			}
			unit, err := parseRangeUnit(fields[2])
			if err != nil {
				return nil, fmt.Errorf("date range %q: %w", raw, err)
			}
			return &DateRange{Kind: RangeRelative, Direction: dir, N: n, Unit: unit, Raw: raw}, nil
		}
	}

	return nil, fmt.Errorf("unrecognized date range %q", raw)
}

func splitSingleOp(s string) (op, date string, ok bool) {
	for _, candidate := range []string{"before:", "after:", "on:"} {
		if strings.HasPrefix(s, candidate) {
			return strings.TrimSuffix(candidate, ":"), strings.TrimSpace(strings.TrimPrefix(s, candidate)), true
		}
	}
	return "", "", false
}

func parseRangeUnit(s string) (Granularity, error) {
	unit := Granularity(strings.TrimSuffix(s, "s"))
	switch unit {
	case GranDay, GranWeek, GranMonth, GranQuarter, GranYear:
		return unit, nil
	}
	return "", fmt.Errorf("unsupported range unit %q", s)
}

// ISO layouts accepted for absolute dates and single-operator dates.
var isoLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	time.RFC3339,
}

// ParseISO parses an ISO date or timestamp string.
func ParseISO(s string) (time.Time, error) {
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid ISO date %q", s)
}

// IsDateOnly reports whether the value carries no time component. Date-only
// bounds widen the upper end of a range by one day.
func IsDateOnly(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}
