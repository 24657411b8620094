package sqlgen

import (
	"fmt"
	"time"

	"github.com/quillhq/quill/pkg/semantic"
	"github.com/quillhq/quill/pkg/semantic/query"
)

// compileDateRange renders a range predicate for expr. Date-only bounds use
// the inclusive-day-window rewrite: the upper bound is widened by one day and
// compared with strict `<` so timestamps on the last day are included.
func compileDateRange(d Dialect, expr string, dtype semantic.DataType, r *query.DateRange) (string, error) {
	switch r.Kind {
	case query.RangeAbsolute:
		return compileAbsoluteRange(d, expr, r.Start, r.End)
	case query.RangeSingleOp:
		return compileSingleOp(d, expr, dtype, r)
	case query.RangeRelative:
		return compileRelativeRange(d, expr, r)
	case query.RangePeriod:
		return compilePeriodRange(d, expr, r)
	case query.RangeToDate:
		return compileToDateRange(d, expr, r)
	default:
		return "", fmt.Errorf("unsupported date range kind %d", r.Kind)
	}
}

func compileAbsoluteRange(d Dialect, expr, start, end string) (string, error) {
	if query.IsDateOnly(start) && query.IsDateOnly(end) {
		next, err := nextDay(end)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%s >= %s AND %s < %s",
			expr, d.StringLiteral(start), expr, d.StringLiteral(next)), nil
	}
	return fmt.Sprintf("%s >= %s AND %s <= %s",
		expr, d.StringLiteral(start), expr, d.StringLiteral(end)), nil
}

func compileSingleOp(d Dialect, expr string, dtype semantic.DataType, r *query.DateRange) (string, error) {
	lit := d.StringLiteral(r.OpDate)
	switch r.Op {
	case "before":
		return fmt.Sprintf("%s < %s", expr, lit), nil
	case "after":
		return fmt.Sprintf("%s > %s", expr, lit), nil
	case "on":
		if dtype.IsTemporal() && query.IsDateOnly(r.OpDate) {
			next, err := nextDay(r.OpDate)
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("%s >= %s AND %s < %s", expr, lit, expr, d.StringLiteral(next)), nil
		}
		return fmt.Sprintf("%s = %s", expr, lit), nil
	default:
		return "", fmt.Errorf("unknown date operator %q", r.Op)
	}
}

// rangeAnchor is the truncated "now" a relative range is measured from.
// Day-granularity ranges anchor on the bare current date.
func rangeAnchor(d Dialect, unit query.Granularity) (string, error) {
	if unit == query.GranDay {
		return d.CurrentDate(), nil
	}
	return d.DateTrunc(unit, d.CurrentDate())
}

func compileRelativeRange(d Dialect, expr string, r *query.DateRange) (string, error) {
	anchor, err := rangeAnchor(d, r.Unit)
	if err != nil {
		return "", err
	}
	var lo, hi string
	switch r.Direction {
	case query.DirLast:
		// last N days: [current_date - (N-1), current_date + 1)
		lo = d.AddUnits(anchor, -(r.N - 1), r.Unit)
		if r.N == 1 {
			lo = anchor
		}
		hi = d.AddUnits(anchor, 1, r.Unit)
	case query.DirNext:
		lo = d.AddUnits(anchor, 1, r.Unit)
		hi = d.AddUnits(anchor, r.N+1, r.Unit)
	default:
		return "", fmt.Errorf("invalid relative range direction %q", r.Direction)
	}
	return fmt.Sprintf("%s >= %s AND %s < %s", expr, lo, expr, hi), nil
}

func compilePeriodRange(d Dialect, expr string, r *query.DateRange) (string, error) {
	anchor, err := rangeAnchor(d, r.Unit)
	if err != nil {
		return "", err
	}
	var lo, hi string
	switch r.Direction {
	case query.DirThis:
		lo, hi = anchor, d.AddUnits(anchor, 1, r.Unit)
	case query.DirLast:
		lo, hi = d.AddUnits(anchor, -1, r.Unit), anchor
	case query.DirNext:
		lo, hi = d.AddUnits(anchor, 1, r.Unit), d.AddUnits(anchor, 2, r.Unit)
	default:
		return "", fmt.Errorf("invalid period range direction %q", r.Direction)
	}
	return fmt.Sprintf("%s >= %s AND %s < %s", expr, lo, expr, hi), nil
}

func compileToDateRange(d Dialect, expr string, r *query.DateRange) (string, error) {
	start, err := d.DateTrunc(r.Unit, d.CurrentDate())
	if err != nil {
		return "", err
	}
	end := d.AddUnits(d.CurrentDate(), 1, query.GranDay)
	return fmt.Sprintf("%s >= %s AND %s < %s", expr, start, expr, end), nil
}

func nextDay(date string) (string, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return t.AddDate(0, 0, 1).Format("2006-01-02"), nil
}
