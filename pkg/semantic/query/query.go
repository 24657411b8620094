// Package query defines the strongly-typed semantic query AST: measures,
// dimensions, time dimensions with a date-range grammar, filters, segments,
// ordering and paging. The wire contract is JSON with camelCase aliases.
package query

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Granularity enumerates time-dimension truncation units.
type Granularity string

const (
	GranDay     Granularity = "day"
	GranWeek    Granularity = "week"
	GranMonth   Granularity = "month"
	GranQuarter Granularity = "quarter"
	GranYear    Granularity = "year"
	GranHour    Granularity = "hour"
	GranMinute  Granularity = "minute"
	GranSecond  Granularity = "second"
)

// Valid reports whether the granularity is one of the supported units.
func (g Granularity) Valid() bool {
	switch g {
	case GranDay, GranWeek, GranMonth, GranQuarter, GranYear, GranHour, GranMinute, GranSecond:
		return true
	}
	return false
}

// Operator enumerates filter operators.
type Operator string

const (
	OpEquals         Operator = "equals"
	OpNotEquals      Operator = "notEquals"
	OpContains       Operator = "contains"
	OpNotContains    Operator = "notContains"
	OpStartsWith     Operator = "startsWith"
	OpEndsWith       Operator = "endsWith"
	OpGt             Operator = "gt"
	OpGte            Operator = "gte"
	OpLt             Operator = "lt"
	OpLte            Operator = "lte"
	OpBeforeDate     Operator = "beforeDate"
	OpAfterDate      Operator = "afterDate"
	OpInDateRange    Operator = "inDateRange"
	OpNotInDateRange Operator = "notInDateRange"
	OpSet            Operator = "set"
	OpNotSet         Operator = "notSet"
	OpIn             Operator = "in"
	OpNotIn          Operator = "notIn"
)

// Valid reports whether the operator is known.
func (o Operator) Valid() bool {
	switch o {
	case OpEquals, OpNotEquals, OpContains, OpNotContains, OpStartsWith,
		OpEndsWith, OpGt, OpGte, OpLt, OpLte, OpBeforeDate, OpAfterDate,
		OpInDateRange, OpNotInDateRange, OpSet, OpNotSet, OpIn, OpNotIn:
		return true
	}
	return false
}

// TimeDimension selects a temporal dimension with optional truncation and an
// optional date range (absolute pair, named preset, or single-operator form).
type TimeDimension struct {
	Dimension   string      `json:"dimension"`
	Granularity Granularity `json:"granularity,omitempty"`
	DateRange   *DateRange  `json:"dateRange,omitempty"`
}

// FilterItem is one predicate. Exactly one of Member, Dimension, Measure, or
// TimeDimensionRef names the target; they are aliases kept for wire
// compatibility.
type FilterItem struct {
	Member           string   `json:"member,omitempty"`
	Dimension        string   `json:"dimension,omitempty"`
	Measure          string   `json:"measure,omitempty"`
	TimeDimensionRef string   `json:"timeDimension,omitempty"`
	Operator         Operator `json:"operator"`
	Values           []string `json:"values,omitempty"`
}

// Target returns whichever alias field names the filtered member.
func (f *FilterItem) Target() string {
	switch {
	case f.Member != "":
		return f.Member
	case f.Dimension != "":
		return f.Dimension
	case f.Measure != "":
		return f.Measure
	default:
		return f.TimeDimensionRef
	}
}

// IsMeasureFilter reports whether the filter was declared through the
// measure alias, which routes it to HAVING rather than WHERE.
func (f *FilterItem) IsMeasureFilter() bool {
	return f.Measure != ""
}

// OrderItem is one ORDER BY entry. Desc false means ASC.
type OrderItem struct {
	Member string
	Desc   bool
}

// Order preserves the caller's ordering of order-by members.
type Order []OrderItem

// UnmarshalJSON accepts both wire spellings: an object whose key order is
// meaningful ({"a": "desc", "b": "asc"}) and an array of [member, direction]
// pairs. Object key order is recovered with a token scan because
// encoding/json maps discard it.
func (o *Order) UnmarshalJSON(data []byte) error {
	items, err := parseOrderJSON(data)
	if err != nil {
		return err
	}
	*o = items
	return nil
}

// MarshalJSON always emits the array-of-pairs form, which is order-stable.
func (o Order) MarshalJSON() ([]byte, error) {
	pairs := make([][2]string, 0, len(o))
	for _, item := range o {
		dir := "asc"
		if item.Desc {
			dir = "desc"
		}
		pairs = append(pairs, [2]string{item.Member, dir})
	}
	return json.Marshal(pairs)
}

func parseOrderJSON(data []byte) (Order, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	delim, ok := tok.(json.Delim)
	if !ok {
		return nil, fmt.Errorf("order must be an object or array")
	}

	var out Order
	switch delim {
	case '{':
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			member := keyTok.(string)
			var dir string
			if err := dec.Decode(&dir); err != nil {
				return nil, fmt.Errorf("order direction for %q: %w", member, err)
			}
			out = append(out, OrderItem{Member: member, Desc: dir == "desc"})
		}
	case '[':
		for dec.More() {
			var raw json.RawMessage
			if err := dec.Decode(&raw); err != nil {
				return nil, err
			}
			item, err := parseOrderEntry(raw)
			if err != nil {
				return nil, err
			}
			out = append(out, item)
		}
	}
	return out, nil
}

// parseOrderEntry accepts ["member", "desc"] pairs and {"member": "desc"}
// single-key objects inside the array form.
func parseOrderEntry(raw json.RawMessage) (OrderItem, error) {
	var pair []string
	if err := json.Unmarshal(raw, &pair); err == nil {
		if len(pair) == 0 {
			return OrderItem{}, fmt.Errorf("empty order entry")
		}
		item := OrderItem{Member: pair[0]}
		if len(pair) > 1 {
			item.Desc = pair[1] == "desc"
		}
		return item, nil
	}
	var obj map[string]string
	if err := json.Unmarshal(raw, &obj); err != nil || len(obj) != 1 {
		return OrderItem{}, fmt.Errorf("invalid order entry %s", raw)
	}
	for member, dir := range obj {
		return OrderItem{Member: member, Desc: dir == "desc"}, nil
	}
	return OrderItem{}, nil
}

// Query is the semantic query AST.
type Query struct {
	Measures       []string        `json:"measures,omitempty"`
	Dimensions     []string        `json:"dimensions,omitempty"`
	TimeDimensions []TimeDimension `json:"timeDimensions,omitempty"`
	Filters        []FilterItem    `json:"filters,omitempty"`
	Segments       []string        `json:"segments,omitempty"`
	Order          Order           `json:"order,omitempty"`
	Limit          *int            `json:"limit,omitempty"`
	Offset         *int            `json:"offset,omitempty"`
	Timezone       string          `json:"timezone,omitempty"`
}

// Validate checks structural invariants before compilation: at least one
// selected member, known operators and granularities, values present where
// the operator demands them.
func (q *Query) Validate() error {
	if len(q.Measures) == 0 && len(q.Dimensions) == 0 && len(q.TimeDimensions) == 0 {
		return fmt.Errorf("query selects no measures, dimensions, or time dimensions")
	}
	for i := range q.TimeDimensions {
		td := &q.TimeDimensions[i]
		if td.Dimension == "" {
			return fmt.Errorf("time dimension %d has no dimension", i)
		}
		if td.Granularity != "" && !td.Granularity.Valid() {
			return fmt.Errorf("time dimension %q has unsupported granularity %q", td.Dimension, td.Granularity)
		}
	}
	for i := range q.Filters {
		f := &q.Filters[i]
		if f.Target() == "" {
			return fmt.Errorf("filter %d names no member", i)
		}
		if !f.Operator.Valid() {
			return fmt.Errorf("filter on %q has unknown operator %q", f.Target(), f.Operator)
		}
		switch f.Operator {
		case OpSet, OpNotSet:
			// values, if any, are ignored
		default:
			if len(f.Values) == 0 {
				return fmt.Errorf("filter %q %s requires at least one value", f.Target(), f.Operator)
			}
		}
	}
	return nil
}
