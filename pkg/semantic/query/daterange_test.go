package query

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRangeStringGrammar(t *testing.T) {
	tests := []struct {
		in   string
		want DateRange
	}{
		{"last_7_days", DateRange{Kind: RangeRelative, Direction: DirLast, N: 7, Unit: GranDay}},
		{"last 30 days", DateRange{Kind: RangeRelative, Direction: DirLast, N: 30, Unit: GranDay}},
		{"next 2 quarters", DateRange{Kind: RangeRelative, Direction: DirNext, N: 2, Unit: GranQuarter}},
		{"this month", DateRange{Kind: RangePeriod, Direction: DirThis, Unit: GranMonth}},
		{"last year", DateRange{Kind: RangePeriod, Direction: DirLast, Unit: GranYear}},
		{"today", DateRange{Kind: RangePeriod, Direction: DirThis, Unit: GranDay}},
		{"yesterday", DateRange{Kind: RangePeriod, Direction: DirLast, Unit: GranDay}},
		{"month_to_date", DateRange{Kind: RangeToDate, Unit: GranMonth}},
		{"year to date", DateRange{Kind: RangeToDate, Unit: GranYear}},
		{"before:2024-06-01", DateRange{Kind: RangeSingleOp, Op: "before", OpDate: "2024-06-01"}},
		{"after:2024-01-15", DateRange{Kind: RangeSingleOp, Op: "after", OpDate: "2024-01-15"}},
		{"on:2024-03-08", DateRange{Kind: RangeSingleOp, Op: "on", OpDate: "2024-03-08"}},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseDateRangeString(tc.in)
			require.NoError(t, err)
			tc.want.Raw = tc.in
			assert.Equal(t, &tc.want, got)
		})
	}
}

func TestParseDateRangeStringRejectsGarbage(t *testing.T) {
	for _, in := range []string{
		"",
		"fortnight",
		"last seven days",
		"last 0 days",
		"last -3 days",
		"next 2 fortnights",
		"before:junk",
	} {
		t.Run(in, func(t *testing.T) {
			_, err := ParseDateRangeString(in)
			assert.Error(t, err)
		})
	}
}

func TestParseDateRangeAbsolute(t *testing.T) {
	r, err := ParseDateRange([]string{"2024-01-01", "2024-03-31"})
	require.NoError(t, err)
	assert.Equal(t, RangeAbsolute, r.Kind)
	assert.Equal(t, "2024-01-01", r.Start)
	assert.Equal(t, "2024-03-31", r.End)

	_, err = ParseDateRange([]string{"2024-01-01"})
	assert.Error(t, err)

	_, err = ParseDateRange([]string{"2024-01-01", "not-a-date"})
	assert.Error(t, err)
}

func TestDateRangeJSONRoundTrip(t *testing.T) {
	// Absolute ranges travel as [start, end] arrays.
	var abs DateRange
	require.NoError(t, json.Unmarshal([]byte(`["2024-01-01","2024-03-31"]`), &abs))
	assert.Equal(t, RangeAbsolute, abs.Kind)
	out, err := json.Marshal(abs)
	require.NoError(t, err)
	assert.JSONEq(t, `["2024-01-01","2024-03-31"]`, string(out))

	// Grammar strings keep their wire spelling.
	var rel DateRange
	require.NoError(t, json.Unmarshal([]byte(`"last_7_days"`), &rel))
	assert.Equal(t, RangeRelative, rel.Kind)
	out, err = json.Marshal(rel)
	require.NoError(t, err)
	assert.Equal(t, `"last_7_days"`, string(out))

	var bad DateRange
	assert.Error(t, json.Unmarshal([]byte(`42`), &bad))
}

func TestParseISOAndDateOnly(t *testing.T) {
	for _, in := range []string{
		"2024-06-01",
		"2024-06-01T10:30:00",
		"2024-06-01 10:30:00",
		"2024-06-01T10:30:00Z",
	} {
		_, err := ParseISO(in)
		assert.NoError(t, err, in)
	}
	_, err := ParseISO("06/01/2024")
	assert.Error(t, err)

	assert.True(t, IsDateOnly("2024-06-01"))
	assert.False(t, IsDateOnly("2024-06-01T10:30:00"))
}
