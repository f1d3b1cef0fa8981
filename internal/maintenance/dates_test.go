package maintenance

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		ok   bool
	}{
		{"2025-01-15", Date{2025, time.January, 15}, true},
		{" 2025-01-15 ", Date{2025, time.January, 15}, true},
		{"2025-01-15T23:30:00-05:00", Date{2025, time.January, 15}, true},
		{"2025-01-15 08:00:00", Date{2025, time.January, 15}, true},
		{"2025-01-15T08:00:00", Date{2025, time.January, 15}, true},
		{"2025-01-15T08:00:00.123456", Date{2025, time.January, 15}, true},
		{"2025-01-15Tgarbage", Date{}, false},
		{"2025-01-15 not a date", Date{}, false},
		{"2025-01-15T", Date{}, false},
		{"2025-01-15T25:00:00", Date{}, false},
		{"", Date{}, false},
		{"2025-02-30", Date{}, false},
		{"15.01.2025", Date{}, false},
		{"tomorrow", Date{}, false},
	}
	for _, tt := range tests {
		got, ok := ParseDate(tt.in)
		assert.Equal(t, tt.ok, ok, "ParseDate(%q)", tt.in)
		assert.Equal(t, tt.want, got, "ParseDate(%q)", tt.in)
	}
}

func TestDate_CompareAndJSON(t *testing.T) {
	a := mustDate("2024-12-31")
	b := mustDate("2025-01-01")
	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.False(t, a.Before(a))

	raw, err := json.Marshal(b)
	require.NoError(t, err)
	assert.Equal(t, `"2025-01-01"`, string(raw))

	var back Date
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.Equal(t, b, back)
}

func TestYearMonth_Navigation(t *testing.T) {
	dec := YearMonth{Year: 2024, Month: time.December}
	assert.Equal(t, YearMonth{Year: 2025, Month: time.January}, dec.Next())

	jan := YearMonth{Year: 2025, Month: time.January}
	assert.Equal(t, YearMonth{Year: 2024, Month: time.December}, jan.Prev())

	assert.Equal(t, jan, jan.Prev().Next())
	assert.Equal(t, YearMonth{Year: 2026, Month: time.January}, NewYearMonth(2025, 13))
}

func TestYearMonth_DaysIn(t *testing.T) {
	assert.Equal(t, 29, YearMonth{2024, time.February}.DaysIn())
	assert.Equal(t, 28, YearMonth{2025, time.February}.DaysIn())
	assert.Equal(t, 31, YearMonth{2025, time.December}.DaysIn())
	assert.Equal(t, "January 2025", YearMonth{2025, time.January}.Title())
}
