package parser_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/logbook/internal/parser"
)

var now = time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)

func TestParseAmount(t *testing.T) {
	testCases := map[string]struct {
		value float64
		unit  string
	}{
		"95mg":   {95, "mg"},
		"95 mg":  {95, "mg"},
		"0,5l":   {0.5, "l"},
		"2":      {2, ""},
		"-3":     {-3, ""},
		"82.5KG": {82.5, "kg"},
	}
	for input, tc := range testCases {
		t.Run(input, func(t *testing.T) {
			value, unit, err := parser.ParseAmount(input)
			require.NoError(t, err)
			assert.Equal(t, tc.value, value)
			assert.Equal(t, tc.unit, unit)
		})
	}

	for _, input := range []string{"", "mg", "1.2.3", "12 mg extra"} {
		_, _, err := parser.ParseAmount(input)
		assert.Error(t, err, input)
	}
}

func TestParseSeconds(t *testing.T) {
	testCases := map[string]int{
		"120":   120,
		"90s":   90,
		"2m":    120,
		"2 min": 120,
		"1:30":  90,
	}
	for input, want := range testCases {
		got, err := parser.ParseSeconds(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parser.ParseSeconds("long")
	assert.Error(t, err)
	_, err = parser.ParseSeconds("1:75")
	assert.Error(t, err)
}

func TestParseWhen(t *testing.T) {
	testCases := map[string]time.Time{
		"":                 now,
		"today":            now,
		"Yesterday":        now.AddDate(0, 0, -1),
		"21/01/2026":       time.Date(2026, 1, 21, 0, 0, 0, 0, time.UTC),
		"1/2/2026 18:05":   time.Date(2026, 2, 1, 18, 5, 0, 0, time.UTC),
		"21/01/2026-07:45": time.Date(2026, 1, 21, 7, 45, 0, 0, time.UTC),
		"07:45":            time.Date(2026, 3, 15, 7, 45, 0, 0, time.UTC),
		"3 days ago":       now.AddDate(0, 0, -3),
		"1 day ago":        now.AddDate(0, 0, -1),
		"2 hours ago":      now.Add(-2 * time.Hour),
		"2h":               now.Add(-2 * time.Hour),
		"3d":               now.AddDate(0, 0, -3),
	}
	for input, want := range testCases {
		t.Run(input, func(t *testing.T) {
			got, err := parser.ParseWhen(input, now)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseWhen_Invalid(t *testing.T) {
	for _, input := range []string{"31/02/2026", "12/13/2026", "25:00", "soon", "3 weeks ago"} {
		_, err := parser.ParseWhen(input, now)
		assert.Error(t, err, input)
	}
}

func TestNormalizeExerciseID(t *testing.T) {
	testCases := map[string]string{
		"a3":    "A3",
		" f3.1": "F3.1",
		"J1":    "J1",
	}
	for input, want := range testCases {
		got, err := parser.NormalizeExerciseID(input)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.True(t, parser.IsValidExerciseFormat(input))
	}

	for _, input := range []string{"", "A", "3A", "AB3", "F3."} {
		_, err := parser.NormalizeExerciseID(input)
		assert.Error(t, err, input)
		assert.False(t, parser.IsValidExerciseFormat(input))
	}
}

func TestParseLogLine(t *testing.T) {
	parsed := parser.ParseLogLine("double espresso 150mg @espresso at:yesterday", now)

	assert.Empty(t, parsed.Errors)
	assert.Equal(t, "double espresso", parsed.Name)
	assert.True(t, parsed.HasAmount)
	assert.Equal(t, 150.0, parsed.Amount)
	assert.Equal(t, "mg", parsed.Unit)
	assert.Equal(t, "espresso", parsed.Preset)
	require.NotNil(t, parsed.When)
	assert.Equal(t, now.AddDate(0, 0, -1), *parsed.When)
}

func TestParseLogLine_NameOnly(t *testing.T) {
	parsed := parser.ParseLogLine("  green   tea ", now)

	assert.Equal(t, "green tea", parsed.Name)
	assert.False(t, parsed.HasAmount)
	assert.Nil(t, parsed.When)
	assert.Empty(t, parsed.Preset)
}

func TestParseLogLine_Errors(t *testing.T) {
	parsed := parser.ParseLogLine("cola 1.2.3 at:someday", now)

	assert.Len(t, parsed.Errors, 1)
	assert.Nil(t, parsed.When)
	assert.False(t, parsed.HasAmount)
}

func TestParseClock(t *testing.T) {
	hour, minute, err := parser.ParseClock("09:05")
	require.NoError(t, err)
	assert.Equal(t, 9, hour)
	assert.Equal(t, 5, minute)

	for _, input := range []string{"9", "24:00", "12:60", "noon"} {
		_, _, err := parser.ParseClock(input)
		assert.Error(t, err, input)
	}
}
