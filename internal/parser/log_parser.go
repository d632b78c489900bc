package parser

import (
	"regexp"
	"strings"
	"time"
)

// ParsedLog represents an item parsed from a quick log line
type ParsedLog struct {
	Name      string
	Amount    float64
	HasAmount bool
	Unit      string
	Preset    string // preset id or name, resolved by the caller
	When      *time.Time
	Errors    []string
}

var (
	logAmountRegex = regexp.MustCompile(`(?:^|\s)(-?\d+(?:[.,]\d+)?[a-zA-Zµ%]*)(?:\s|$)`)
	logPresetRegex = regexp.MustCompile(`@([a-zA-Z0-9_-]+)`)
	logWhenRegex   = regexp.MustCompile(`at:([^\s]+)`)
)

// ParseLogLine extracts metadata from a log line using natural syntax
// Syntax: "double espresso 150mg @espresso at:yesterday"
// The first number (with an optional unit) is the amount, @word references
// a preset and at: sets the time (see ParseWhen). The rest is the name.
func ParseLogLine(input string, now time.Time) ParsedLog {
	result := ParsedLog{
		Errors: []string{},
	}

	// Extract time (at:yesterday, at:07:45, at:21/01/2026)
	whenMatches := logWhenRegex.FindStringSubmatch(input)
	if len(whenMatches) > 1 {
		when, err := ParseWhen(whenMatches[1], now)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid time '"+whenMatches[1]+"': "+err.Error())
		} else {
			result.When = &when
		}
		// Remove from name
		input = logWhenRegex.ReplaceAllString(input, "")
	}

	// Extract preset (@espresso)
	presetMatches := logPresetRegex.FindStringSubmatch(input)
	if len(presetMatches) > 1 {
		result.Preset = presetMatches[1]
		input = logPresetRegex.ReplaceAllString(input, "")
	}

	// Extract amount (150mg, 2, 0.5l)
	amountMatches := logAmountRegex.FindStringSubmatchIndex(input)
	if amountMatches != nil {
		raw := input[amountMatches[2]:amountMatches[3]]
		amount, unit, err := ParseAmount(raw)
		if err != nil {
			result.Errors = append(result.Errors, "Invalid amount '"+raw+"': "+err.Error())
		} else {
			result.Amount = amount
			result.Unit = unit
			result.HasAmount = true
		}
		input = input[:amountMatches[2]] + input[amountMatches[3]:]
	}

	// Clean up the name (remove extra spaces)
	result.Name = strings.Join(strings.Fields(input), " ")

	return result
}
