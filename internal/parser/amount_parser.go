package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	amountRegex   = regexp.MustCompile(`^(-?\d+(?:[.,]\d+)?)\s*([a-zA-Zµ%]*)$`)
	durationRegex = regexp.MustCompile(`^(\d+)\s*(s|sec|secs|seconds|m|min|mins|minutes)?$`)
	mmssRegex     = regexp.MustCompile(`^(\d+):([0-5]\d)$`)
)

// ParseAmount splits an amount into its number and unit
// Accepts formats like:
// - "95mg", "95 mg" -> 95, "mg"
// - "0,5l" -> 0.5, "l"
// - "2" -> 2, ""
func ParseAmount(input string) (float64, string, error) {
	input = strings.TrimSpace(input)
	matches := amountRegex.FindStringSubmatch(input)
	if matches == nil {
		return 0, "", fmt.Errorf("invalid amount %q. Use: a number with an optional unit, e.g. 95mg", input)
	}

	value, err := strconv.ParseFloat(strings.Replace(matches[1], ",", ".", 1), 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid number %q", matches[1])
	}

	return value, strings.ToLower(matches[2]), nil
}

// ParseSeconds parses a set duration into seconds
// Accepts formats like:
// - "120", "120s" -> 120
// - "2m", "2 min" -> 120
// - "1:30" -> 90
func ParseSeconds(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))

	if matches := mmssRegex.FindStringSubmatch(input); matches != nil {
		minutes, _ := strconv.Atoi(matches[1])
		seconds, _ := strconv.Atoi(matches[2])
		return minutes*60 + seconds, nil
	}

	matches := durationRegex.FindStringSubmatch(input)
	if matches == nil {
		return 0, fmt.Errorf("invalid duration %q. Use: 120, 120s, 2m or 1:30", input)
	}

	value, err := strconv.Atoi(matches[1])
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", matches[1])
	}

	switch matches[2] {
	case "m", "min", "mins", "minutes":
		return value * 60, nil
	default:
		return value, nil
	}
}
