package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	dateRegex     = regexp.MustCompile(`^(\d{1,2})/(\d{1,2})/(\d{4})(?:[ t-](\d{1,2}):(\d{2}))?$`)
	clockRegex    = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)
	relativeRegex = regexp.MustCompile(`^(\d+)\s*(h|hour|hours|d|day|days)(?:\s+ago)?$`)
)

// ParseWhen parses the moment an entry happened, relative to now.
// Supported formats:
// - dd/mm/yyyy (e.g., "21/01/2026"), midnight of that day
// - dd/mm/yyyy HH:MM (e.g., "21/01/2026 18:30")
// - HH:MM (e.g., "07:45"), today at that time
// - today, yesterday
// - X days ago, X hours ago (also "3d", "2h")
// Dates are interpreted in now's location.
func ParseWhen(input string, now time.Time) (time.Time, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" || input == "now" {
		return now, nil
	}

	switch input {
	case "today":
		return now, nil
	case "yesterday":
		return now.AddDate(0, 0, -1), nil
	}

	// Try dd/mm/yyyy [HH:MM] first
	if matches := dateRegex.FindStringSubmatch(input); matches != nil {
		return parseDateFormat(matches, now.Location())
	}

	// Time of day today
	if matches := clockRegex.FindStringSubmatch(input); matches != nil {
		hour, minute, err := parseClock(matches[1], matches[2])
		if err != nil {
			return time.Time{}, err
		}
		return time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location()), nil
	}

	// Relative time formats
	if matches := relativeRegex.FindStringSubmatch(input); matches != nil {
		return parseRelativeTime(matches, now)
	}

	return time.Time{}, fmt.Errorf("invalid date format. Use: dd/mm/yyyy, dd/mm/yyyy HH:MM, HH:MM, today, yesterday, X days ago or X hours ago")
}

// parseDateFormat builds the time from dd/mm/yyyy [HH:MM] submatches
func parseDateFormat(matches []string, loc *time.Location) (time.Time, error) {
	day, _ := strconv.Atoi(matches[1])
	month, _ := strconv.Atoi(matches[2])
	year, _ := strconv.Atoi(matches[3])

	if day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("day must be between 1 and 31")
	}
	if month < 1 || month > 12 {
		return time.Time{}, fmt.Errorf("month must be between 1 and 12")
	}

	hour, minute := 0, 0
	if matches[4] != "" {
		var err error
		hour, minute, err = parseClock(matches[4], matches[5])
		if err != nil {
			return time.Time{}, err
		}
	}

	date := time.Date(year, time.Month(month), day, hour, minute, 0, 0, loc)

	// time.Date normalises 31/02 into March
	if date.Day() != day || date.Month() != time.Month(month) || date.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date")
	}

	return date, nil
}

// ParseClock parses a HH:MM time of day
func ParseClock(input string) (int, int, error) {
	matches := clockRegex.FindStringSubmatch(strings.TrimSpace(input))
	if matches == nil {
		return 0, 0, fmt.Errorf("invalid time %q. Use: HH:MM", input)
	}
	return parseClock(matches[1], matches[2])
}

func parseClock(h, m string) (int, int, error) {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	if hour > 23 {
		return 0, 0, fmt.Errorf("hour must be between 0 and 23")
	}
	if minute > 59 {
		return 0, 0, fmt.Errorf("minute must be between 0 and 59")
	}
	return hour, minute, nil
}

// parseRelativeTime handles "3 days ago", "2 hours ago", "3d" and "2h"
func parseRelativeTime(matches []string, now time.Time) (time.Time, error) {
	amount, err := strconv.Atoi(matches[1])
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid number")
	}

	switch matches[2] {
	case "h", "hour", "hours":
		if amount > 8760 { // Max 1 year in hours
			return time.Time{}, fmt.Errorf("hours must be between 0 and 8760")
		}
		return now.Add(-time.Duration(amount) * time.Hour), nil
	case "d", "day", "days":
		if amount > 365 {
			return time.Time{}, fmt.Errorf("days must be between 0 and 365")
		}
		return now.AddDate(0, 0, -amount), nil
	default:
		return time.Time{}, fmt.Errorf("unsupported time unit")
	}
}
