package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/balkashynov/logbook/internal/dates"
)

// shortID is the id prefix shown in listings
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// matchID resolves a full id or a unique id prefix against ids
func matchID(prefix string, ids []string) (string, error) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		return "", fmt.Errorf("empty id")
	}

	var found []string
	for _, id := range ids {
		if id == prefix {
			return id, nil
		}
		if strings.HasPrefix(id, prefix) {
			found = append(found, id)
		}
	}

	switch len(found) {
	case 0:
		return "", fmt.Errorf("no entry with id '%s'", prefix)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("id '%s' is ambiguous (%d matches)", prefix, len(found))
	}
}

func formatAmount(amount float64, unit string) string {
	value := humanize.FtoaWithDigits(amount, 2)
	if unit == "" {
		return value
	}
	return value + " " + unit
}

// formatWhen shows today's entries by time and older ones relative to now
func formatWhen(t, now time.Time) string {
	if dates.DayKey(t, now.Location()) == dates.DayKey(now, now.Location()) {
		return t.In(now.Location()).Format("15:04")
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
