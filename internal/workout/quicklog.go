package workout

import (
	"github.com/balkashynov/logbook/internal/parser"
)

// DefaultTimeSeconds is the target time under load of one set
const DefaultTimeSeconds = 120

// QuickLogValues turns the raw quick-log inputs into a weight and a time.
// An unreadable weight logs 0 kg; an unreadable or zero time logs the
// default 120 s.
func QuickLogValues(weightInput, timeInput string) (float64, int) {
	weight, _, err := parser.ParseAmount(weightInput)
	if err != nil {
		weight = 0
	}

	seconds, err := parser.ParseSeconds(timeInput)
	if err != nil || seconds == 0 {
		seconds = DefaultTimeSeconds
	}

	return weight, seconds
}
