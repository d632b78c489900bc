package parser

import (
	"fmt"
	"regexp"
	"strings"
)

var exerciseRegex = regexp.MustCompile(`^[A-Z]\d+(\.\d+)?$`)

// NormalizeExerciseID normalizes machine ids to the uppercase roster format
// Accepts formats like:
// - "a3", "A3" -> "A3"
// - "f3.1" -> "F3.1"
// Returns error if format is invalid
func NormalizeExerciseID(id string) (string, error) {
	id = strings.ToUpper(strings.TrimSpace(id))

	if !exerciseRegex.MatchString(id) {
		return "", fmt.Errorf("invalid exercise id %q. Use: letter followed by digits, e.g. A3 or F3.1", id)
	}

	return id, nil
}

// IsValidExerciseFormat checks if a string looks like a machine id
func IsValidExerciseFormat(id string) bool {
	return exerciseRegex.MatchString(strings.ToUpper(strings.TrimSpace(id)))
}
