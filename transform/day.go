package transform

import (
	"fmt"
	"strings"
)

// DayClass is the weekday/weekend split the service window and the
// weekend feature flag both key off.
type DayClass int

const (
	Weekday DayClass = iota
	Weekend
)

func (d DayClass) String() string {
	if d == Weekend {
		return "weekend"
	}
	return "weekday"
}

// The only copies of the weekday/weekend sets in the codebase. Everything
// that needs the split goes through ClassifyDay or IsWeekendDay.
var weekdayNames = map[string]bool{
	"monday":    true,
	"tuesday":   true,
	"wednesday": true,
	"thursday":  true,
	"friday":    true,
}

var weekendNames = map[string]bool{
	"saturday": true,
	"sunday":   true,
}

// CleanCategory standardizes a categorical string the same way for
// training and inference: trim then lowercase. Idempotent.
func CleanCategory(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ClassifyDay canonicalizes a day category into a DayClass. Recognized
// inputs are the seven English day names plus the literals "weekday" and
// "weekend" (case-insensitive, whitespace-trimmed). Anything else is an
// error the caller surfaces as a validation failure.
func ClassifyDay(raw string) (DayClass, error) {
	day := CleanCategory(raw)
	switch {
	case weekdayNames[day], day == "weekday":
		return Weekday, nil
	case weekendNames[day], day == "weekend":
		return Weekend, nil
	default:
		return Weekday, fmt.Errorf("unrecognized day category: %q", raw)
	}
}

// IsWeekendDay reports whether an already-cleaned day category falls in
// the weekend set. Unrecognized values count as weekday, matching the
// training pipeline's is_weekend flag.
func IsWeekendDay(cleaned string) bool {
	return weekendNames[cleaned] || cleaned == "weekend"
}
