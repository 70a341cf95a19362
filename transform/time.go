package transform

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// NormalizedTime is a fully resolved 24h clock reading. Minute is always
// inside [0,59]; Hour is whatever the input carried (a corrupt "25" is
// passed through and left to the service-window check, which treats it
// as closed).
type NormalizedTime struct {
	Hour   int
	Minute int
}

// ErrUnparseableTime is returned when none of the accepted time shapes match.
var ErrUnparseableTime = errors.New("unparseable time")

var (
	rangeMeridiemRe  = regexp.MustCompile(`^(\d{1,2}) ?- ?(\d{1,2}) ?(am|pm)$`)
	singleMeridiemRe = regexp.MustCompile(`^(\d{1,2})(?::(\d{1,2}))? ?(am|pm)$`)
	colon24Re        = regexp.MustCompile(`^(\d{1,2}) ?: ?(\d{1,2})$`)
	bareHourRe       = regexp.MustCompile(`^(\d{1,3})$`)
	whitespaceRe     = regexp.MustCompile(`\s+`)
)

// cleanTimeString applies the shared cleanup every parse stage relies on:
// trim, lowercase, unicode dash variants to "-", periods stripped
// ("p.m." -> "pm"), internal whitespace collapsed to single spaces.
func cleanTimeString(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	s = strings.ReplaceAll(s, "–", "-")
	s = strings.ReplaceAll(s, "—", "-")
	s = strings.ReplaceAll(s, "−", "-")
	s = strings.ReplaceAll(s, ".", "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return s
}

// hour12To24 converts a 12h clock hour with its meridiem into 24h.
// "12 am" is midnight, "12 pm" is noon.
func hour12To24(hour int, meridiem string) int {
	if meridiem == "am" {
		if hour == 12 {
			return 0
		}
		return hour
	}
	if hour == 12 {
		return 12
	}
	return hour + 12
}

func clampMinute(m int) int {
	if m < 0 {
		return 0
	}
	if m > 59 {
		return 59
	}
	return m
}

// Normalize parses a human time string into a NormalizedTime. Accepted
// shapes, tried in order with first match winning:
//
//  1. hour range with meridiem        "7-8 pm"   -> start hour, minute 0
//  2. single time with meridiem       "3:05 pm", "3 pm"
//  3. 24h colon form                  "20:15"
//  4. bare integer hour               "7"
//
// A stage that matches but fails to yield numbers falls through to the
// next one. If nothing matches, ErrUnparseableTime is returned wrapped
// with the offending input.
func Normalize(raw string) (NormalizedTime, error) {
	s := cleanTimeString(raw)

	if m := rangeMeridiemRe.FindStringSubmatch(s); m != nil {
		if start, err := strconv.Atoi(m[1]); err == nil {
			return NormalizedTime{Hour: hour12To24(start, m[3]), Minute: 0}, nil
		}
	}

	if m := singleMeridiemRe.FindStringSubmatch(s); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			minute := 0
			if m[2] != "" {
				if mm, err := strconv.Atoi(m[2]); err == nil {
					minute = mm
				}
			}
			return NormalizedTime{Hour: hour12To24(h, m[3]), Minute: clampMinute(minute)}, nil
		}
	}

	if m := colon24Re.FindStringSubmatch(s); m != nil {
		h, errH := strconv.Atoi(m[1])
		mm, errM := strconv.Atoi(m[2])
		if errH == nil && errM == nil {
			return NormalizedTime{Hour: h, Minute: clampMinute(mm)}, nil
		}
	}

	if m := bareHourRe.FindStringSubmatch(s); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			return NormalizedTime{Hour: h, Minute: 0}, nil
		}
	}

	return NormalizedTime{}, fmt.Errorf("%w: %q", ErrUnparseableTime, raw)
}
