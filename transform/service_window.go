package transform

// Subway service hours:
//   Mon-Fri  06:00-23:59 same day, plus 00:00-01:30 attributed to the
//            previous service day
//   Sat-Sun  08:00-23:59 same day, plus the same 00:00-01:30 tail
// 01:30 is the last open minute; 01:31 is closed until the next start.

const (
	weekdayStartHour = 6
	weekendStartHour = 8
	lastOpenHour     = 23
	tailLastMinute   = 30
)

// StartHour returns the first open hour for a day class.
func StartHour(day DayClass) int {
	if day == Weekend {
		return weekendStartHour
	}
	return weekdayStartHour
}

// IsOpen is the authoritative, minute-aware service window rule. It is
// the single decision point for both single-record inference and the
// grid path used for hourly profiles.
func IsOpen(day DayClass, t NormalizedTime) bool {
	start := StartHour(day)
	if t.Hour >= start && t.Hour <= lastOpenHour {
		return true
	}
	if t.Hour == 0 {
		return true
	}
	return t.Hour == 1 && t.Minute <= tailLastMinute
}

// IsServiceHour is the coarse hour-only guardrail kept at the API
// boundary. It only ever rejects hours that IsOpen would also reject
// for every day class (2..5), so it can never admit a closed minute on
// its own; IsOpen still decides.
func IsServiceHour(hour int) bool {
	return (hour >= weekdayStartHour && hour <= lastOpenHour) || hour == 0 || hour == 1
}

// HoursForDay lists the whole-hour samples of a service day in service
// order: start..23 then the 0 and 1 o'clock tail. Used by the profile
// grid; membership is still re-checked with IsOpen.
func HoursForDay(day DayClass) []int {
	hours := make([]int, 0, 26-StartHour(day))
	for h := StartHour(day); h <= lastOpenHour; h++ {
		hours = append(hours, h)
	}
	return append(hours, 0, 1)
}
