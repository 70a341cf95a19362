package transform

import "math"

const minutesPerDay = 1440

// FeatureRecord is one model-ready row. The field set and its derivation
// are shared verbatim between training and inference; any skew between
// the two silently corrupts predictions.
type FeatureRecord struct {
	Station      string  `json:"station"`
	Line         string  `json:"line"`
	DayCategory  string  `json:"day_category"`
	Hour         int     `json:"hour"`
	Minute       int     `json:"minute"`
	IsWeekend    int     `json:"is_weekend"`
	TimeOfDaySin float64 `json:"tod_sin"`
	TimeOfDayCos float64 `json:"tod_cos"`
}

// FeatureNames is the output schema of BuildFeatures, in order. A loaded
// model's metadata must list exactly these names or the loader refuses
// to serve it.
var FeatureNames = []string{
	"station",
	"line",
	"day_category",
	"hour",
	"minute",
	"is_weekend",
	"tod_sin",
	"tod_cos",
}

// BuildFeatures derives the full feature row from raw categorical fields
// and a normalized time. Pure: no I/O, no shared state.
//
// The cyclical pair maps minute_of_day onto the unit circle with a 1440
// minute period, so 23:59 and 00:00 come out numerically adjacent where
// a raw linear hour would put them at opposite extremes.
func BuildFeatures(station, line, dayRaw string, t NormalizedTime) FeatureRecord {
	day := CleanCategory(dayRaw)
	minuteOfDay := float64(t.Hour*60 + t.Minute)
	angle := 2 * math.Pi * minuteOfDay / minutesPerDay

	weekend := 0
	if IsWeekendDay(day) {
		weekend = 1
	}

	return FeatureRecord{
		Station:      CleanCategory(station),
		Line:         CleanCategory(line),
		DayCategory:  day,
		Hour:         t.Hour,
		Minute:       t.Minute,
		IsWeekend:    weekend,
		TimeOfDaySin: math.Sin(angle),
		TimeOfDayCos: math.Cos(angle),
	}
}
