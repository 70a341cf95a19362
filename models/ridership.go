package models

// RidershipRow is one row of the long-format historical ridership data.
// HourRaw is kept as the original text; the spreadsheet mixes "6 AM",
// "7-8 pm", "15:05" and bare integers, and normalization happens in the
// shared transform package so training and inference cannot diverge.
type RidershipRow struct {
	Station string  `json:"station"`
	Line    string  `json:"line"`
	DayType string  `json:"day_type"`
	HourRaw string  `json:"hour"`
	Riders  float64 `json:"riders"`
}
