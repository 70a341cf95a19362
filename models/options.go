package models

// OptionsResponse lists the valid input values the model was trained on,
// consumed by UI dropdowns. Values come from the historical ridership
// store so the UI cannot drift from the model.
type OptionsResponse struct {
	Hours    []int    `json:"hours"`
	DayTypes []string `json:"day_types"`
	Stations []string `json:"stations"`
	Lines    []string `json:"lines"`
}
