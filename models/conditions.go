package models

// CurrentConditions is the slice of the weather provider's payload the
// server surfaces. Enrichment only; never fed into the feature pipeline.
type CurrentConditions struct {
	Location  string  `json:"location"`
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
}

// weatherapi.com current.json response shape (only the fields we read).
type WeatherAPIResponse struct {
	Location struct {
		Name string `json:"name"`
	} `json:"location"`
	Current struct {
		TempC     float64 `json:"temp_c"`
		Condition struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}
