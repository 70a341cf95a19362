package models

import (
	"encoding/json"
	"fmt"
)

// PredictRecord is one prediction input with an already-integer hour,
// as sent to POST /v1/predict.
type PredictRecord struct {
	Station string `json:"station"`
	Line    string `json:"line"`
	Hour    int    `json:"hour"`
	DayType string `json:"day_type"`
}

// PredictTimeRecord is one prediction input carrying a free-form time
// string ("12:35 am", "3:00 pm", "15:05"), as sent to POST /v1/predict_time.
type PredictTimeRecord struct {
	Station string `json:"station"`
	Line    string `json:"line"`
	DayType string `json:"day_type"`
	Time    string `json:"time"`
}

// PredictRequest wraps one record or a list of records under "records".
type PredictRequest struct {
	Records []PredictRecord `json:"records"`
}

// PredictTimeRequest wraps one time-string record or a list of them.
type PredictTimeRequest struct {
	Records []PredictTimeRecord `json:"records"`
}

// UnmarshalJSON accepts "records" as either a single object or an array,
// matching the original wire contract.
func (r *PredictRequest) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Records json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	records, err := unmarshalOneOrMany[PredictRecord](wrapper.Records)
	if err != nil {
		return err
	}
	r.Records = records
	return nil
}

func (r *PredictTimeRequest) UnmarshalJSON(data []byte) error {
	var wrapper struct {
		Records json.RawMessage `json:"records"`
	}
	if err := json.Unmarshal(data, &wrapper); err != nil {
		return err
	}
	records, err := unmarshalOneOrMany[PredictTimeRecord](wrapper.Records)
	if err != nil {
		return err
	}
	r.Records = records
	return nil
}

func unmarshalOneOrMany[T any](raw json.RawMessage) ([]T, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("missing records field")
	}
	var many []T
	if err := json.Unmarshal(raw, &many); err == nil {
		return many, nil
	}
	var one T
	if err := json.Unmarshal(raw, &one); err != nil {
		return nil, fmt.Errorf("records must be an object or an array: %v", err)
	}
	return []T{one}, nil
}

// PredictResponseItem echoes one prediction back to the caller.
type PredictResponseItem struct {
	Station string  `json:"station"`
	Line    string  `json:"line"`
	Hour    int     `json:"hour"`
	Minute  int     `json:"minute"`
	DayType string  `json:"day_type"`
	Riders  float64 `json:"riders"`
}

// PredictResponse is the response body for both predict endpoints.
type PredictResponse struct {
	ModelVersion string                `json:"model_version"`
	Predictions  []PredictResponseItem `json:"predictions"`
}
