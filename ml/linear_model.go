package ml

import (
	"encoding/json"
	"fmt"
	"os"

	"ttc-rider-server/transform"
)

// Numeric weight keys in the artifact.
const (
	weightHour      = "hour"
	weightMinute    = "minute"
	weightIsWeekend = "is_weekend"
	weightTodSin    = "tod_sin"
	weightTodCos    = "tod_cos"
)

// LinearModel is an additive regression model stored as a JSON artifact:
// a global intercept, one effect per seen categorical value, and one
// weight per numeric feature. A categorical value missing from its map
// contributes zero, which is how unseen stations/lines/days at inference
// time are tolerated rather than rejected.
type LinearModel struct {
	Intercept      float64            `json:"intercept"`
	StationWeights map[string]float64 `json:"station_weights"`
	LineWeights    map[string]float64 `json:"line_weights"`
	DayWeights     map[string]float64 `json:"day_weights"`
	NumericWeights map[string]float64 `json:"numeric_weights"`
}

// Predict scores each feature row. Immutable after load: safe for
// concurrent callers.
func (m *LinearModel) Predict(rows []transform.FeatureRecord) ([]float64, error) {
	if m.NumericWeights == nil {
		return nil, fmt.Errorf("linear model has no numeric weights; artifact not loaded?")
	}

	preds := make([]float64, len(rows))
	for i, row := range rows {
		preds[i] = m.score(row)
	}
	return preds, nil
}

func (m *LinearModel) score(row transform.FeatureRecord) float64 {
	y := m.Intercept
	y += m.StationWeights[row.Station]
	y += m.LineWeights[row.Line]
	y += m.DayWeights[row.DayCategory]
	y += m.NumericWeights[weightHour] * float64(row.Hour)
	y += m.NumericWeights[weightMinute] * float64(row.Minute)
	y += m.NumericWeights[weightIsWeekend] * float64(row.IsWeekend)
	y += m.NumericWeights[weightTodSin] * row.TimeOfDaySin
	y += m.NumericWeights[weightTodCos] * row.TimeOfDayCos
	return y
}

// ReadLinearModelFromJSON loads a model artifact from disk.
func ReadLinearModelFromJSON(filePath string) (*LinearModel, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read model artifact %q: %w", filePath, err)
	}
	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal model artifact: %w", err)
	}
	return &m, nil
}

// WriteJSON saves the model artifact to disk.
func (m *LinearModel) WriteJSON(filePath string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal model artifact: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write model artifact %q: %w", filePath, err)
	}
	return nil
}
