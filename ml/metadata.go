package ml

import (
	"encoding/json"
	"fmt"
	"os"
)

// Metrics are the offline evaluation numbers recorded at training time.
type Metrics struct {
	R2   float64 `json:"r2"`
	RMSE float64 `json:"rmse"`
	MAE  float64 `json:"mae"`
}

// Meta describes a fitted model artifact. The server surfaces
// ModelVersion verbatim in responses and health checks and asserts
// Features against the feature builder's schema before serving.
type Meta struct {
	ModelVersion     string   `json:"model_version"`
	Features         []string `json:"features"`
	Algo             string   `json:"algo"`
	ServiceHoursRule string   `json:"service_hours_rule"`
	Metrics          Metrics  `json:"metrics"`
}

// DefaultMeta is used when no metadata file exists alongside the model.
func DefaultMeta() Meta {
	return Meta{ModelVersion: "unknown"}
}

// ReadMetaFromJSON loads model metadata from disk.
func ReadMetaFromJSON(filePath string) (Meta, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Meta{}, fmt.Errorf("failed to read meta %q: %w", filePath, err)
	}
	var meta Meta
	if err := json.Unmarshal(data, &meta); err != nil {
		return Meta{}, fmt.Errorf("failed to unmarshal meta: %w", err)
	}
	return meta, nil
}

// WriteJSON saves metadata to disk next to the model artifact.
func (m Meta) WriteJSON(filePath string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal meta: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write meta %q: %w", filePath, err)
	}
	return nil
}
