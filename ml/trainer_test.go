package ml

import (
	"testing"

	"ttc-rider-server/models"
	"ttc-rider-server/transform"
)

// syntheticRows builds a dataset where Union is consistently busier than
// Kipling and weekday evenings busier than weekend mornings.
func syntheticRows() []models.RidershipRow {
	var rows []models.RidershipRow
	days := []struct {
		name string
		base float64
	}{
		{"monday", 1000},
		{"wednesday", 1000},
		{"saturday", 400},
	}
	for _, day := range days {
		for hour := 6; hour <= 23; hour++ {
			rows = append(rows,
				models.RidershipRow{Station: "Union", Line: "1", DayType: day.name,
					HourRaw: itoa(hour), Riders: day.base + float64(hour)*10},
				models.RidershipRow{Station: "Kipling", Line: "2", DayType: day.name,
					HourRaw: itoa(hour), Riders: day.base/2 + float64(hour)*5},
			)
		}
	}
	return rows
}

func itoa(h int) string {
	return string(rune('0'+h/10)) + string(rune('0'+h%10))
}

func TestTrain_RecoversStationOrdering(t *testing.T) {
	result, err := Train(syntheticRows())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	union := transform.BuildFeatures("Union", "1", "monday", transform.NormalizedTime{Hour: 17})
	kipling := transform.BuildFeatures("Kipling", "2", "monday", transform.NormalizedTime{Hour: 17})

	preds, err := result.Model.Predict([]transform.FeatureRecord{union, kipling})
	if err != nil {
		t.Fatalf("Predict failed: %v", err)
	}
	if preds[0] <= preds[1] {
		t.Errorf("Union (%.1f) should out-predict Kipling (%.1f)", preds[0], preds[1])
	}
}

func TestTrain_MetaRecordsFeatureSchema(t *testing.T) {
	result, err := Train(syntheticRows())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	if len(result.Meta.Features) != len(transform.FeatureNames) {
		t.Fatalf("meta features = %v", result.Meta.Features)
	}
	for i, name := range transform.FeatureNames {
		if result.Meta.Features[i] != name {
			t.Errorf("meta feature %d = %q, want %q", i, result.Meta.Features[i], name)
		}
	}
	if result.Meta.ModelVersion == "" || result.Meta.ModelVersion == "unknown" {
		t.Errorf("ModelVersion = %q", result.Meta.ModelVersion)
	}
	if result.Meta.ServiceHoursRule == "" {
		t.Error("ServiceHoursRule not recorded")
	}
}

// Rows outside the service window and rows with garbage hours never
// reach the fit.
func TestTrain_FiltersClosedAndUnparseable(t *testing.T) {
	rows := []models.RidershipRow{
		{Station: "Union", Line: "1", DayType: "monday", HourRaw: "3", Riders: 9999},    // closed
		{Station: "Union", Line: "1", DayType: "monday", HourRaw: "junk", Riders: 9999}, // unparseable
	}
	rows = append(rows, syntheticRows()...)

	withNoise, err := Train(rows)
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}
	clean, err := Train(syntheticRows())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	if withNoise.Model.Intercept != clean.Model.Intercept {
		t.Errorf("noise rows leaked into the fit: intercept %.3f != %.3f",
			withNoise.Model.Intercept, clean.Model.Intercept)
	}
}

func TestTrain_NoUsableRows(t *testing.T) {
	rows := []models.RidershipRow{
		{Station: "Union", Line: "1", DayType: "monday", HourRaw: "not a time", Riders: 1},
	}
	if _, err := Train(rows); err == nil {
		t.Error("expected error when nothing survives filtering")
	}
}

func TestTrain_SaveArtifacts(t *testing.T) {
	result, err := Train(syntheticRows())
	if err != nil {
		t.Fatalf("Train failed: %v", err)
	}

	dir := t.TempDir()
	if err := result.SaveArtifacts(dir); err != nil {
		t.Fatalf("SaveArtifacts failed: %v", err)
	}

	model, meta, err := LoadModel(dir+"/"+ModelArtifactFile, dir+"/"+MetaArtifactFile)
	if err != nil {
		t.Fatalf("LoadModel on saved artifacts failed: %v", err)
	}
	if model == nil || meta.ModelVersion != result.Meta.ModelVersion {
		t.Errorf("reloaded meta = %+v", meta)
	}
}
