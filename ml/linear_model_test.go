package ml

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"ttc-rider-server/transform"
)

func testModel() *LinearModel {
	return &LinearModel{
		Intercept: 100,
		StationWeights: map[string]float64{
			"union":    50,
			"st clair": -20,
		},
		LineWeights: map[string]float64{"1": 10},
		DayWeights:  map[string]float64{"tuesday": 5, "sunday": -15},
		NumericWeights: map[string]float64{
			"hour":       1,
			"minute":     0,
			"is_weekend": -30,
			"tod_sin":    8,
			"tod_cos":    -4,
		},
	}
}

func TestLinearModel_Predict_OrderPreserving(t *testing.T) {
	model := testModel()
	rows := []transform.FeatureRecord{
		transform.BuildFeatures("Union", "1", "Tuesday", transform.NormalizedTime{Hour: 6}),
		transform.BuildFeatures("St Clair", "1", "Sunday", transform.NormalizedTime{Hour: 12}),
	}

	preds, err := model.Predict(rows)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if len(preds) != 2 {
		t.Fatalf("got %d predictions, want 2", len(preds))
	}

	// first row: 100 + 50 + 10 + 5 + 6*1 + sin(pi/2)*8 + cos(pi/2)*-4
	assert.InDelta(t, 179.0, preds[0], 1e-9)
	// second row: 100 - 20 + 10 - 15 + 12 - 30 + sin(pi)*8 + cos(pi)*-4
	assert.InDelta(t, 61.0, preds[1], 1e-9)
}

// An unseen station/line/day contributes zero weight instead of failing,
// mirroring one-hot encoding with unknowns ignored.
func TestLinearModel_Predict_UnseenCategory(t *testing.T) {
	model := testModel()
	row := transform.BuildFeatures("Brand New Station", "99", "Tuesday", transform.NormalizedTime{Hour: 0})

	preds, err := model.Predict([]transform.FeatureRecord{row})
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	// 100 + 0 + 0 + 5 + 0 + sin(0)*8 + cos(0)*-4
	assert.InDelta(t, 101.0, preds[0], 1e-9)
}

func TestLinearModel_Predict_EmptyBatch(t *testing.T) {
	preds, err := testModel().Predict(nil)
	if err != nil {
		t.Fatalf("Predict returned error: %v", err)
	}
	if len(preds) != 0 {
		t.Errorf("got %d predictions for empty batch", len(preds))
	}
}

func TestLinearModel_Predict_NotLoaded(t *testing.T) {
	var empty LinearModel
	if _, err := empty.Predict([]transform.FeatureRecord{{}}); err == nil {
		t.Error("expected error from unloaded model")
	}
}

func TestLinearModel_JSONRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "model.json")

	want := testModel()
	if err := want.WriteJSON(path); err != nil {
		t.Fatalf("WriteJSON failed: %v", err)
	}
	got, err := ReadLinearModelFromJSON(path)
	if err != nil {
		t.Fatalf("ReadLinearModelFromJSON failed: %v", err)
	}
	assert.Equal(t, want, got)
}
