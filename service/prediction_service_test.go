package services

import (
	"errors"
	"fmt"
	"testing"

	"ttc-rider-server/ml"
	"ttc-rider-server/models"
	"ttc-rider-server/transform"
)

// stubModel counts Predict calls and returns a fixed value per row.
type stubModel struct {
	calls    int
	rowsSeen []transform.FeatureRecord
	value    float64
	err      error
}

func (s *stubModel) Predict(rows []transform.FeatureRecord) ([]float64, error) {
	s.calls++
	s.rowsSeen = append(s.rowsSeen, rows...)
	if s.err != nil {
		return nil, s.err
	}
	out := make([]float64, len(rows))
	for i := range out {
		out[i] = s.value
	}
	return out, nil
}

func newTestService(model ml.Model) *PredictionService {
	return NewPredictionService(model, ml.Meta{ModelVersion: "vtest"})
}

func TestPredictTimeRecords_OpenScenario(t *testing.T) {
	stub := &stubModel{value: 1234.5}
	ps := newTestService(stub)

	items, err := ps.PredictTimeRecords([]models.PredictTimeRecord{
		{Station: "Union", Line: "1", DayType: "Tuesday", Time: "6:00"},
	})
	if err != nil {
		t.Fatalf("PredictTimeRecords failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("got %d items, want 1", len(items))
	}
	if items[0].Hour != 6 || items[0].Minute != 0 {
		t.Errorf("normalized time = %d:%02d, want 6:00", items[0].Hour, items[0].Minute)
	}
	if items[0].Riders != 1234.5 {
		t.Errorf("Riders = %v, want the model's value", items[0].Riders)
	}
	if stub.calls != 1 {
		t.Errorf("model called %d times, want 1", stub.calls)
	}
	if stub.rowsSeen[0].IsWeekend != 0 {
		t.Errorf("IsWeekend = %d, want 0 for Tuesday", stub.rowsSeen[0].IsWeekend)
	}
}

// A closed-hour request yields exactly 0.0 and never reaches the model.
func TestPredictTimeRecords_ClosedShortCircuit(t *testing.T) {
	stub := &stubModel{value: 999}
	ps := newTestService(stub)

	items, err := ps.PredictTimeRecords([]models.PredictTimeRecord{
		{Station: "Union", Line: "1", DayType: "Monday", Time: "3 am"},
	})
	if err != nil {
		t.Fatalf("PredictTimeRecords failed: %v", err)
	}
	if items[0].Hour != 3 {
		t.Errorf("Hour = %d, want 3", items[0].Hour)
	}
	if items[0].Riders != 0.0 {
		t.Errorf("Riders = %v, want exactly 0.0", items[0].Riders)
	}
	if stub.calls != 0 {
		t.Errorf("model called %d times for a closed hour, want 0", stub.calls)
	}
}

func TestPredictRecords_ClosedHoursAcrossTheGrid(t *testing.T) {
	cases := []struct {
		dayType string
		hour    int
	}{
		{"monday", 2},
		{"monday", 5},
		{"saturday", 6},
		{"sunday", 7},
		{"friday", 25}, // corrupt hour flows through and evaluates closed
	}
	for _, c := range cases {
		stub := &stubModel{value: 42}
		ps := newTestService(stub)
		items, err := ps.PredictRecords([]models.PredictRecord{
			{Station: "Union", Line: "1", Hour: c.hour, DayType: c.dayType},
		})
		if err != nil {
			t.Fatalf("PredictRecords(%s %d) failed: %v", c.dayType, c.hour, err)
		}
		if items[0].Riders != 0.0 {
			t.Errorf("%s hour %d: Riders = %v, want 0.0", c.dayType, c.hour, items[0].Riders)
		}
		if stub.calls != 0 {
			t.Errorf("%s hour %d: model invoked on closed hour", c.dayType, c.hour)
		}
	}
}

// Closed records keep their slots: one model call for the open rows,
// zeros stitched back in, input order preserved.
func TestPredictTimeRecords_MixedBatchOrderPreserved(t *testing.T) {
	stub := &stubModel{value: 77}
	ps := newTestService(stub)

	items, err := ps.PredictTimeRecords([]models.PredictTimeRecord{
		{Station: "Union", Line: "1", DayType: "Monday", Time: "3 am"},  // closed
		{Station: "Union", Line: "1", DayType: "Monday", Time: "9 am"},  // open
		{Station: "Kipling", Line: "2", DayType: "Monday", Time: "4"},   // closed
		{Station: "Kipling", Line: "2", DayType: "Monday", Time: "1:30"}, // open tail
	})
	if err != nil {
		t.Fatalf("PredictTimeRecords failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("got %d items, want 4", len(items))
	}
	wantRiders := []float64{0, 77, 0, 77}
	for i, want := range wantRiders {
		if items[i].Riders != want {
			t.Errorf("item %d Riders = %v, want %v", i, items[i].Riders, want)
		}
	}
	if items[3].Station != "Kipling" || items[3].Hour != 1 || items[3].Minute != 30 {
		t.Errorf("item 3 = %+v", items[3])
	}
	if stub.calls != 1 {
		t.Errorf("model called %d times, want a single batched call", stub.calls)
	}
	if len(stub.rowsSeen) != 2 {
		t.Errorf("model saw %d rows, want 2 open rows", len(stub.rowsSeen))
	}
}

func TestPredictTimeRecords_UnparseableTime(t *testing.T) {
	ps := newTestService(&stubModel{})

	_, err := ps.PredictTimeRecords([]models.PredictTimeRecord{
		{Station: "Union", Line: "1", DayType: "Monday", Time: "whenever"},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
	if verr.Value != "whenever" {
		t.Errorf("ValidationError names %q, want the offending input", verr.Value)
	}
}

func TestPredictRecords_UnrecognizedDay(t *testing.T) {
	ps := newTestService(&stubModel{})

	_, err := ps.PredictRecords([]models.PredictRecord{
		{Station: "Union", Line: "1", Hour: 9, DayType: "holiday"},
	})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want ValidationError", err)
	}
}

// Model failures propagate as ModelInferenceError, never coerced to zero.
func TestPredictRecords_ModelFailurePropagates(t *testing.T) {
	stub := &stubModel{err: fmt.Errorf("encoder exploded")}
	ps := newTestService(stub)

	_, err := ps.PredictRecords([]models.PredictRecord{
		{Station: "Union", Line: "1", Hour: 9, DayType: "monday"},
	})
	var merr *ModelInferenceError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want ModelInferenceError", err)
	}
}

type misshapenModel struct{}

func (misshapenModel) Predict(rows []transform.FeatureRecord) ([]float64, error) {
	return []float64{1}, nil // wrong cardinality for >1 rows
}

func TestPredictRecords_MalformedModelOutput(t *testing.T) {
	ps := newTestService(misshapenModel{})

	_, err := ps.PredictRecords([]models.PredictRecord{
		{Station: "Union", Line: "1", Hour: 9, DayType: "monday"},
		{Station: "Union", Line: "1", Hour: 10, DayType: "monday"},
	})
	var merr *ModelInferenceError
	if !errors.As(err, &merr) {
		t.Fatalf("err = %v, want ModelInferenceError", err)
	}
}

// The profile grid must agree with single-record inference hour by hour.
func TestHourlyProfile_MatchesSingleRecordPath(t *testing.T) {
	stub := &stubModel{value: 10}
	ps := newTestService(stub)

	hours, riders, err := ps.HourlyProfile("Union", "1", "sunday")
	if err != nil {
		t.Fatalf("HourlyProfile failed: %v", err)
	}
	if len(hours) != len(riders) {
		t.Fatalf("hours/riders length mismatch: %d vs %d", len(hours), len(riders))
	}
	if hours[0] != 8 {
		t.Errorf("weekend grid starts at %d, want 8", hours[0])
	}

	for i, h := range hours {
		single, err := ps.PredictRecords([]models.PredictRecord{
			{Station: "Union", Line: "1", Hour: h, DayType: "sunday"},
		})
		if err != nil {
			t.Fatalf("PredictRecords failed: %v", err)
		}
		if single[0].Riders != riders[i] {
			t.Errorf("hour %d: grid=%v single=%v", h, riders[i], single[0].Riders)
		}
	}
}

func TestFormatHour(t *testing.T) {
	if got := FormatHour(6); got != "06:00" {
		t.Errorf("FormatHour(6) = %q", got)
	}
	if got := FormatHour(23); got != "23:00" {
		t.Errorf("FormatHour(23) = %q", got)
	}
}
