package services

import (
	"fmt"

	"ttc-rider-server/ml"
	"ttc-rider-server/models"
	"ttc-rider-server/transform"
)

// PredictionService is the gateway from raw request records to
// PredictionResult values. It owns a reference to the loaded model and
// its metadata; both are immutable after construction, so a single
// service value is safe for concurrent requests without locking.
type PredictionService struct {
	model ml.Model
	meta  ml.Meta
}

// NewPredictionService constructs the gateway around a loaded model.
func NewPredictionService(model ml.Model, meta ml.Meta) *PredictionService {
	return &PredictionService{model: model, meta: meta}
}

// Meta exposes the loaded model's metadata for responses and health checks.
func (ps *PredictionService) Meta() ml.Meta {
	return ps.meta
}

// gatedRecord is one request after normalization and gating, before the
// model call.
type gatedRecord struct {
	station string
	line    string
	dayType string
	time    transform.NormalizedTime
	open    bool
}

// PredictRecords scores integer-hour records. Output order and
// cardinality match the input.
func (ps *PredictionService) PredictRecords(records []models.PredictRecord) ([]models.PredictResponseItem, error) {
	gated := make([]gatedRecord, len(records))
	for i, r := range records {
		g, err := ps.gate(r.Station, r.Line, r.DayType, transform.NormalizedTime{Hour: r.Hour, Minute: 0})
		if err != nil {
			return nil, err
		}
		gated[i] = g
	}
	return ps.score(gated)
}

// PredictTimeRecords scores records whose time arrives as a free-form
// string. An unparseable time fails the batch with a ValidationError
// naming the offending input.
func (ps *PredictionService) PredictTimeRecords(records []models.PredictTimeRecord) ([]models.PredictResponseItem, error) {
	gated := make([]gatedRecord, len(records))
	for i, r := range records {
		t, err := transform.Normalize(r.Time)
		if err != nil {
			return nil, &ValidationError{Field: "time", Value: r.Time, Cause: err}
		}
		g, err := ps.gate(r.Station, r.Line, r.DayType, t)
		if err != nil {
			return nil, err
		}
		gated[i] = g
	}
	return ps.score(gated)
}

// gate classifies the day and applies the service window. The coarse
// hour guard runs first as a fast rejection; the minute-aware IsOpen is
// authoritative.
func (ps *PredictionService) gate(station, line, dayType string, t transform.NormalizedTime) (gatedRecord, error) {
	day, err := transform.ClassifyDay(dayType)
	if err != nil {
		return gatedRecord{}, &ValidationError{Field: "day_type", Value: dayType, Cause: err}
	}

	open := transform.IsServiceHour(t.Hour) && transform.IsOpen(day, t)
	return gatedRecord{
		station: station,
		line:    line,
		dayType: dayType,
		time:    t,
		open:    open,
	}, nil
}

// score builds features for the open records only, makes a single
// order-preserving model call for them, and stitches closed records back
// in as exact zeros. The model is never invoked for a closed record: it
// was never trained on closed-hour rows and must not extrapolate into
// them.
func (ps *PredictionService) score(gated []gatedRecord) ([]models.PredictResponseItem, error) {
	var openRows []transform.FeatureRecord
	var openIdx []int
	for i, g := range gated {
		if g.open {
			openRows = append(openRows, transform.BuildFeatures(g.station, g.line, g.dayType, g.time))
			openIdx = append(openIdx, i)
		}
	}

	var preds []float64
	if len(openRows) > 0 {
		var err error
		preds, err = ps.model.Predict(openRows)
		if err != nil {
			return nil, &ModelInferenceError{Cause: err}
		}
		if len(preds) != len(openRows) {
			return nil, &ModelInferenceError{
				Cause: fmt.Errorf("model returned %d predictions for %d rows", len(preds), len(openRows)),
			}
		}
	}

	items := make([]models.PredictResponseItem, len(gated))
	for i, g := range gated {
		items[i] = models.PredictResponseItem{
			Station: g.station,
			Line:    g.line,
			Hour:    g.time.Hour,
			Minute:  g.time.Minute,
			DayType: g.dayType,
			Riders:  0.0,
		}
	}
	for k, i := range openIdx {
		items[i].Riders = preds[k]
	}
	return items, nil
}

// HourlyProfile predicts riders for every whole open hour of a service
// day, for charting. It goes through the exact same gate and feature
// builder as single-record inference; there is no separate grid logic.
func (ps *PredictionService) HourlyProfile(station, line, dayType string) ([]int, []float64, error) {
	day, err := transform.ClassifyDay(dayType)
	if err != nil {
		return nil, nil, &ValidationError{Field: "day_type", Value: dayType, Cause: err}
	}

	hours := transform.HoursForDay(day)
	records := make([]models.PredictRecord, len(hours))
	for i, h := range hours {
		records[i] = models.PredictRecord{Station: station, Line: line, Hour: h, DayType: dayType}
	}

	items, err := ps.PredictRecords(records)
	if err != nil {
		return nil, nil, err
	}

	riders := make([]float64, len(items))
	for i, item := range items {
		riders[i] = item.Riders
	}
	return hours, riders, nil
}

// FormatHour renders an hour for chart labels ("06:00").
func FormatHour(hour int) string {
	return fmt.Sprintf("%02d:00", hour)
}
