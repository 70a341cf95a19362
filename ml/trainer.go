package ml

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"time"

	"ttc-rider-server/models"
	"ttc-rider-server/transform"
)

const (
	ModelArtifactFile = "model.json"
	MetaArtifactFile  = "meta.json"
)

const serviceHoursRule = "Mon-Fri 06:00-01:30; Sat-Sun 08:00-01:30 (next day)."

const trainerAlgo = "stagewise least squares: categorical effects (station/line/day) + time features (sin/cos, hour, minute, weekend)"

// TrainResult holds the fitted model and its metadata.
type TrainResult struct {
	Model *LinearModel
	Meta  Meta
}

// Train fits a ridership model from long-format historical rows.
//
// The pipeline mirrors serving exactly: hours are normalized with
// transform.Normalize, days classified with transform.ClassifyDay, rows
// outside the service window dropped with the same transform.IsOpen used
// at inference, and features built with the one shared BuildFeatures.
// Evaluation uses a deterministic 80/20 split (every fifth row held out).
func Train(rows []models.RidershipRow) (*TrainResult, error) {
	features, targets := buildTrainingSet(rows)
	if len(features) == 0 {
		return nil, fmt.Errorf("no usable rows after hour parsing and service-window filter")
	}

	trainX, trainY, testX, testY := split(features, targets)
	model := fit(trainX, trainY)

	metrics, err := evaluate(model, testX, testY)
	if err != nil {
		return nil, fmt.Errorf("failed to evaluate held-out rows: %w", err)
	}
	log.Printf("[trainer] fit on %d rows, held out %d: r2=%.3f rmse=%.1f mae=%.1f",
		len(trainX), len(testX), metrics.R2, metrics.RMSE, metrics.MAE)

	meta := Meta{
		ModelVersion:     time.Now().Format("v2006.01.02.1504"),
		Features:         transform.FeatureNames,
		Algo:             trainerAlgo,
		ServiceHoursRule: serviceHoursRule,
		Metrics:          metrics,
	}
	return &TrainResult{Model: model, Meta: meta}, nil
}

// buildTrainingSet normalizes, gates and featurizes the raw rows.
// Rows with unparseable hours or unrecognized day categories are dropped
// with a count, matching the original pipeline's dropna behavior.
func buildTrainingSet(rows []models.RidershipRow) ([]transform.FeatureRecord, []float64) {
	var features []transform.FeatureRecord
	var targets []float64
	dropped := 0

	for _, row := range rows {
		t, err := transform.Normalize(row.HourRaw)
		if err != nil {
			dropped++
			continue
		}
		day, err := transform.ClassifyDay(row.DayType)
		if err != nil {
			dropped++
			continue
		}
		if !transform.IsOpen(day, t) {
			continue
		}
		features = append(features, transform.BuildFeatures(row.Station, row.Line, row.DayType, t))
		targets = append(targets, row.Riders)
	}

	if dropped > 0 {
		log.Printf("[trainer] dropped %d rows with unparseable hour or day", dropped)
	}
	log.Printf("[trainer] %d rows inside the service window (from %d)", len(features), len(rows))
	return features, targets
}

func split(features []transform.FeatureRecord, targets []float64) (
	trainX []transform.FeatureRecord, trainY []float64,
	testX []transform.FeatureRecord, testY []float64,
) {
	for i := range features {
		if i%5 == 4 {
			testX = append(testX, features[i])
			testY = append(testY, targets[i])
		} else {
			trainX = append(trainX, features[i])
			trainY = append(trainY, targets[i])
		}
	}
	// tiny datasets: evaluate on the training rows rather than nothing
	if len(testX) == 0 {
		testX, testY = trainX, trainY
	}
	return
}

// fit runs a stagewise least-squares fit: global mean, then residual
// means per categorical value, then a univariate least-squares weight
// per numeric feature on what remains. Deterministic and stable for the
// ridership scale without iterative optimization.
func fit(features []transform.FeatureRecord, targets []float64) *LinearModel {
	n := len(targets)
	residual := make([]float64, n)

	sum := 0.0
	for _, y := range targets {
		sum += y
	}
	intercept := sum / float64(n)
	for i, y := range targets {
		residual[i] = y - intercept
	}

	stationW := fitCategorical(features, residual, func(f transform.FeatureRecord) string { return f.Station })
	lineW := fitCategorical(features, residual, func(f transform.FeatureRecord) string { return f.Line })
	dayW := fitCategorical(features, residual, func(f transform.FeatureRecord) string { return f.DayCategory })

	numeric := map[string]float64{}
	numericExtractors := []struct {
		name    string
		extract func(transform.FeatureRecord) float64
	}{
		{weightTodSin, func(f transform.FeatureRecord) float64 { return f.TimeOfDaySin }},
		{weightTodCos, func(f transform.FeatureRecord) float64 { return f.TimeOfDayCos }},
		{weightHour, func(f transform.FeatureRecord) float64 { return float64(f.Hour) }},
		{weightMinute, func(f transform.FeatureRecord) float64 { return float64(f.Minute) }},
		{weightIsWeekend, func(f transform.FeatureRecord) float64 { return float64(f.IsWeekend) }},
	}
	for _, ext := range numericExtractors {
		w, meanX := fitNumeric(features, residual, ext.extract)
		numeric[ext.name] = w
		// the weight was fit on a centered feature; fold the shift into
		// the intercept so Predict can apply raw values
		intercept -= w * meanX
	}

	return &LinearModel{
		Intercept:      intercept,
		StationWeights: stationW,
		LineWeights:    lineW,
		DayWeights:     dayW,
		NumericWeights: numeric,
	}
}

// fitCategorical assigns each category its residual mean and subtracts
// the effect from the residuals in place.
func fitCategorical(features []transform.FeatureRecord, residual []float64,
	key func(transform.FeatureRecord) string) map[string]float64 {

	sums := map[string]float64{}
	counts := map[string]int{}
	for i, f := range features {
		k := key(f)
		sums[k] += residual[i]
		counts[k]++
	}

	weights := make(map[string]float64, len(sums))
	for k, s := range sums {
		weights[k] = s / float64(counts[k])
	}
	for i, f := range features {
		residual[i] -= weights[key(f)]
	}
	return weights
}

// fitNumeric runs univariate least squares of the residual on a centered
// numeric feature and subtracts the fitted effect in place. Returns the
// weight and the feature mean it was centered on.
func fitNumeric(features []transform.FeatureRecord, residual []float64,
	extract func(transform.FeatureRecord) float64) (w, meanX float64) {

	n := float64(len(features))
	for _, f := range features {
		meanX += extract(f)
	}
	meanX /= n

	num, den := 0.0, 0.0
	for i, f := range features {
		x := extract(f) - meanX
		num += x * residual[i]
		den += x * x
	}
	if den == 0 {
		return 0, meanX
	}
	w = num / den
	for i, f := range features {
		residual[i] -= w * (extract(f) - meanX)
	}
	return w, meanX
}

func evaluate(model *LinearModel, features []transform.FeatureRecord, targets []float64) (Metrics, error) {
	preds, err := model.Predict(features)
	if err != nil {
		return Metrics{}, err
	}

	n := float64(len(targets))
	meanY := 0.0
	for _, y := range targets {
		meanY += y
	}
	meanY /= n

	var ssRes, ssTot, absSum float64
	for i, y := range targets {
		diff := y - preds[i]
		ssRes += diff * diff
		ssTot += (y - meanY) * (y - meanY)
		absSum += math.Abs(diff)
	}

	r2 := 0.0
	if ssTot > 0 {
		r2 = 1 - ssRes/ssTot
	}
	return Metrics{
		R2:   r2,
		RMSE: math.Sqrt(ssRes / n),
		MAE:  absSum / n,
	}, nil
}

// SaveArtifacts writes model.json and meta.json into dir, creating it
// if needed. The API loads these instead of refitting on every start.
func (r *TrainResult) SaveArtifacts(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create artifacts dir %q: %w", dir, err)
	}
	if err := r.Model.WriteJSON(filepath.Join(dir, ModelArtifactFile)); err != nil {
		return err
	}
	if err := r.Meta.WriteJSON(filepath.Join(dir, MetaArtifactFile)); err != nil {
		return err
	}
	log.Printf("[trainer] saved artifacts to %s (version %s)", dir, r.Meta.ModelVersion)
	return nil
}
