package ml

import "ttc-rider-server/transform"

// Model is the contract the prediction gateway depends on. Predict is
// order-preserving: one output per input row, in input order. An
// implementation must tolerate categorical values it never saw during
// fitting without failing the whole batch.
//
// Any regressor satisfying this contract is interchangeable; the server
// ships a JSON-artifact linear model but nothing in the gateway assumes
// that.
type Model interface {
	Predict(rows []transform.FeatureRecord) ([]float64, error)
}
