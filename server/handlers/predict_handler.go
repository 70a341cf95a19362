package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"ttc-rider-server/models"
	services "ttc-rider-server/service"
)

// PredictHandler serves the two prediction endpoints.
type PredictHandler struct {
	predictionService *services.PredictionService
}

func NewPredictHandler(predictionService *services.PredictionService) *PredictHandler {
	return &PredictHandler{predictionService: predictionService}
}

// Predict handles POST /v1/predict (records with integer hours).
func (h *PredictHandler) Predict(w http.ResponseWriter, r *http.Request) {
	var request models.PredictRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.Records) == 0 {
		http.Error(w, "No records provided", http.StatusBadRequest)
		return
	}

	items, err := h.predictionService.PredictRecords(request.Records)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writePredictions(w, items)
}

// PredictTime handles POST /v1/predict_time (records with a human time
// string such as "12:35 am", "3:00 pm" or "15:05").
func (h *PredictHandler) PredictTime(w http.ResponseWriter, r *http.Request) {
	var request models.PredictTimeRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "Invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}
	if len(request.Records) == 0 {
		http.Error(w, "No records provided", http.StatusBadRequest)
		return
	}

	items, err := h.predictionService.PredictTimeRecords(request.Records)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	h.writePredictions(w, items)
}

func (h *PredictHandler) writePredictions(w http.ResponseWriter, items []models.PredictResponseItem) {
	response := models.PredictResponse{
		ModelVersion: h.predictionService.Meta().ModelVersion,
		Predictions:  items,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Println("Error encoding response:", err)
	}
}

// writeServiceError maps the service error taxonomy onto status codes:
// bad input is the caller's fault (422), a model failure is ours (502).
func (h *PredictHandler) writeServiceError(w http.ResponseWriter, err error) {
	var verr *services.ValidationError
	if errors.As(err, &verr) {
		http.Error(w, verr.Error(), http.StatusUnprocessableEntity)
		return
	}

	var merr *services.ModelInferenceError
	if errors.As(err, &merr) {
		log.Println("Model inference error:", merr)
		http.Error(w, "Model inference failed", http.StatusBadGateway)
		return
	}

	log.Println("Unexpected prediction error:", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
