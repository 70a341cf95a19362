package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	"ttc-rider-server/config"
	services "ttc-rider-server/service"

	"ttc-rider-server/api/weather"
)

// HealthHandler serves the health check plus the weather enrichment
// endpoint.
type HealthHandler struct {
	predictionService *services.PredictionService
	weatherAPI        weather.WeatherAPI
}

func NewHealthHandler(predictionService *services.PredictionService, weatherAPI weather.WeatherAPI) *HealthHandler {
	return &HealthHandler{
		predictionService: predictionService,
		weatherAPI:        weatherAPI,
	}
}

// Healthz handles GET /healthz.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	meta := h.predictionService.Meta()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{
		"status":             "ok",
		"model_version":      meta.ModelVersion,
		"service_hours_rule": meta.ServiceHoursRule,
	})
}

// Ping handles GET /ping.
func (h *HealthHandler) Ping(w http.ResponseWriter, r *http.Request) {
	log.Println("Pinging server")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "pong"})
}

// GetConditions handles GET /v1/conditions.
func (h *HealthHandler) GetConditions(w http.ResponseWriter, r *http.Request) {
	conditions, err := h.weatherAPI.GetCurrentConditions(config.WEATHER_CITY)
	if err != nil {
		log.Println("Error fetching current conditions:", err)
		http.Error(w, "Weather provider unavailable", http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(conditions); err != nil {
		log.Println("Error encoding conditions response:", err)
	}
}
