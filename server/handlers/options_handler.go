package handlers

import (
	"encoding/json"
	"log"
	"net/http"

	services "ttc-rider-server/service"
)

// OptionsHandler serves the valid input values for UI dropdowns.
type OptionsHandler struct {
	optionsService *services.OptionsService
}

func NewOptionsHandler(optionsService *services.OptionsService) *OptionsHandler {
	return &OptionsHandler{optionsService: optionsService}
}

// GetOptions handles GET /v1/options.
func (h *OptionsHandler) GetOptions(w http.ResponseWriter, r *http.Request) {
	options, err := h.optionsService.GetOptions()
	if err != nil {
		log.Println("Error loading options:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(options); err != nil {
		log.Println("Error encoding options response:", err)
	}
}
