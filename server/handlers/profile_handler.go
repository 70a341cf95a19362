package handlers

import (
	"errors"
	"log"
	"net/http"
	"net/url"

	services "ttc-rider-server/service"
	"ttc-rider-server/util"
)

const (
	STATION_QUERY_ARG  = "station"
	LINE_QUERY_ARG     = "line"
	DAY_TYPE_QUERY_ARG = "day_type"
)

// ProfileHandler renders the predicted riders-by-hour chart for one
// station/line/day as an HTML page.
type ProfileHandler struct {
	predictionService *services.PredictionService
}

func NewProfileHandler(predictionService *services.PredictionService) *ProfileHandler {
	return &ProfileHandler{predictionService: predictionService}
}

// GetProfile handles GET /v1/profile?station=&line=&day_type=
func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	station, line, dayType, ok := h.parseArgs(r.URL.Query(), w)
	if !ok {
		return // error already written
	}

	hours, riders, err := h.predictionService.HourlyProfile(station, line, dayType)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			http.Error(w, verr.Error(), http.StatusUnprocessableEntity)
			return
		}
		log.Println("Error building hourly profile:", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	labels := make([]string, len(hours))
	for i, hour := range hours {
		labels[i] = services.FormatHour(hour)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := util.PlotHourlyProfile(w, station, dayType, labels, riders); err != nil {
		log.Println("Error rendering hourly profile:", err)
	}
}

func (h *ProfileHandler) parseArgs(vals url.Values, w http.ResponseWriter) (station, line, dayType string, ok bool) {
	station = vals.Get(STATION_QUERY_ARG)
	if station == "" {
		http.Error(w, "Missing argument "+STATION_QUERY_ARG, http.StatusBadRequest)
		return
	}
	line = vals.Get(LINE_QUERY_ARG)
	if line == "" {
		http.Error(w, "Missing argument "+LINE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	dayType = vals.Get(DAY_TYPE_QUERY_ARG)
	if dayType == "" {
		http.Error(w, "Missing argument "+DAY_TYPE_QUERY_ARG, http.StatusBadRequest)
		return
	}
	ok = true
	return
}
