package server

import (
	"net/http"

	"github.com/gorilla/mux"
)

// PredictRoutes is the surface the router needs from the predict handler.
type PredictRoutes interface {
	Predict(w http.ResponseWriter, r *http.Request)
	PredictTime(w http.ResponseWriter, r *http.Request)
}

// OptionsRoutes is the surface the router needs from the options handler.
type OptionsRoutes interface {
	GetOptions(w http.ResponseWriter, r *http.Request)
}

// ProfileRoutes is the surface the router needs from the profile handler.
type ProfileRoutes interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
}

// HealthRoutes is the surface the router needs from the health handler.
type HealthRoutes interface {
	Healthz(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
	GetConditions(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	predictHandler PredictRoutes
	optionsHandler OptionsRoutes
	profileHandler ProfileRoutes
	healthHandler  HealthRoutes
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	predictHandler PredictRoutes,
	optionsHandler OptionsRoutes,
	profileHandler ProfileRoutes,
	healthHandler HealthRoutes,
	router *mux.Router) *Router {
	return &Router{
		predictHandler: predictHandler,
		optionsHandler: optionsHandler,
		profileHandler: profileHandler,
		healthHandler:  healthHandler,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// expects {"records": {...}} or {"records": [{...}, ...]}
	r.router.HandleFunc("/v1/predict", r.predictHandler.Predict).Methods("POST")
	r.router.HandleFunc("/v1/predict_time", r.predictHandler.PredictTime).Methods("POST")

	r.router.HandleFunc("/v1/options", r.optionsHandler.GetOptions).Methods("GET")

	// expects ?station={name}&line={label}&day_type={day}
	r.router.HandleFunc("/v1/profile", r.profileHandler.GetProfile).Methods("GET")

	r.router.HandleFunc("/v1/conditions", r.healthHandler.GetConditions).Methods("GET")
	r.router.HandleFunc("/healthz", r.healthHandler.Healthz).Methods("GET")
	r.router.HandleFunc("/ping", r.healthHandler.Ping).Methods("GET")
}
