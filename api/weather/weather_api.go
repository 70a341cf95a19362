package weather

import "ttc-rider-server/models"

// WeatherAPI defines the interface for the weather enrichment provider.
// Conditions are served alongside predictions for context only and never
// enter the feature pipeline.
type WeatherAPI interface {
	GetCurrentConditions(city string) (*models.CurrentConditions, error)
	SetCredentials(apiKey string)
}
