package services

import (
	"log"
	"time"
)

// OptionsRefresherService periodically rebuilds the options cache from
// the ridership store so dropdowns pick up re-imported data without a
// restart.
type OptionsRefresherService struct {
	optionsService *OptionsService
}

// NewOptionsRefresherService constructs a new refresher with dependencies.
func NewOptionsRefresherService(optionsService *OptionsService) *OptionsRefresherService {
	return &OptionsRefresherService{optionsService: optionsService}
}

// Refresh rebuilds the cache once.
func (or *OptionsRefresherService) Refresh() error {
	return or.optionsService.RefreshCache()
}

// StartPeriodicJob launches the background refresh loop at the given interval.
func (or *OptionsRefresherService) StartPeriodicJob(interval time.Duration) {
	go or.startPeriodicJob(interval)
}

func (or *OptionsRefresherService) startPeriodicJob(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for range ticker.C {
		log.Println("[OptionsRefresherService] Running periodic options refresh.")
		if err := or.Refresh(); err != nil {
			log.Printf("[OptionsRefresherService] Refresh returned error: %v", err)
		} else {
			log.Println("[OptionsRefresherService] Refresh completed successfully.")
		}
	}
}
