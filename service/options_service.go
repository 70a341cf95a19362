package services

import (
	"fmt"
	"log"

	daoredis "ttc-rider-server/dao/redis"
	"ttc-rider-server/db"
	"ttc-rider-server/models"
)

// OptionsService serves the valid input values for UI dropdowns:
// distinct stations, lines and day categories from the historical
// ridership store, with the Redis cache in front. Hours are the full
// 0..23 range; the service window decides openness per request.
type OptionsService struct {
	store      *db.RidershipStore
	optionsDao *daoredis.RedisOptionsDAO
}

// NewOptionsService constructs an OptionsService with its dependencies.
func NewOptionsService(store *db.RidershipStore, optionsDao *daoredis.RedisOptionsDAO) *OptionsService {
	return &OptionsService{
		store:      store,
		optionsDao: optionsDao,
	}
}

// GetOptions returns the cached options, falling back to the store (and
// repopulating the cache) on a miss.
func (os *OptionsService) GetOptions() (*models.OptionsResponse, error) {
	if cached, err := os.optionsDao.GetOptions(); err == nil {
		return cached, nil
	}

	options, err := os.loadFromStore()
	if err != nil {
		return nil, err
	}
	if err := os.optionsDao.PutOptions(*options); err != nil {
		log.Printf("[OptionsService] failed to cache options: %v", err)
	}
	return options, nil
}

// RefreshCache rebuilds the cached options from the store.
func (os *OptionsService) RefreshCache() error {
	options, err := os.loadFromStore()
	if err != nil {
		return err
	}
	return os.optionsDao.PutOptions(*options)
}

func (os *OptionsService) loadFromStore() (*models.OptionsResponse, error) {
	stations, err := os.store.DistinctStations()
	if err != nil {
		return nil, fmt.Errorf("failed to load stations: %w", err)
	}
	lines, err := os.store.DistinctLines()
	if err != nil {
		return nil, fmt.Errorf("failed to load lines: %w", err)
	}
	dayTypes, err := os.store.DistinctDayTypes()
	if err != nil {
		return nil, fmt.Errorf("failed to load day types: %w", err)
	}

	hours := make([]int, 24)
	for i := range hours {
		hours[i] = i
	}

	return &models.OptionsResponse{
		Hours:    hours,
		DayTypes: dayTypes,
		Stations: stations,
		Lines:    lines,
	}, nil
}
