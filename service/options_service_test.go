package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	daoredis "ttc-rider-server/dao/redis"
	"ttc-rider-server/db"
	"ttc-rider-server/models"
)

func newOptionsFixture(t *testing.T) (*OptionsService, *daoredis.RedisOptionsDAO, *db.RidershipStore) {
	t.Helper()
	store, err := db.OpenRidershipStore(filepath.Join(t.TempDir(), "ridership.db"))
	if err != nil {
		t.Fatalf("OpenRidershipStore failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	err = store.ReplaceAll([]models.RidershipRow{
		{Station: "Union", Line: "1", DayType: "Monday", HourRaw: "6", Riders: 100},
		{Station: "Kipling", Line: "2", DayType: "saturday", HourRaw: "9", Riders: 50},
	})
	if err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	dao := daoredis.NewRedisOptionsDAO(db.NewMockRedisClient(context.Background()))
	return NewOptionsService(store, dao), dao, store
}

func TestOptionsService_GetOptionsFromStore(t *testing.T) {
	svc, _, _ := newOptionsFixture(t)

	options, err := svc.GetOptions()
	if err != nil {
		t.Fatalf("GetOptions failed: %v", err)
	}

	assert.Equal(t, []string{"Kipling", "Union"}, options.Stations)
	assert.Equal(t, []string{"1", "2"}, options.Lines)
	assert.Equal(t, []string{"monday", "saturday"}, options.DayTypes)
	assert.Len(t, options.Hours, 24)
	assert.Equal(t, 0, options.Hours[0])
	assert.Equal(t, 23, options.Hours[23])
}

func TestOptionsService_CachePopulatedAfterMiss(t *testing.T) {
	svc, dao, _ := newOptionsFixture(t)

	if _, err := dao.GetOptions(); err == nil {
		t.Fatal("cache should start empty")
	}
	if _, err := svc.GetOptions(); err != nil {
		t.Fatalf("GetOptions failed: %v", err)
	}
	if _, err := dao.GetOptions(); err != nil {
		t.Errorf("cache not populated after miss: %v", err)
	}
}

func TestOptionsService_ServesFromCache(t *testing.T) {
	svc, dao, store := newOptionsFixture(t)

	if err := svc.RefreshCache(); err != nil {
		t.Fatalf("RefreshCache failed: %v", err)
	}

	// change the store under the cache; GetOptions should still serve
	// the cached payload until the next refresh
	if err := store.ReplaceAll(nil); err != nil {
		t.Fatalf("ReplaceAll failed: %v", err)
	}

	options, err := svc.GetOptions()
	if err != nil {
		t.Fatalf("GetOptions failed: %v", err)
	}
	assert.Equal(t, []string{"Kipling", "Union"}, options.Stations)

	if err := dao.Invalidate(); err != nil {
		t.Fatalf("Invalidate failed: %v", err)
	}
	options, err = svc.GetOptions()
	if err != nil {
		t.Fatalf("GetOptions after invalidate failed: %v", err)
	}
	assert.Empty(t, options.Stations)
}
