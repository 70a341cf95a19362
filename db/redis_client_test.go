package db_test

import (
	"context"
	"testing"

	"ttc-rider-server/db"
)

func TestRedisClient_SetAndGet(t *testing.T) {
	tests := []struct {
		name   string
		client db.RedisClient
	}{
		{"MockRedisClient", db.NewMockRedisClient(context.Background())},
		// Replace with a real Redis client configuration for integration testing
		// {"CacheRedisClient", db.NewCacheRedisClient(context.Background(), realRedisClient)},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			key := "test-key"
			value := "test-value"

			err := test.client.Set(key, value)
			if err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			retrieved, err := test.client.Get(key)
			if err != nil {
				t.Fatalf("Get failed: %v", err)
			}

			if retrieved != value {
				t.Errorf("Expected %s, got %s", value, retrieved)
			}
		})
	}
}

func TestRedisClient_GetMissingKey(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	if _, err := client.Get("nope"); err == nil {
		t.Error("expected error for missing key")
	}
}

func TestRedisClient_KeysAndDel(t *testing.T) {
	client := db.NewMockRedisClient(context.Background())
	if err := client.Set("rider_options_v1", "{}"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := client.Set("other", "x"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	keys, err := client.Keys("rider_*")
	if err != nil {
		t.Fatalf("Keys failed: %v", err)
	}
	if len(keys) != 1 || keys[0] != "rider_options_v1" {
		t.Errorf("Keys = %v", keys)
	}

	if err := client.Del("rider_options_v1"); err != nil {
		t.Fatalf("Del failed: %v", err)
	}
	if _, err := client.Get("rider_options_v1"); err == nil {
		t.Error("expected deleted key to be missing")
	}
}
