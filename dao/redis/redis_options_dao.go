package redis

import (
	"encoding/json"
	"fmt"
	"log"

	"ttc-rider-server/db"
	"ttc-rider-server/models"
)

const OPTIONS_KEY_V1 = "rider_options_v1"

// RedisOptionsDAO caches the dropdown options (distinct stations, lines,
// day types) so the HTTP path does not hit the ridership store on every
// request. The store stays the source of truth; a refresher rewrites
// this key periodically.
type RedisOptionsDAO struct {
	client db.RedisClient
}

// NewRedisOptionsDAO initializes a RedisOptionsDAO with the Redis client.
func NewRedisOptionsDAO(client db.RedisClient) *RedisOptionsDAO {
	return &RedisOptionsDAO{client: client}
}

// PutOptions stores the options payload as JSON under the versioned key.
func (dao *RedisOptionsDAO) PutOptions(options models.OptionsResponse) error {
	data, err := json.Marshal(options)
	if err != nil {
		return fmt.Errorf("[RedisOptionsDAO] failed to marshal options: %v", err)
	}
	return dao.client.Set(OPTIONS_KEY_V1, string(data))
}

// GetOptions retrieves the cached options payload. Returns an error on a
// cache miss; callers fall back to the ridership store.
func (dao *RedisOptionsDAO) GetOptions() (*models.OptionsResponse, error) {
	data, err := dao.client.Get(OPTIONS_KEY_V1)
	if err != nil {
		return nil, fmt.Errorf("[RedisOptionsDAO] options cache miss: %v", err)
	}

	var options models.OptionsResponse
	if err := json.Unmarshal([]byte(data), &options); err != nil {
		return nil, fmt.Errorf("[RedisOptionsDAO] failed to unmarshal options: %v", err)
	}
	return &options, nil
}

// Invalidate drops the cached options payload.
func (dao *RedisOptionsDAO) Invalidate() error {
	log.Println("[RedisOptionsDAO] invalidating options cache")
	return dao.client.Del(OPTIONS_KEY_V1)
}
