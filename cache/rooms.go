package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"hotel-reservation/models/room"

	"github.com/redis/go-redis/v9"
)

// RoomCache keeps short-lived copies of the informational room browse lists.
// Booking invalidates the hotel's entries; availability counts never pass
// through here.
type RoomCache struct {
	c   *redis.Client
	ttl time.Duration
}

func New(addr, password string, db int, ttl time.Duration) *RoomCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &RoomCache{
		c:   redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: db}),
		ttl: ttl,
	}
}

// NewWithClient wraps an existing client; tests use it with miniredis.
func NewWithClient(c *redis.Client, ttl time.Duration) *RoomCache {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &RoomCache{c: c, ttl: ttl}
}

func browseKey(hotelID uint, roomType string) string {
	return fmt.Sprintf("rooms:browse:%d:%s", hotelID, roomType)
}

// GetBrowse returns the cached browse list for a hotel/type pair, reporting a
// miss as (nil, false, nil).
func (rc *RoomCache) GetBrowse(ctx context.Context, hotelID uint, roomType string) ([]room.Room, bool, error) {
	v, err := rc.c.Get(ctx, browseKey(hotelID, roomType)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var rooms []room.Room
	if err := json.Unmarshal(v, &rooms); err != nil {
		return nil, false, err
	}
	return rooms, true, nil
}

// SetBrowse stores a browse list with the configured TTL.
func (rc *RoomCache) SetBrowse(ctx context.Context, hotelID uint, roomType string, rooms []room.Room) error {
	b, err := json.Marshal(rooms)
	if err != nil {
		return err
	}
	return rc.c.Set(ctx, browseKey(hotelID, roomType), b, rc.ttl).Err()
}

// InvalidateHotel drops every browse entry of a hotel after its rooms change.
func (rc *RoomCache) InvalidateHotel(ctx context.Context, hotelID uint) error {
	for _, t := range []string{room.TypeSingle, room.TypeDouble, room.TypeSuite, room.TypeFamily} {
		if err := rc.c.Del(ctx, browseKey(hotelID, t)).Err(); err != nil {
			return err
		}
	}
	return nil
}
