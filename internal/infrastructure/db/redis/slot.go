package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/slooze/commodities-admin/internal/core/ports"
)

// DefaultKeyPrefix namespaces slot keys.
const DefaultKeyPrefix = "commodities:slot:"

// Slot implements ports.Slot on Redis strings.
// Key format: <prefix><key>. Values never expire.
type Slot struct {
	client *redis.Client
	prefix string
}

// NewSlot wraps client. An empty prefix falls back to DefaultKeyPrefix.
func NewSlot(client *redis.Client, prefix string) *Slot {
	if prefix == "" {
		prefix = DefaultKeyPrefix
	}
	return &Slot{client: client, prefix: prefix}
}

func (s *Slot) Get(ctx context.Context, key string) ([]byte, error) {
	b, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ports.ErrSlotEmpty
		}
		return nil, fmt.Errorf("redis slot get: %w", err)
	}
	return b, nil
}

func (s *Slot) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis slot put: %w", err)
	}
	return nil
}

func (s *Slot) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("redis slot delete: %w", err)
	}
	return nil
}

func (s *Slot) key(k string) string {
	return s.prefix + k
}
