package publisher

import (
	"context"
	"encoding/base64"

	"github.com/redis/go-redis/v9"
)

// RedisPublisher implements Publisher on a Redis stream
type RedisPublisher struct {
	client    *redis.Client
	stream    string
	maxLength int
}

// NewRedisPublisher creates a new Redis publisher
func NewRedisPublisher(addr string, db int, stream string, maxLength int) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	return &RedisPublisher{
		client:    client,
		stream:    stream,
		maxLength: maxLength,
	}
}

// Publish appends a record to the archive stream. The payload is
// base64 encoded so downstream consumers survive arbitrary bytes.
func (p *RedisPublisher) Publish(ctx context.Context, category string, payload []byte) error {
	encoded := base64.StdEncoding.EncodeToString(payload)

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"category": category,
			"record":   encoded,
		},
	}).Err()
}

// Trim caps the stream to the configured maximum length
func (p *RedisPublisher) Trim(ctx context.Context) error {
	return p.client.XTrimMaxLen(ctx, p.stream, int64(p.maxLength)).Err()
}

// Close closes the Redis connection
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}
