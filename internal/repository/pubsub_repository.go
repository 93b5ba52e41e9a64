package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// PubSubRepository publishes and subscribes to per-user Redis channels.
type PubSubRepository struct {
	client *redis.Client
}

// NewPubSubRepository constructs a pub/sub repository.
func NewPubSubRepository(client *redis.Client) *PubSubRepository {
	return &PubSubRepository{client: client}
}

// Publish sends payload as JSON on channel.
func (r *PubSubRepository) Publish(ctx context.Context, channel string, payload interface{}) error {
	if r.client == nil {
		return nil
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal publish payload: %w", err)
	}
	if err := r.client.Publish(ctx, channel, body).Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}

// Subscribe streams raw messages from channel until ctx is done. The returned
// channel is closed once the subscription ends.
func (r *PubSubRepository) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	if r.client == nil {
		return nil, fmt.Errorf("redis client unavailable")
	}
	sub := r.client.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe %s: %w", channel, err)
	}

	out := make(chan []byte)
	go func() {
		defer close(out)
		defer sub.Close()
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, nil
}
