package websocket

import (
	"context"
	"fmt"
	"log"

	"github.com/go-redis/redis/v8"
)

// PubSubProvider fans broadcast frames out across API replicas. A single
// instance runs with NoOpPubSub.
type PubSubProvider interface {
	Publish(channel string, payload []byte) error
	Subscribe(ctx context.Context, channel string) (<-chan []byte, error)
	Close() error
}

// NoOpPubSub is the provider used when clustering is disabled.
type NoOpPubSub struct{}

// Publish does nothing
func (p *NoOpPubSub) Publish(channel string, payload []byte) error { return nil }

// Subscribe returns a channel that never delivers
func (p *NoOpPubSub) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	ch := make(chan []byte)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}

// Close does nothing
func (p *NoOpPubSub) Close() error { return nil }

// RedisPubSub distributes frames through Redis Pub/Sub.
type RedisPubSub struct {
	client redis.UniversalClient
}

// NewRedisPubSub creates a Redis-backed provider
func NewRedisPubSub(client redis.UniversalClient) (*RedisPubSub, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client cannot be nil for RedisPubSub")
	}
	return &RedisPubSub{client: client}, nil
}

// Publish sends a frame to all subscribers of the channel
func (p *RedisPubSub) Publish(channel string, payload []byte) error {
	return p.client.Publish(context.Background(), channel, payload).Err()
}

// Subscribe delivers frames published on the channel until ctx is done
func (p *RedisPubSub) Subscribe(ctx context.Context, channel string) (<-chan []byte, error) {
	sub := p.client.Subscribe(ctx, channel)

	// Confirm the subscription before returning.
	if _, err := sub.Receive(ctx); err != nil {
		sub.Close()
		return nil, fmt.Errorf("redis subscribe on %q failed: %w", channel, err)
	}

	out := make(chan []byte, 64)
	go func() {
		defer close(out)
		defer sub.Close()
		for {
			select {
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				select {
				case out <- []byte(msg.Payload):
				default:
					log.Printf("[RedisPubSub] Dropping frame on %q: consumer too slow", channel)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	return out, nil
}

// Close releases the provider. The underlying client is shared and closed
// by the caller.
func (p *RedisPubSub) Close() error { return nil }
