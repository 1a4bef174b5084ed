package notify

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// Redis bridges topic signals across processes via Redis pub/sub, so two
// server instances sharing one database behave like two browser tabs on the
// same origin: a save in one eventually refreshes views in the other.
//
// Remote publishes are folded into a local InProc registry; local publishes
// go out through Redis and come back on the subscription, which keeps
// delivery uniform (and at-least-once) for local and remote subscribers
// alike.
type Redis struct {
	client *redis.Client
	local  *InProc
	pubsub *redis.PubSub
	cancel context.CancelFunc
}

const channel = "wecamp:changed"

func NewRedis(addr string) (*Redis, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx, cancel := context.WithCancel(context.Background())

	if err := client.Ping(ctx).Err(); err != nil {
		cancel()
		return nil, err
	}

	b := &Redis{
		client: client,
		local:  NewInProc(),
		pubsub: client.Subscribe(ctx, channel),
		cancel: cancel,
	}
	go b.receive(ctx)
	return b, nil
}

func (b *Redis) receive(ctx context.Context) {
	ch := b.pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			// Payload is the topic name itself.
			if err := b.local.Publish(ctx, msg.Payload); err != nil {
				log.Printf("[notify] local fan-out failed for %s: %v", msg.Payload, err)
			}
		}
	}
}

func (b *Redis) Publish(ctx context.Context, topic string) error {
	return b.client.Publish(ctx, channel, topic).Err()
}

func (b *Redis) Subscribe(topic string, h Handler) func() {
	return b.local.Subscribe(topic, h)
}

func (b *Redis) Close() error {
	b.cancel()
	if err := b.pubsub.Close(); err != nil {
		return err
	}
	return b.client.Close()
}
