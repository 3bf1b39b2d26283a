package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"agrihub/internal/tenant"

	"github.com/redis/go-redis/v9"
)

// redisFeed carries live-update events over redis pub/sub. Channels
// are scoped per resource and organization so subscribers never see
// another tenant's changes.
type redisFeed struct {
	client *redis.Client
}

func NewRedisFeed(client *redis.Client) tenant.Feed {
	return &redisFeed{client: client}
}

func feedChannel(resource, orgID string) string {
	return fmt.Sprintf("agrihub:feed:%s:%s", resource, orgID)
}

func (f *redisFeed) Publish(ctx context.Context, resource, orgID string, event tenant.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return f.client.Publish(ctx, feedChannel(resource, orgID), payload).Err()
}

func (f *redisFeed) Subscribe(ctx context.Context, resource, orgID string) (<-chan tenant.Event, error) {
	sub := f.client.Subscribe(ctx, feedChannel(resource, orgID))
	if _, err := sub.Receive(ctx); err != nil {
		return nil, err
	}

	events := make(chan tenant.Event)
	go func() {
		defer close(events)
		defer sub.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-sub.Channel():
				if !ok {
					return
				}
				var event tenant.Event
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					log.Printf("feed: dropping malformed event on %s: %v", msg.Channel, err)
					continue
				}
				events <- event
			}
		}
	}()
	return events, nil
}
