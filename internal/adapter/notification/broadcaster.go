package notification

import (
	"context"
	"fmt"

	"github.com/ecologicaleaving/wikigaialab/internal/domain/entity"
	"github.com/ecologicaleaving/wikigaialab/internal/usecase/interfaces"
	"github.com/ecologicaleaving/wikigaialab/pkg/messaging"
)

// RedisBroadcaster publishes realtime events to Redis channels consumed by the websocket endpoint
type RedisBroadcaster struct {
	publisher messaging.RedisClient
}

// NewRedisBroadcaster creates a broadcaster
func NewRedisBroadcaster(publisher messaging.RedisClient) interfaces.Broadcaster {
	return &RedisBroadcaster{publisher: publisher}
}

func (b *RedisBroadcaster) Broadcast(ctx context.Context, channel string, event entity.RealtimeEvent) error {
	if err := b.publisher.Publish(ctx, channel, event); err != nil {
		return fmt.Errorf("failed to broadcast %s on %s: %w", event.Type, channel, err)
	}
	return nil
}
