package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrEmptyChannel = errors.New("publisher channel is empty")

type PlyPublisher interface {
	PublishPly(ctx context.Context, event *entity.PlyEvent) error
}

type redisPlyPublisher struct {
	client  *redis.Client
	channel string
}

// NewPlyPublisher - publishes ply events as JSON on a Redis pub/sub channel.
func NewPlyPublisher(client *redis.Client, channel string) (PlyPublisher, error) {
	if channel == "" {
		return nil, ErrEmptyChannel
	}

	return &redisPlyPublisher{
		client:  client,
		channel: channel,
	}, nil
}

func (that *redisPlyPublisher) PublishPly(ctx context.Context, event *entity.PlyEvent) error {
	payload, err := encodePlyEvent(event)
	if err != nil {
		return err
	}

	if err = that.client.Publish(ctx, that.channel, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish ply %d: %w", event.Ply, err)
	}

	return nil
}

func encodePlyEvent(event *entity.PlyEvent) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("could not marshal ply event: %w", err)
	}

	return payload, nil
}
