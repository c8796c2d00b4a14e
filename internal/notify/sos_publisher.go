package notify

import (
	"context"
	"encoding/json"

	"github.com/Sagar0810k/Happy-taxi-full-stack/internal/models"
	"github.com/redis/go-redis/v9"
)

// SOSPublisher fans an SOS alert out to whoever is subscribed to the channel.
type SOSPublisher interface {
	PublishSOS(ctx context.Context, alert *models.SOSAlert) error
}

type sosEvent struct {
	Type  string           `json:"type"`
	Alert *models.SOSAlert `json:"alert"`
}

type redisSOSPublisher struct {
	redis   *redis.Client
	channel string
}

func NewRedisSOSPublisher(redisClient *redis.Client, channel string) SOSPublisher {
	return &redisSOSPublisher{redis: redisClient, channel: channel}
}

func (p *redisSOSPublisher) PublishSOS(ctx context.Context, alert *models.SOSAlert) error {
	data, err := json.Marshal(sosEvent{Type: "sos_alert", Alert: alert})
	if err != nil {
		return err
	}
	return p.redis.Publish(ctx, p.channel, data).Err()
}
