package services

import (
	"encoding/json"

	"github.com/rs/zerolog/log"

	"gudang/internal/metrics"
)

// EventExchange is the topic exchange domain events are published to.
const EventExchange = "inventory"

// Routing keys.
const (
	EventProductMasked = "product.masked"
	EventOrderCreated  = "order.created"
)

// EventPublisher publishes domain events. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(exchange, routingKey string, body []byte) error
}

// Notifier raises operator notifications.
type Notifier interface {
	Notify(kind, title, message string)
}

// publishEvent never fails the caller: broker trouble is logged and counted.
func publishEvent(p EventPublisher, routingKey string, payload any) {
	if p == nil {
		log.Debug().Str("routing_key", routingKey).Msg("event publisher not configured, skipping event")
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Str("routing_key", routingKey).Msg("failed to marshal event")
		return
	}
	if err := p.Publish(EventExchange, routingKey, body); err != nil {
		metrics.IncEventPublishError(routingKey)
		log.Warn().Err(err).Str("routing_key", routingKey).Msg("failed to publish event")
		return
	}
	log.Debug().Str("routing_key", routingKey).Msg("event published")
}
