package metrics

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Identifier codes handed out, by prefix.
	FNSKUGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gudang_fnsku_generated_total",
			Help: "Number of identifier codes generated (by prefix).",
		},
		[]string{"prefix"},
	)

	// Generated codes that collided with a stored one and were drawn again.
	FNSKUCollisions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gudang_fnsku_collisions_total",
			Help: "Number of generated identifier codes discarded because they were already in use.",
		},
	)

	ProductsMasked = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gudang_products_masked_total",
			Help: "Number of successful mask operations.",
		},
	)

	OrdersCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "gudang_orders_created_total",
			Help: "Number of marketplace orders recorded.",
		},
	)

	EventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gudang_event_publish_errors_total",
			Help: "Number of domain events that failed to publish (by routing key).",
		},
		[]string{"routing_key"},
	)
)

func IncFNSKUGenerated(prefix string) {
	FNSKUGenerated.WithLabelValues(prefix).Inc()
}

func IncEventPublishError(routingKey string) {
	EventPublishErrors.WithLabelValues(routingKey).Inc()
}

// Handler exposes the default registry on a fiber route.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
