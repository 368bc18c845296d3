package service

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/Sokol111/ecommerce-marketplace/internal/service"

// Metrics counts completed marketplace operations.
type Metrics struct {
	eventsCreated      metric.Int64Counter
	eventsUpdated      metric.Int64Counter
	eventsDeleted      metric.Int64Counter
	participantsJoined metric.Int64Counter
	artistsRegistered  metric.Int64Counter
	productsCreated    metric.Int64Counter
}

func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	meter := mp.Meter(meterName)
	m := &Metrics{}

	counters := []struct {
		target *metric.Int64Counter
		name   string
		desc   string
	}{
		{&m.eventsCreated, "marketplace.events.created", "Events created"},
		{&m.eventsUpdated, "marketplace.events.updated", "Events updated"},
		{&m.eventsDeleted, "marketplace.events.deleted", "Events deleted"},
		{&m.participantsJoined, "marketplace.events.participants.joined", "Participants that joined an event"},
		{&m.artistsRegistered, "marketplace.artists.registered", "Artist accounts registered"},
		{&m.productsCreated, "marketplace.products.created", "Products listed"},
	}
	for _, c := range counters {
		counter, err := meter.Int64Counter(c.name, metric.WithDescription(c.desc), metric.WithUnit("{operation}"))
		if err != nil {
			return nil, err
		}
		*c.target = counter
	}
	return m, nil
}

func (m *Metrics) eventCreated(ctx context.Context) { m.eventsCreated.Add(ctx, 1) }

func (m *Metrics) eventUpdated(ctx context.Context) { m.eventsUpdated.Add(ctx, 1) }

func (m *Metrics) eventDeleted(ctx context.Context) { m.eventsDeleted.Add(ctx, 1) }

func (m *Metrics) participantJoined(ctx context.Context, t string) {
	m.participantsJoined.Add(ctx, 1, metric.WithAttributes(attribute.String("participant.type", t)))
}

func (m *Metrics) artistRegistered(ctx context.Context) { m.artistsRegistered.Add(ctx, 1) }

func (m *Metrics) productCreated(ctx context.Context, category string) {
	m.productsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("product.category", category)))
}
