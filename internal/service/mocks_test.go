package service

import (
	"context"
	"testing"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

type mockEventStore struct{ mock.Mock }

func (m *mockEventStore) Insert(ctx context.Context, event *domain.Event) error {
	return m.Called(ctx, event).Error(0)
}

func (m *mockEventStore) FindOne(ctx context.Context, sel domain.EventSelector) (*domain.Event, error) {
	args := m.Called(ctx, sel)
	event, _ := args.Get(0).(*domain.Event)
	return event, args.Error(1)
}

func (m *mockEventStore) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	args := m.Called(ctx, filter)
	events, _ := args.Get(0).([]*domain.Event)
	return events, args.Error(1)
}

func (m *mockEventStore) Delete(ctx context.Context, sel domain.EventSelector) error {
	return m.Called(ctx, sel).Error(0)
}

func (m *mockEventStore) Update(ctx context.Context, sel domain.EventSelector, patch domain.EventPatch) error {
	return m.Called(ctx, sel, patch).Error(0)
}

func (m *mockEventStore) AddParticipant(ctx context.Context, eventID string, p domain.Participant) error {
	return m.Called(ctx, eventID, p).Error(0)
}

type mockArtistStore struct{ mock.Mock }

func (m *mockArtistStore) Insert(ctx context.Context, artist *domain.Artist) error {
	return m.Called(ctx, artist).Error(0)
}

func (m *mockArtistStore) ExistsByID(ctx context.Context, artistID string) (bool, error) {
	args := m.Called(ctx, artistID)
	return args.Bool(0), args.Error(1)
}

func (m *mockArtistStore) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	args := m.Called(ctx, phone)
	return args.Bool(0), args.Error(1)
}

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) Insert(ctx context.Context, product *domain.Product) error {
	return m.Called(ctx, product).Error(0)
}

func (m *mockProductStore) ListWithArtist(ctx context.Context, filter domain.ProductFilter) ([]*domain.ProductListing, error) {
	args := m.Called(ctx, filter)
	listings, _ := args.Get(0).([]*domain.ProductListing)
	return listings, args.Error(1)
}

type mockHasher struct{ mock.Mock }

func (m *mockHasher) Hash(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func noopMetrics(t *testing.T) *Metrics {
	t.Helper()
	m, err := NewMetrics(noop.NewMeterProvider())
	require.NoError(t, err)
	return m
}

func assertNoWrites(t *testing.T, m *mock.Mock, methods ...string) {
	t.Helper()
	for _, call := range m.Calls {
		assert.NotContains(t, methods, call.Method)
	}
}
