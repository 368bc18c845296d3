//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/migrations"
	"github.com/Sokol111/ecommerce-marketplace/pkg/core/health"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo"
	"github.com/Sokol111/ecommerce-marketplace/pkg/testutil/container"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

type stores struct {
	events   *EventRepository
	artists  *ArtistRepository
	products *ProductRepository
}

// startStores runs MongoDB in a container, applies the embedded migrations
// and returns repositories backed by a fresh database.
func startStores(t *testing.T) stores {
	t.Helper()
	ctx := context.Background()

	mongoContainer, err := container.StartMongoDBContainer(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mongoContainer.Terminate(context.Background()) })

	var s stores
	app := fxtest.New(t,
		fx.Supply(zap.NewNop()),
		health.NewReadinessModule(),
		mongo.NewMongoModule(
			mongo.WithMongoConfig(mongoContainer.Config("marketplace_"+uuid.NewString()[:8])),
			mongo.WithMigrations(migrations.Source()),
		),
		fx.Provide(NewEventRepository, NewArtistRepository, NewProductRepository),
		fx.Populate(&s.events, &s.artists, &s.products),
	)
	app.RequireStart()
	t.Cleanup(app.RequireStop)

	return s
}

func newEvent(name string, created time.Time) *domain.Event {
	return &domain.Event{
		ID:          uuid.NewString(),
		Name:        name,
		Types:       []domain.EventType{domain.EventTypeWorkshop},
		Date:        time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		Location:    "Jaipur",
		Description: "Block printing",
		ArtistID:    "a1",
		CreatedAt:   created,
	}
}

func TestEventRepository_Integration(t *testing.T) {
	s := startStores(t)
	ctx := context.Background()
	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("name lookup picks the oldest event", func(t *testing.T) {
		// Given
		newer := newEvent("Crafts Fair", base.Add(time.Hour))
		older := newEvent("Crafts Fair", base)
		require.NoError(t, s.events.Insert(ctx, newer))
		require.NoError(t, s.events.Insert(ctx, older))

		// When
		found, err := s.events.FindOne(ctx, domain.EventByName("Crafts Fair"))

		// Then
		require.NoError(t, err)
		assert.Equal(t, older.ID, found.ID)
		assert.Empty(t, found.Participants)
	})

	t.Run("event id is unique", func(t *testing.T) {
		event := newEvent("Dup", base)
		require.NoError(t, s.events.Insert(ctx, event))

		err := s.events.Insert(ctx, event)

		assert.ErrorIs(t, err, persistence.ErrDuplicateKey)
	})

	t.Run("joining twice conflicts", func(t *testing.T) {
		// Given
		event := newEvent("Join", base)
		require.NoError(t, s.events.Insert(ctx, event))
		p := domain.Participant{ID: "p1", Type: domain.ParticipantCustomer}

		// When
		first := s.events.AddParticipant(ctx, event.ID, p)
		second := s.events.AddParticipant(ctx, event.ID, p)

		// Then
		require.NoError(t, first)
		assert.ErrorIs(t, second, domain.ErrParticipantExists)
		stored, err := s.events.FindOne(ctx, domain.EventByID(event.ID))
		require.NoError(t, err)
		assert.Len(t, stored.Participants, 1)
	})

	t.Run("concurrent joins of one participant store it once", func(t *testing.T) {
		// Given
		event := newEvent("Race", base)
		require.NoError(t, s.events.Insert(ctx, event))
		p := domain.Participant{ID: "racer", Type: domain.ParticipantArtisan}

		// When
		var wg sync.WaitGroup
		for range 8 {
			wg.Go(func() { _ = s.events.AddParticipant(ctx, event.ID, p) })
		}
		wg.Wait()

		// Then
		stored, err := s.events.FindOne(ctx, domain.EventByID(event.ID))
		require.NoError(t, err)
		assert.Len(t, stored.Participants, 1)
	})

	t.Run("joining unknown event", func(t *testing.T) {
		err := s.events.AddParticipant(ctx, uuid.NewString(), domain.Participant{ID: "p1", Type: domain.ParticipantCustomer})

		assert.ErrorIs(t, err, persistence.ErrEntityNotFound)
	})

	t.Run("update overwrites scalars and merges participants", func(t *testing.T) {
		// Given
		event := newEvent("Patch", base)
		event.Participants = []domain.Participant{{ID: "p1", Type: domain.ParticipantCustomer}}
		require.NoError(t, s.events.Insert(ctx, event))

		name := "$renamed"
		types := []domain.EventType{domain.EventTypeSeminar, domain.EventTypeMeetup}
		patch := domain.EventPatch{
			Name:  &name,
			Types: &types,
			AddParticipants: []domain.Participant{
				{ID: "p1", Type: domain.ParticipantArtisan},
				{ID: "p2", Type: domain.ParticipantArtisan},
			},
		}

		// When
		err := s.events.Update(ctx, domain.EventByID(event.ID), patch)

		// Then
		require.NoError(t, err)
		stored, err := s.events.FindOne(ctx, domain.EventByID(event.ID))
		require.NoError(t, err)
		assert.Equal(t, "$renamed", stored.Name)
		assert.Equal(t, types, stored.Types)
		assert.Equal(t, event.ID, stored.ID)
		assert.Equal(t, []domain.Participant{
			{ID: "p1", Type: domain.ParticipantCustomer},
			{ID: "p2", Type: domain.ParticipantArtisan},
		}, stored.Participants)
		assert.Equal(t, base, stored.CreatedAt)
	})

	t.Run("update by name of unknown event", func(t *testing.T) {
		name := "x"
		err := s.events.Update(ctx, domain.EventByName("missing"), domain.EventPatch{Name: &name})

		assert.ErrorIs(t, err, persistence.ErrEntityNotFound)
	})

	t.Run("delete by name removes only the oldest", func(t *testing.T) {
		// Given
		older := newEvent("Twin", base)
		newer := newEvent("Twin", base.Add(time.Minute))
		require.NoError(t, s.events.Insert(ctx, older))
		require.NoError(t, s.events.Insert(ctx, newer))

		// When
		err := s.events.Delete(ctx, domain.EventByName("Twin"))

		// Then
		require.NoError(t, err)
		_, err = s.events.FindOne(ctx, domain.EventByID(older.ID))
		assert.ErrorIs(t, err, persistence.ErrEntityNotFound)
		_, err = s.events.FindOne(ctx, domain.EventByID(newer.ID))
		assert.NoError(t, err)
	})

	t.Run("list filters by artist", func(t *testing.T) {
		event := newEvent("Solo", base)
		event.ArtistID = "solo-artist"
		require.NoError(t, s.events.Insert(ctx, event))

		events, err := s.events.List(ctx, domain.EventFilter{ArtistID: "solo-artist"})

		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, event.ID, events[0].ID)
	})
}

func TestArtistAndProductRepositories_Integration(t *testing.T) {
	s := startStores(t)
	ctx := context.Background()
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	artist := &domain.Artist{
		ID:           uuid.NewString(),
		Name:         "Meera",
		Email:        "meera@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		Contact:      domain.Contact{Phone: "9876543210"},
		CreatedAt:    now,
	}
	require.NoError(t, s.artists.Insert(ctx, artist))

	t.Run("phone is unique", func(t *testing.T) {
		dup := *artist
		dup.ID = uuid.NewString()

		err := s.artists.Insert(ctx, &dup)

		assert.ErrorIs(t, err, persistence.ErrDuplicateKey)
		exists, err := s.artists.ExistsByPhone(ctx, "9876543210")
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("products embed artist name", func(t *testing.T) {
		// Given
		require.NoError(t, s.products.Insert(ctx, &domain.Product{
			ID: uuid.NewString(), Category: "pottery", Name: "Vase", Price: 10, Quantity: 2, ArtistID: artist.ID, CreatedAt: now,
		}))
		require.NoError(t, s.products.Insert(ctx, &domain.Product{
			ID: uuid.NewString(), Category: "textile", Name: "Scarf", Price: 5, Quantity: 1, ArtistID: "unknown", CreatedAt: now.Add(time.Second),
		}))

		// When
		all, err := s.products.ListWithArtist(ctx, domain.ProductFilter{})
		require.NoError(t, err)
		pottery, err := s.products.ListWithArtist(ctx, domain.ProductFilter{Category: "pottery"})
		require.NoError(t, err)

		// Then
		require.Len(t, all, 2)
		assert.Equal(t, "Meera", all[0].ArtistName)
		assert.Empty(t, all[1].ArtistName)
		require.Len(t, pottery, 1)
		assert.Equal(t, "Vase", pottery[0].Name)
	})
}
