// Package service implements the marketplace operations on top of the stores.
package service

import (
	"context"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
)

// EventStore persists events. Lookups of absent events return
// persistence.ErrEntityNotFound.
type EventStore interface {
	Insert(ctx context.Context, event *domain.Event) error
	FindOne(ctx context.Context, sel domain.EventSelector) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
	Delete(ctx context.Context, sel domain.EventSelector) error
	Update(ctx context.Context, sel domain.EventSelector, patch domain.EventPatch) error
	AddParticipant(ctx context.Context, eventID string, p domain.Participant) error
}

type ArtistStore interface {
	Insert(ctx context.Context, artist *domain.Artist) error
	ExistsByID(ctx context.Context, artistID string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
}

type ProductStore interface {
	Insert(ctx context.Context, product *domain.Product) error
	ListWithArtist(ctx context.Context, filter domain.ProductFilter) ([]*domain.ProductListing, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
}
