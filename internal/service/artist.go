package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/internal/validation"
	"github.com/Sokol111/ecommerce-marketplace/pkg/core/logger"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const userExists = "User already exists"

type ArtistService struct {
	artists ArtistStore
	hasher  PasswordHasher
	metrics *Metrics
	now     func() time.Time
	newID   func() string
}

func NewArtistService(artists ArtistStore, hasher PasswordHasher, metrics *Metrics) *ArtistService {
	return &ArtistService{
		artists: artists,
		hasher:  hasher,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Create registers an artist. The phone number must be unused; the unique
// index on it covers registrations racing past the pre-check.
func (s *ArtistService) Create(ctx context.Context, in CreateArtistInput) (*domain.Artist, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	taken, err := s.artists.ExistsByPhone(ctx, in.Contact.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to look up phone number: %w", err)
	}
	if taken {
		return nil, domain.NewConflictError(userExists)
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	artist := in.toArtist(s.newID(), hash, s.now())
	if err := s.artists.Insert(ctx, artist); err != nil {
		if errors.Is(err, persistence.ErrDuplicateKey) {
			return nil, domain.NewConflictError(userExists)
		}
		return nil, fmt.Errorf("failed to create artist: %w", err)
	}

	s.metrics.artistRegistered(ctx)
	logger.FromContext(ctx).Info("artist registered", zap.String("artist_id", artist.ID))
	return artist, nil
}
