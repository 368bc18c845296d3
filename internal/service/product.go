package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/internal/validation"
	"github.com/Sokol111/ecommerce-marketplace/pkg/core/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProductService struct {
	products ProductStore
	artists  ArtistStore
	metrics  *Metrics
	now      func() time.Time
	newID    func() string
}

func NewProductService(products ProductStore, artists ArtistStore, metrics *Metrics) *ProductService {
	return &ProductService{
		products: products,
		artists:  artists,
		metrics:  metrics,
		now:      func() time.Time { return time.Now().UTC() },
		newID:    uuid.NewString,
	}
}

func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*domain.Product, error) {
	if err := validation.Check(in); err != nil {
		return nil, err
	}

	exists, err := s.artists.ExistsByID(ctx, in.ArtistID)
	if err != nil {
		return nil, fmt.Errorf("failed to look up artist: %w", err)
	}
	if !exists {
		return nil, domain.NewNotFoundError("Artist not found")
	}

	product := in.toProduct(s.newID(), s.now())
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.metrics.productCreated(ctx, product.Category)
	logger.FromContext(ctx).Info("product created",
		zap.String("product_id", product.ID),
		zap.String("artist_id", product.ArtistID),
	)
	return product, nil
}

// List returns products with their owner's name, optionally by category.
func (s *ProductService) List(ctx context.Context, filter domain.ProductFilter) ([]*domain.ProductListing, error) {
	listings, err := s.products.ListWithArtist(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return listings, nil
}
