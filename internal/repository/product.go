package repository

import (
	"context"
	"fmt"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
)

type ProductRepository struct {
	*mongo.GenericRepository[domain.Product, productEntity]
}

func NewProductRepository(m mongo.Mongo) (*ProductRepository, error) {
	return newProductRepository(m.GetCollection(productsCollection))
}

func newProductRepository(coll mongo.Collection) (*ProductRepository, error) {
	generic, err := mongo.NewGenericRepository[domain.Product, productEntity](coll, productMapper{})
	if err != nil {
		return nil, err
	}
	return &ProductRepository{GenericRepository: generic}, nil
}

// ListWithArtist returns products oldest first with the owning artist's name
// joined in.
func (r *ProductRepository) ListWithArtist(ctx context.Context, filter domain.ProductFilter) ([]*domain.ProductListing, error) {
	cursor, err := r.Collection().Aggregate(ctx, listingPipeline(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate products: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var entities []productListingEntity
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	listings := make([]*domain.ProductListing, 0, len(entities))
	for i := range entities {
		listings = append(listings, toListing(&entities[i]))
	}
	return listings, nil
}

func listingPipeline(filter domain.ProductFilter) mongodriver.Pipeline {
	var pipeline mongodriver.Pipeline
	if filter.Category != "" {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: bson.D{{Key: "category", Value: filter.Category}}}})
	}
	return append(pipeline,
		bson.D{{Key: "$sort", Value: oldestFirst}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: artistsCollection},
			{Key: "localField", Value: "artistId"},
			{Key: "foreignField", Value: "artistId"},
			{Key: "pipeline", Value: bson.A{
				bson.D{{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}, {Key: "name", Value: 1}}}},
			}},
			{Key: "as", Value: "artisan"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$artisan"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	)
}
