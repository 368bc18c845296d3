package repository

import (
	"context"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo"
	"go.mongodb.org/mongo-driver/v2/bson"
)

type ArtistRepository struct {
	*mongo.GenericRepository[domain.Artist, artistEntity]
}

func NewArtistRepository(m mongo.Mongo) (*ArtistRepository, error) {
	return newArtistRepository(m.GetCollection(artistsCollection))
}

func newArtistRepository(coll mongo.Collection) (*ArtistRepository, error) {
	generic, err := mongo.NewGenericRepository[domain.Artist, artistEntity](coll, artistMapper{})
	if err != nil {
		return nil, err
	}
	return &ArtistRepository{GenericRepository: generic}, nil
}

func (r *ArtistRepository) ExistsByID(ctx context.Context, artistID string) (bool, error) {
	return r.Exists(ctx, bson.D{{Key: "artistId", Value: artistID}})
}

func (r *ArtistRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.Exists(ctx, bson.D{{Key: "contact.value", Value: phone}})
}
