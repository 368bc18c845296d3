package repository

import (
	"context"
	"testing"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo/mongomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
)

func TestListingPipeline(t *testing.T) {
	t.Run("without category", func(t *testing.T) {
		pipeline := listingPipeline(domain.ProductFilter{})

		require.Len(t, pipeline, 3)
		assert.Equal(t, "$sort", pipeline[0][0].Key)
		assert.Equal(t, "$lookup", pipeline[1][0].Key)
		assert.Equal(t, "$unwind", pipeline[2][0].Key)
	})

	t.Run("with category", func(t *testing.T) {
		pipeline := listingPipeline(domain.ProductFilter{Category: "pottery"})

		require.Len(t, pipeline, 4)
		assert.Equal(t, bson.D{{Key: "$match", Value: bson.D{{Key: "category", Value: "pottery"}}}}, pipeline[0])
	})
}

func TestProductRepository_ListWithArtist(t *testing.T) {
	// Given
	coll := mongomock.NewMockCollection(t)
	coll.On("Name").Return(productsCollection).Maybe()
	repo, err := newProductRepository(coll)
	require.NoError(t, err)

	created := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	cursor, err := mongodriver.NewCursorFromDocuments([]any{
		bson.D{
			{Key: "productId", Value: "pr1"},
			{Key: "name", Value: "Vase"},
			{Key: "price", Value: 12.5},
			{Key: "quantity", Value: 3},
			{Key: "artistId", Value: "a1"},
			{Key: "createdAt", Value: created},
			{Key: "artisan", Value: bson.D{{Key: "name", Value: "Meera"}}},
		},
		bson.D{
			{Key: "productId", Value: "pr2"},
			{Key: "name", Value: "Orphan"},
			{Key: "artistId", Value: "gone"},
		},
	}, nil, bson.NewRegistry())
	require.NoError(t, err)
	coll.On("Aggregate", mock.Anything, mock.Anything, mock.Anything).Return(cursor, nil)

	// When
	listings, err := repo.ListWithArtist(context.Background(), domain.ProductFilter{})

	// Then
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "pr1", listings[0].ID)
	assert.Equal(t, 12.5, listings[0].Price)
	assert.Equal(t, 3, listings[0].Quantity)
	assert.Equal(t, created, listings[0].CreatedAt)
	assert.Equal(t, "Meera", listings[0].ArtistName)
	assert.Empty(t, listings[1].ArtistName)
}

func TestProductRepository_Insert_Duplicate(t *testing.T) {
	// Given
	coll := mongomock.NewMockCollection(t)
	coll.On("Name").Return(productsCollection).Maybe()
	repo, err := newProductRepository(coll)
	require.NoError(t, err)

	dupErr := mongodriver.WriteException{WriteErrors: []mongodriver.WriteError{{Code: 11000, Message: "E11000 duplicate key"}}}
	coll.On("InsertOne", mock.Anything, mock.MatchedBy(func(e *productEntity) bool {
		return e.ProductID == "pr1" && e.Images != nil
	}), mock.Anything).Return(nil, dupErr)

	// When
	err = repo.Insert(context.Background(), &domain.Product{ID: "pr1"})

	// Then
	assert.ErrorIs(t, err, persistence.ErrDuplicateKey)
}

func TestArtistRepository_Exists(t *testing.T) {
	// Given
	coll := mongomock.NewMockCollection(t)
	coll.On("Name").Return(artistsCollection).Maybe()
	repo, err := newArtistRepository(coll)
	require.NoError(t, err)
	coll.On("CountDocuments", mock.Anything, bson.D{{Key: "artistId", Value: "a1"}}, mock.Anything).Return(int64(1), nil)
	coll.On("CountDocuments", mock.Anything, bson.D{{Key: "contact.value", Value: "9876543210"}}, mock.Anything).Return(int64(0), nil)

	// When
	byID, errID := repo.ExistsByID(context.Background(), "a1")
	byPhone, errPhone := repo.ExistsByPhone(context.Background(), "9876543210")

	// Then
	require.NoError(t, errID)
	require.NoError(t, errPhone)
	assert.True(t, byID)
	assert.False(t, byPhone)
}

func TestArtistMapper_RoundTrip(t *testing.T) {
	// Given
	dob := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)
	artist := &domain.Artist{
		ID:           "a1",
		Name:         "Meera",
		PasswordHash: "$2a$10$hash",
		DateOfBirth:  dob,
		About:        "Potter",
		Contact:      domain.Contact{Phone: "9876543210", Verified: true},
	}

	// When
	entity := artistMapper{}.ToEntity(artist)
	back := artistMapper{}.ToDomain(entity)

	// Then
	assert.Equal(t, "9876543210", entity.Contact.Value)
	assert.Equal(t, []string{}, entity.Specialization)
	assert.Equal(t, "Potter", entity.AboutHimself)
	assert.Equal(t, artist.Contact, back.Contact)
	assert.Equal(t, dob, back.DateOfBirth)
}
