package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo/mongomock"
)

func hasDeadlineWithin(d time.Duration) any {
	return mock.MatchedBy(func(ctx context.Context) bool {
		deadline, ok := ctx.Deadline()
		return ok && time.Until(deadline) <= d
	})
}

func TestNewCollectionWrapper_PanicsOnNil(t *testing.T) {
	assert.Panics(t, func() {
		newCollectionWrapper(nil, time.Second)
	})
}

func TestCollectionWrapper_AddsDeadline(t *testing.T) {
	filter := bson.D{{Key: "eventId", Value: "e1"}}

	t.Run("FindOne", func(t *testing.T) {
		// Given
		coll := mongomock.NewMockCollection(t)
		w := newCollectionWrapper(coll, time.Second)
		single := mongodriver.NewSingleResultFromDocument(bson.D{{Key: "eventId", Value: "e1"}}, nil, bson.NewRegistry())
		coll.On("FindOne", hasDeadlineWithin(time.Second), filter, mock.Anything).Return(single)

		// When
		res := w.FindOne(context.Background(), filter)

		// Then
		assert.Same(t, single, res)
	})

	t.Run("UpdateOne", func(t *testing.T) {
		// Given
		coll := mongomock.NewMockCollection(t)
		w := newCollectionWrapper(coll, time.Second)
		update := bson.D{{Key: "$set", Value: bson.D{{Key: "name", Value: "x"}}}}
		coll.On("UpdateOne", hasDeadlineWithin(time.Second), filter, update, mock.Anything).
			Return(&mongodriver.UpdateResult{MatchedCount: 1}, nil)

		// When
		res, err := w.UpdateOne(context.Background(), filter, update)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(1), res.MatchedCount)
	})

	t.Run("CountDocuments", func(t *testing.T) {
		// Given
		coll := mongomock.NewMockCollection(t)
		w := newCollectionWrapper(coll, time.Second)
		coll.On("CountDocuments", hasDeadlineWithin(time.Second), filter, mock.Anything).Return(int64(3), nil)

		// When
		n, err := w.CountDocuments(context.Background(), filter)

		// Then
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})
}

func TestCollectionWrapper_KeepsShorterParentDeadline(t *testing.T) {
	// Given: a parent context that expires sooner than the query timeout
	coll := mongomock.NewMockCollection(t)
	w := newCollectionWrapper(coll, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	coll.On("DeleteOne", hasDeadlineWithin(50*time.Millisecond), mock.Anything, mock.Anything).
		Return(&mongodriver.DeleteResult{DeletedCount: 1}, nil)

	// When
	res, err := w.DeleteOne(ctx, bson.D{})

	// Then
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)
}

func TestCollectionWrapper_ZeroTimeoutPassesContextThrough(t *testing.T) {
	// Given: a wrapper without timeout
	coll := mongomock.NewMockCollection(t)
	w := newCollectionWrapper(coll, 0)
	noDeadline := mock.MatchedBy(func(ctx context.Context) bool {
		_, ok := ctx.Deadline()
		return !ok
	})
	coll.On("InsertOne", noDeadline, mock.Anything, mock.Anything).Return(&mongodriver.InsertOneResult{}, nil)

	// When
	_, err := w.InsertOne(context.Background(), bson.D{})

	// Then
	require.NoError(t, err)
}
