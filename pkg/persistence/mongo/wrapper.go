package mongo

import (
	"context"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// collectionWrapper bounds every call with the configured query timeout.
// Cursors returned by Find and Aggregate carry their first batch; later batches
// are fetched with the caller's context.
type collectionWrapper struct {
	coll    Collection
	timeout time.Duration
}

func newCollectionWrapper(coll Collection, timeout time.Duration) *collectionWrapper {
	if coll == nil {
		panic("mongo: collection is required")
	}
	return &collectionWrapper{coll: coll, timeout: timeout}
}

func (w *collectionWrapper) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if w.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, w.timeout)
}

func (w *collectionWrapper) FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongodriver.SingleResult {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.FindOne(ctx, filter, opts...)
}

func (w *collectionWrapper) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongodriver.Cursor, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.Find(ctx, filter, opts...)
}

func (w *collectionWrapper) InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongodriver.InsertOneResult, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.InsertOne(ctx, document, opts...)
}

func (w *collectionWrapper) UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongodriver.UpdateResult, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.UpdateOne(ctx, filter, update, opts...)
}

func (w *collectionWrapper) DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongodriver.DeleteResult, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.DeleteOne(ctx, filter, opts...)
}

func (w *collectionWrapper) Aggregate(ctx context.Context, pipeline any, opts ...options.Lister[options.AggregateOptions]) (*mongodriver.Cursor, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.Aggregate(ctx, pipeline, opts...)
}

func (w *collectionWrapper) CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error) {
	ctx, cancel := w.withTimeout(ctx)
	defer cancel()
	return w.coll.CountDocuments(ctx, filter, opts...)
}

func (w *collectionWrapper) Name() string {
	return w.coll.Name()
}
