// Package mongomock provides a testify mock for mongo.Collection.
package mongomock

import (
	"context"

	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/stretchr/testify/mock"
)

// MockCollection implements mongo.Collection. Variadic options are passed to
// Called as a single slice argument.
type MockCollection struct {
	mock.Mock
}

// NewMockCollection creates a MockCollection whose expectations are asserted on cleanup.
func NewMockCollection(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockCollection {
	m := &MockCollection{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockCollection) FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongodriver.SingleResult {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(*mongodriver.SingleResult)
}

func (m *MockCollection) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongodriver.Cursor, error) {
	args := m.Called(ctx, filter, opts)
	cursor, _ := args.Get(0).(*mongodriver.Cursor)
	return cursor, args.Error(1)
}

func (m *MockCollection) InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongodriver.InsertOneResult, error) {
	args := m.Called(ctx, document, opts)
	res, _ := args.Get(0).(*mongodriver.InsertOneResult)
	return res, args.Error(1)
}

func (m *MockCollection) UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongodriver.UpdateResult, error) {
	args := m.Called(ctx, filter, update, opts)
	res, _ := args.Get(0).(*mongodriver.UpdateResult)
	return res, args.Error(1)
}

func (m *MockCollection) DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongodriver.DeleteResult, error) {
	args := m.Called(ctx, filter, opts)
	res, _ := args.Get(0).(*mongodriver.DeleteResult)
	return res, args.Error(1)
}

func (m *MockCollection) Aggregate(ctx context.Context, pipeline any, opts ...options.Lister[options.AggregateOptions]) (*mongodriver.Cursor, error) {
	args := m.Called(ctx, pipeline, opts)
	cursor, _ := args.Get(0).(*mongodriver.Cursor)
	return cursor, args.Error(1)
}

func (m *MockCollection) CountDocuments(ctx context.Context, filter any, opts ...options.Lister[options.CountOptions]) (int64, error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCollection) Name() string {
	args := m.Called()
	return args.String(0)
}
