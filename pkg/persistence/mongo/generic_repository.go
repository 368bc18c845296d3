package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// EntityMapper converts between domain models and stored documents.
type EntityMapper[Domain any, Entity any] interface {
	ToEntity(domain *Domain) *Entity
	ToDomain(entity *Entity) *Domain
}

// GenericRepository implements the common document operations for one collection.
type GenericRepository[Domain any, Entity any] struct {
	coll   Collection
	mapper EntityMapper[Domain, Entity]
}

func NewGenericRepository[Domain any, Entity any](
	coll Collection,
	mapper EntityMapper[Domain, Entity],
) (*GenericRepository[Domain, Entity], error) {
	if coll == nil {
		return nil, fmt.Errorf("collection is required")
	}
	if mapper == nil {
		return nil, fmt.Errorf("mapper is required")
	}
	return &GenericRepository[Domain, Entity]{
		coll:   coll,
		mapper: mapper,
	}, nil
}

// Collection exposes the underlying collection for repository-specific queries.
func (r *GenericRepository[Domain, Entity]) Collection() Collection {
	return r.coll
}

// Insert stores a new document. Unique index violations yield persistence.ErrDuplicateKey.
func (r *GenericRepository[Domain, Entity]) Insert(ctx context.Context, domain *Domain) error {
	if _, err := r.coll.InsertOne(ctx, r.mapper.ToEntity(domain)); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%w: %w", persistence.ErrDuplicateKey, err)
		}
		return fmt.Errorf("failed to insert entity into %s: %w", r.coll.Name(), err)
	}
	return nil
}

// FindOne returns the first document matching filter or persistence.ErrEntityNotFound.
func (r *GenericRepository[Domain, Entity]) FindOne(
	ctx context.Context,
	filter bson.D,
	opts ...options.Lister[options.FindOneOptions],
) (*Domain, error) {
	var entity Entity
	if err := r.coll.FindOne(ctx, filter, opts...).Decode(&entity); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, persistence.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to find entity in %s: %w", r.coll.Name(), err)
	}
	return r.mapper.ToDomain(&entity), nil
}

// Find returns every document matching filter.
func (r *GenericRepository[Domain, Entity]) Find(
	ctx context.Context,
	filter bson.D,
	opts ...options.Lister[options.FindOptions],
) ([]*Domain, error) {
	if filter == nil {
		filter = bson.D{}
	}

	cursor, err := r.coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.coll.Name(), err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var entities []Entity
	if err := cursor.All(ctx, &entities); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.coll.Name(), err)
	}

	domains := make([]*Domain, 0, len(entities))
	for i := range entities {
		domains = append(domains, r.mapper.ToDomain(&entities[i]))
	}
	return domains, nil
}

// UpdateOne applies update to the first document matching filter and returns the matched count.
func (r *GenericRepository[Domain, Entity]) UpdateOne(ctx context.Context, filter bson.D, update any) (int64, error) {
	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return 0, fmt.Errorf("%w: %w", persistence.ErrDuplicateKey, err)
		}
		return 0, fmt.Errorf("failed to update entity in %s: %w", r.coll.Name(), err)
	}
	return res.MatchedCount, nil
}

// DeleteOne removes the first document matching filter. It returns
// persistence.ErrEntityNotFound when nothing was deleted.
func (r *GenericRepository[Domain, Entity]) DeleteOne(ctx context.Context, filter bson.D) error {
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("failed to delete entity from %s: %w", r.coll.Name(), err)
	}
	if res.DeletedCount == 0 {
		return persistence.ErrEntityNotFound
	}
	return nil
}

// Exists reports whether any document matches filter.
func (r *GenericRepository[Domain, Entity]) Exists(ctx context.Context, filter bson.D) (bool, error) {
	count, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to check existence in %s: %w", r.coll.Name(), err)
	}
	return count > 0, nil
}
