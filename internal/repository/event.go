package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence"
	"github.com/Sokol111/ecommerce-marketplace/pkg/persistence/mongo"
	"go.mongodb.org/mongo-driver/v2/bson"
	mongodriver "go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// oldestFirst orders events sharing a name deterministically.
var oldestFirst = bson.D{{Key: "createdAt", Value: 1}, {Key: "_id", Value: 1}}

type EventRepository struct {
	*mongo.GenericRepository[domain.Event, eventEntity]
}

func NewEventRepository(m mongo.Mongo) (*EventRepository, error) {
	return newEventRepository(m.GetCollection(eventsCollection))
}

func newEventRepository(coll mongo.Collection) (*EventRepository, error) {
	generic, err := mongo.NewGenericRepository[domain.Event, eventEntity](coll, eventMapper{})
	if err != nil {
		return nil, err
	}
	return &EventRepository{GenericRepository: generic}, nil
}

// FindOne returns the selected event or persistence.ErrEntityNotFound.
func (r *EventRepository) FindOne(ctx context.Context, sel domain.EventSelector) (*domain.Event, error) {
	if sel.Kind == domain.SelectByName {
		return r.GenericRepository.FindOne(ctx, bson.D{{Key: "name", Value: sel.Value}},
			options.FindOne().SetSort(oldestFirst))
	}
	return r.GenericRepository.FindOne(ctx, byEventID(sel.Value))
}

// List returns events oldest first, optionally restricted to one artist.
func (r *EventRepository) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	query := bson.D{}
	if filter.ArtistID != "" {
		query = append(query, bson.E{Key: "artistId", Value: filter.ArtistID})
	}
	return r.Find(ctx, query, options.Find().SetSort(oldestFirst))
}

// Delete removes the selected event. Related artists and products are untouched.
func (r *EventRepository) Delete(ctx context.Context, sel domain.EventSelector) error {
	target, err := r.resolve(ctx, sel)
	if err != nil {
		return err
	}
	return r.DeleteOne(ctx, target)
}

// Update applies patch to the selected event in a single pipeline update.
// Scalar fields are overwritten. New participants are appended server side
// only when their id is not stored yet, so concurrent joins are never lost
// or duplicated.
func (r *EventRepository) Update(ctx context.Context, sel domain.EventSelector, patch domain.EventPatch) error {
	target, err := r.resolve(ctx, sel)
	if err != nil {
		return err
	}

	set := patchStage(patch)
	if len(set) == 0 {
		// Only an empty participant list was given; nothing to write.
		exists, err := r.Exists(ctx, target)
		if err != nil {
			return err
		}
		if !exists {
			return persistence.ErrEntityNotFound
		}
		return nil
	}

	matched, err := r.UpdateOne(ctx, target, mongodriver.Pipeline{{{Key: "$set", Value: set}}})
	if err != nil {
		return err
	}
	if matched == 0 {
		return persistence.ErrEntityNotFound
	}
	return nil
}

// AddParticipant appends p unless an entry with the same id exists. It returns
// persistence.ErrEntityNotFound for an unknown event and
// domain.ErrParticipantExists for a repeated id.
func (r *EventRepository) AddParticipant(ctx context.Context, eventID string, p domain.Participant) error {
	filter := bson.D{
		{Key: "eventId", Value: eventID},
		{Key: "participants.participantId", Value: bson.D{{Key: "$ne", Value: p.ID}}},
	}
	update := bson.D{{Key: "$push", Value: bson.D{
		{Key: "participants", Value: participantEntity{ParticipantID: p.ID, Type: string(p.Type)}},
	}}}

	matched, err := r.UpdateOne(ctx, filter, update)
	if err != nil {
		return err
	}
	if matched > 0 {
		return nil
	}

	exists, err := r.Exists(ctx, byEventID(eventID))
	if err != nil {
		return err
	}
	if !exists {
		return persistence.ErrEntityNotFound
	}
	return domain.ErrParticipantExists
}

// resolve turns a selector into a filter matching exactly one document.
func (r *EventRepository) resolve(ctx context.Context, sel domain.EventSelector) (bson.D, error) {
	if sel.Kind != domain.SelectByName {
		return byEventID(sel.Value), nil
	}

	var found struct {
		ObjectID bson.ObjectID `bson:"_id"`
	}
	err := r.Collection().FindOne(ctx, bson.D{{Key: "name", Value: sel.Value}},
		options.FindOne().SetSort(oldestFirst).SetProjection(bson.D{{Key: "_id", Value: 1}}),
	).Decode(&found)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, persistence.ErrEntityNotFound
		}
		return nil, fmt.Errorf("failed to resolve event by name: %w", err)
	}
	return bson.D{{Key: "_id", Value: found.ObjectID}}, nil
}

func byEventID(id string) bson.D {
	return bson.D{{Key: "eventId", Value: id}}
}

// patchStage builds the $set stage. Values are wrapped in $literal because
// pipeline stages would read strings starting with "$" as field paths.
func patchStage(patch domain.EventPatch) bson.D {
	set := bson.D{}
	setLiteral := func(key string, value any) {
		set = append(set, bson.E{Key: key, Value: bson.D{{Key: "$literal", Value: value}}})
	}

	if patch.Name != nil {
		setLiteral("name", *patch.Name)
	}
	if patch.Types != nil {
		types := make([]string, 0, len(*patch.Types))
		for _, t := range *patch.Types {
			types = append(types, string(t))
		}
		setLiteral("eventTypes", types)
	}
	if patch.Date != nil {
		setLiteral("dateOfEvent", *patch.Date)
	}
	if patch.Location != nil {
		setLiteral("location", *patch.Location)
	}
	if patch.Description != nil {
		setLiteral("description", *patch.Description)
	}
	if patch.ArtistID != nil {
		setLiteral("artistId", *patch.ArtistID)
	}
	if len(patch.AddParticipants) > 0 {
		set = append(set, bson.E{Key: "participants", Value: mergeParticipants(patch.AddParticipants)})
	}
	return set
}

// mergeParticipants appends candidates whose participantId is not stored yet.
func mergeParticipants(candidates []domain.Participant) bson.D {
	stored := bson.D{{Key: "$ifNull", Value: bson.A{"$participants", bson.A{}}}}
	storedIDs := bson.D{{Key: "$ifNull", Value: bson.A{"$participants.participantId", bson.A{}}}}

	return bson.D{{Key: "$concatArrays", Value: bson.A{
		stored,
		bson.D{{Key: "$filter", Value: bson.D{
			{Key: "input", Value: bson.D{{Key: "$literal", Value: toParticipantEntities(candidates)}}},
			{Key: "as", Value: "candidate"},
			{Key: "cond", Value: bson.D{{Key: "$not", Value: bson.A{
				bson.D{{Key: "$in", Value: bson.A{"$$candidate.participantId", storedIDs}}},
			}}}},
		}}},
	}}}
}
