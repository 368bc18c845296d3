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

const eventNotFound = "Event not found"

type EventService struct {
	events  EventStore
	artists ArtistStore
	metrics *Metrics
	now     func() time.Time
	newID   func() string
}

func NewEventService(events EventStore, artists ArtistStore, metrics *Metrics) *EventService {
	return &EventService{
		events:  events,
		artists: artists,
		metrics: metrics,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// Create stores a new event owned by an existing artist.
func (s *EventService) Create(ctx context.Context, in CreateEventInput) (*domain.Event, error) {
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

	event := in.toEvent(s.newID(), s.now())
	if err := s.events.Insert(ctx, event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}

	s.metrics.eventCreated(ctx)
	logger.FromContext(ctx).Info("event created",
		zap.String("event_id", event.ID),
		zap.String("artist_id", event.ArtistID),
		zap.Int("participants", len(event.Participants)),
	)
	return event, nil
}

// Delete removes the event addressed by eventid or name. Nothing else is touched.
func (s *EventService) Delete(ctx context.Context, in DeleteEventInput) error {
	if err := validation.Check(in); err != nil {
		return err
	}

	sel := selectorOf(in.EventID, in.Name)
	if err := s.events.Delete(ctx, sel); err != nil {
		return mapEventError(err, "failed to delete event")
	}

	s.metrics.eventDeleted(ctx)
	logger.FromContext(ctx).Info("event deleted", zap.Stringer("selector", sel))
	return nil
}

// Update overwrites the given scalar fields and merges participants.
func (s *EventService) Update(ctx context.Context, in UpdateEventInput) error {
	if err := validation.Check(in); err != nil {
		return err
	}

	sel := selectorOf(in.EventID, in.Name)
	patch := in.UpdatedData.toPatch()
	if err := s.events.Update(ctx, sel, patch); err != nil {
		return mapEventError(err, "failed to update event")
	}

	s.metrics.eventUpdated(ctx)
	logger.FromContext(ctx).Info("event updated",
		zap.Stringer("selector", sel),
		zap.Int("participants_offered", len(patch.AddParticipants)),
	)
	return nil
}

// Join adds a participant once; a repeated participantId is a conflict.
func (s *EventService) Join(ctx context.Context, in JoinEventInput) error {
	if err := validation.Check(in); err != nil {
		return err
	}

	p := domain.Participant{ID: in.ParticipantID, Type: domain.ParticipantType(in.Type)}
	if err := s.events.AddParticipant(ctx, in.EventID, p); err != nil {
		if errors.Is(err, domain.ErrParticipantExists) {
			return domain.NewConflictError("Participant with ID %s has already joined this event", p.ID)
		}
		return mapEventError(err, "failed to join event")
	}

	s.metrics.participantJoined(ctx, in.Type)
	logger.FromContext(ctx).Info("participant joined event",
		zap.String("event_id", in.EventID),
		zap.String("participant_id", p.ID),
		zap.String("participant_type", in.Type),
	)
	return nil
}

func (s *EventService) Get(ctx context.Context, eventID string) (*domain.Event, error) {
	if err := validation.Check(eventIDInput{EventID: eventID}); err != nil {
		return nil, err
	}

	event, err := s.events.FindOne(ctx, domain.EventByID(eventID))
	if err != nil {
		return nil, mapEventError(err, "failed to get event")
	}
	return event, nil
}

func (s *EventService) List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error) {
	events, err := s.events.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

func mapEventError(err error, msg string) error {
	if errors.Is(err, persistence.ErrEntityNotFound) {
		return domain.NewNotFoundError(eventNotFound)
	}
	return fmt.Errorf("%s: %w", msg, err)
}
