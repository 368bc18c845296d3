package domain

import (
	"slices"
	"time"
)

type EventType string

const (
	EventTypeConference EventType = "conference"
	EventTypeWorkshop   EventType = "workshop"
	EventTypeWebinar    EventType = "webinar"
	EventTypeMeetup     EventType = "meetup"
	EventTypeSeminar    EventType = "seminar"
)

// EventTypes lists every accepted event type.
var EventTypes = []EventType{
	EventTypeConference,
	EventTypeWorkshop,
	EventTypeWebinar,
	EventTypeMeetup,
	EventTypeSeminar,
}

type ParticipantType string

const (
	ParticipantArtisan  ParticipantType = "artisan"
	ParticipantCustomer ParticipantType = "customer"
)

var ParticipantTypes = []ParticipantType{ParticipantArtisan, ParticipantCustomer}

type Participant struct {
	ID   string
	Type ParticipantType
}

type Event struct {
	ID           string
	Name         string
	Types        []EventType
	Date         time.Time
	Location     string
	Description  string
	ArtistID     string
	Participants []Participant
	CreatedAt    time.Time
}

// HasParticipant reports whether id already joined the event.
func (e *Event) HasParticipant(id string) bool {
	return slices.ContainsFunc(e.Participants, func(p Participant) bool {
		return p.ID == id
	})
}

type SelectorKind int

const (
	SelectByID SelectorKind = iota + 1
	SelectByName
)

// EventSelector addresses a single event either by id or by name. Several
// events may share a name; a name selector resolves to the oldest of them.
type EventSelector struct {
	Kind  SelectorKind
	Value string
}

func EventByID(id string) EventSelector {
	return EventSelector{Kind: SelectByID, Value: id}
}

func EventByName(name string) EventSelector {
	return EventSelector{Kind: SelectByName, Value: name}
}

func (s EventSelector) String() string {
	if s.Kind == SelectByName {
		return "name=" + s.Value
	}
	return "eventId=" + s.Value
}

// EventPatch is a partial update. Non-nil scalar fields overwrite the stored
// value; AddParticipants entries are appended only when their id is not
// present yet, existing entries are left untouched.
type EventPatch struct {
	Name            *string
	Types           *[]EventType
	Date            *time.Time
	Location        *string
	Description     *string
	ArtistID        *string
	AddParticipants []Participant
}

// IsEmpty reports whether the patch names no field at all. A non-nil but
// empty AddParticipants still counts as a named field.
func (p EventPatch) IsEmpty() bool {
	return p.Name == nil &&
		p.Types == nil &&
		p.Date == nil &&
		p.Location == nil &&
		p.Description == nil &&
		p.ArtistID == nil &&
		p.AddParticipants == nil
}

// EventFilter narrows event listings. Zero value matches every event.
type EventFilter struct {
	ArtistID string
}
