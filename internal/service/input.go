package service

import (
	"errors"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/internal/validation"
	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/samber/lo"
)

// JSON names below are the public wire names and double as violation paths.

type ParticipantInput struct {
	ParticipantID string `json:"participantId"`
	Type          string `json:"type"`
}

func (p ParticipantInput) Validate() error {
	return ozzo.ValidateStruct(&p,
		ozzo.Field(&p.ParticipantID, ozzo.Required.Error("participant id is required")),
		ozzo.Field(&p.Type, ozzo.Required, validation.ParticipantType),
	)
}

func (p ParticipantInput) toDomain() domain.Participant {
	return domain.Participant{ID: p.ParticipantID, Type: domain.ParticipantType(p.Type)}
}

// noDuplicateParticipants rejects repeated participantId values.
var noDuplicateParticipants = ozzo.By(func(value any) error {
	ps, _ := value.([]ParticipantInput)
	dups := lo.FindDuplicatesBy(ps, func(p ParticipantInput) string { return p.ParticipantID })
	if len(dups) > 0 {
		return errors.New("duplicate participantId " + dups[0].ParticipantID)
	}
	return nil
})

type CreateEventInput struct {
	Name         string             `json:"name"`
	EventTypes   []string           `json:"eventtype"`
	DateOfEvent  string             `json:"Dateofevent"`
	Location     string             `json:"location"`
	Description  string             `json:"description"`
	ArtistID     string             `json:"artist"`
	Participants []ParticipantInput `json:"participants"`
}

func (in CreateEventInput) Validate() error {
	return ozzo.ValidateStruct(&in,
		ozzo.Field(&in.Name, ozzo.Required.Error("event name is required")),
		ozzo.Field(&in.EventTypes, ozzo.NotNil.Error("event type is required"), ozzo.Each(validation.EventType)),
		ozzo.Field(&in.DateOfEvent, ozzo.Required.Error("date of event is required"), validation.Date),
		ozzo.Field(&in.Location, ozzo.Required.Error("location is required")),
		ozzo.Field(&in.Description, ozzo.Required.Error("event description is required")),
		ozzo.Field(&in.ArtistID, ozzo.Required.Error("artist id is required")),
		ozzo.Field(&in.Participants, noDuplicateParticipants),
	)
}

// toEvent must only be called on validated input.
func (in CreateEventInput) toEvent(id string, now time.Time) *domain.Event {
	date, _ := validation.ParseDate(in.DateOfEvent)
	return &domain.Event{
		ID:           id,
		Name:         in.Name,
		Types:        toEventTypes(in.EventTypes),
		Date:         date,
		Location:     in.Location,
		Description:  in.Description,
		ArtistID:     in.ArtistID,
		Participants: lo.Map(in.Participants, func(p ParticipantInput, _ int) domain.Participant { return p.toDomain() }),
		CreatedAt:    now,
	}
}

// selectorRule requires eventid unless a name is given. A present eventid
// must be a UUID and takes precedence over name.
func selectorRule(eventID *string, name string) *ozzo.FieldRules {
	return ozzo.Field(eventID,
		ozzo.When(name == "", ozzo.Required.Error("event id or name is required")),
		validation.UUID,
	)
}

func selectorOf(eventID, name string) domain.EventSelector {
	if eventID != "" {
		return domain.EventByID(eventID)
	}
	return domain.EventByName(name)
}

type DeleteEventInput struct {
	EventID string `json:"eventid"`
	Name    string `json:"name"`
}

func (in DeleteEventInput) Validate() error {
	return ozzo.ValidateStruct(&in, selectorRule(&in.EventID, in.Name))
}

// EventPatchInput lists the updatable fields; absent (nil) fields are kept.
type EventPatchInput struct {
	Name         *string            `json:"name"`
	EventTypes   []string           `json:"eventtype"`
	DateOfEvent  *string            `json:"Dateofevent"`
	Location     *string            `json:"location"`
	Description  *string            `json:"description"`
	ArtistID     *string            `json:"artist"`
	Participants []ParticipantInput `json:"participants"`
}

var errEmptyPatch = errors.New("at least one field must be updated")

func (p EventPatchInput) Validate() error {
	if p.isEmpty() {
		return errEmptyPatch
	}
	return ozzo.ValidateStruct(&p,
		ozzo.Field(&p.Name, ozzo.NilOrNotEmpty.Error("event name is required")),
		ozzo.Field(&p.EventTypes, ozzo.Each(validation.EventType)),
		ozzo.Field(&p.DateOfEvent, ozzo.NilOrNotEmpty.Error("date of event is required"), validation.Date),
		ozzo.Field(&p.Location, ozzo.NilOrNotEmpty.Error("location is required")),
		ozzo.Field(&p.Description, ozzo.NilOrNotEmpty.Error("event description is required")),
		ozzo.Field(&p.ArtistID, ozzo.NilOrNotEmpty.Error("artist id is required")),
		ozzo.Field(&p.Participants),
	)
}

func (p EventPatchInput) isEmpty() bool {
	return p.Name == nil && p.EventTypes == nil && p.DateOfEvent == nil && p.Location == nil &&
		p.Description == nil && p.ArtistID == nil && p.Participants == nil
}

// toPatch must only be called on validated input. Repeated participant ids
// inside the patch collapse to their first occurrence.
func (p EventPatchInput) toPatch() domain.EventPatch {
	patch := domain.EventPatch{
		Name:        p.Name,
		Location:    p.Location,
		Description: p.Description,
		ArtistID:    p.ArtistID,
	}
	if p.EventTypes != nil {
		types := toEventTypes(p.EventTypes)
		patch.Types = &types
	}
	if p.DateOfEvent != nil {
		date, _ := validation.ParseDate(*p.DateOfEvent)
		patch.Date = &date
	}
	if p.Participants != nil {
		unique := lo.UniqBy(p.Participants, func(in ParticipantInput) string { return in.ParticipantID })
		patch.AddParticipants = lo.Map(unique, func(in ParticipantInput, _ int) domain.Participant { return in.toDomain() })
	}
	return patch
}

type UpdateEventInput struct {
	EventID     string           `json:"eventid"`
	Name        string           `json:"name"`
	UpdatedData *EventPatchInput `json:"updatedData"`
}

func (in UpdateEventInput) Validate() error {
	return ozzo.ValidateStruct(&in,
		selectorRule(&in.EventID, in.Name),
		ozzo.Field(&in.UpdatedData, ozzo.NotNil.Error("updatedData is required")),
	)
}

type JoinEventInput struct {
	EventID       string `json:"eventid"`
	ParticipantID string `json:"participantId"`
	Type          string `json:"type"`
}

func (in JoinEventInput) Validate() error {
	return ozzo.ValidateStruct(&in,
		ozzo.Field(&in.EventID, ozzo.Required.Error("event id is required"), validation.UUID),
		ozzo.Field(&in.ParticipantID, ozzo.Required.Error("participant id is required")),
		ozzo.Field(&in.Type, ozzo.Required, validation.ParticipantType),
	)
}

type eventIDInput struct {
	EventID string `json:"eventid"`
}

func (in eventIDInput) Validate() error {
	return ozzo.ValidateStruct(&in,
		ozzo.Field(&in.EventID, ozzo.Required.Error("event id is required"), validation.UUID),
	)
}

type CreateProductInput struct {
	Category    string   `json:"category"`
	Name        string   `json:"name"`
	Price       *float64 `json:"price"`
	Description string   `json:"description"`
	Quantity    *int     `json:"quantity"`
	ArtistID    string   `json:"artist"`
	Images      []string `json:"images"`
}

func (in CreateProductInput) Validate() error {
	return ozzo.ValidateStruct(&in,
		ozzo.Field(&in.Category, ozzo.Required.Error("category is required")),
		ozzo.Field(&in.Name, ozzo.Required.Error("name is required")),
		ozzo.Field(&in.Price,
			ozzo.NotNil.Error("price is required"),
			ozzo.Min(0.0).Error("price must be a non-negative number"),
		),
		ozzo.Field(&in.Description, ozzo.Required.Error("description is required")),
		ozzo.Field(&in.Quantity,
			ozzo.NotNil.Error("quantity is required"),
			ozzo.Min(0).Error("quantity must be a non-negative integer"),
		),
		ozzo.Field(&in.ArtistID, ozzo.Required.Error("artisan id is required")),
		ozzo.Field(&in.Images, ozzo.Each(ozzo.Required, validation.URL)),
	)
}

func (in CreateProductInput) toProduct(id string, now time.Time) *domain.Product {
	return &domain.Product{
		ID:          id,
		Category:    in.Category,
		Name:        in.Name,
		Description: in.Description,
		Price:       lo.FromPtr(in.Price),
		Images:      in.Images,
		Quantity:    lo.FromPtr(in.Quantity),
		ArtistID:    in.ArtistID,
		CreatedAt:   now,
	}
}

type ContactInput struct {
	Value      string `json:"value"`
	IsVerified bool   `json:"isVerified"`
}

func (c ContactInput) Validate() error {
	return ozzo.ValidateStruct(&c,
		ozzo.Field(&c.Value, ozzo.Required.Error("phone number is required"), validation.Phone),
	)
}

type CreateArtistInput struct {
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	Password       string       `json:"password"`
	BusinessName   string       `json:"businessName"`
	Specialization []string     `json:"specialization"`
	DOB            string       `json:"DOB"`
	AboutHimself   string       `json:"AboutHimself"`
	Contact        ContactInput `json:"contact"`
	Address        string       `json:"address"`
	City           string       `json:"city"`
	State          string       `json:"state"`
	Pincode        string       `json:"pincode"`
	Aadhar         string       `json:"aadhar"`
}

func (in CreateArtistInput) Validate() error {
	return ozzo.ValidateStruct(&in,
		ozzo.Field(&in.Name, ozzo.Required.Error("name is required")),
		ozzo.Field(&in.Email, ozzo.Required.Error("email is required"), validation.Email),
		ozzo.Field(&in.Password, ozzo.Required.Error("password is required"), validation.Password),
		ozzo.Field(&in.DOB, ozzo.Required.Error("date of birth is required"), validation.Date),
		ozzo.Field(&in.AboutHimself, ozzo.Required.Error("about himself is required")),
		ozzo.Field(&in.Contact),
		ozzo.Field(&in.Address, ozzo.Required.Error("address is required")),
		ozzo.Field(&in.City, ozzo.Required.Error("city is required")),
		ozzo.Field(&in.State, ozzo.Required.Error("state is required")),
		ozzo.Field(&in.Pincode, ozzo.Required.Error("pincode is required"), validation.Pincode),
		ozzo.Field(&in.Aadhar, ozzo.Required.Error("aadhar is required"), validation.Aadhar),
	)
}

func (in CreateArtistInput) toArtist(id, passwordHash string, now time.Time) *domain.Artist {
	dob, _ := validation.ParseDate(in.DOB)
	return &domain.Artist{
		ID:             id,
		Name:           in.Name,
		Email:          in.Email,
		PasswordHash:   passwordHash,
		BusinessName:   in.BusinessName,
		Specialization: in.Specialization,
		DateOfBirth:    dob,
		About:          in.AboutHimself,
		Contact:        domain.Contact{Phone: in.Contact.Value, Verified: in.Contact.IsVerified},
		Address:        in.Address,
		City:           in.City,
		State:          in.State,
		Pincode:        in.Pincode,
		Aadhar:         in.Aadhar,
		CreatedAt:      now,
	}
}

// toEventTypes keeps the first occurrence of every tag.
func toEventTypes(in []string) []domain.EventType {
	return lo.Map(lo.Uniq(in), func(t string, _ int) domain.EventType { return domain.EventType(t) })
}
