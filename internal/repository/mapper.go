package repository

import (
	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/samber/lo"
)

type eventMapper struct{}

func (eventMapper) ToEntity(e *domain.Event) *eventEntity {
	return &eventEntity{
		EventID: e.ID,
		Name:    e.Name,
		EventTypes: lo.Map(e.Types, func(t domain.EventType, _ int) string {
			return string(t)
		}),
		DateOfEvent:  e.Date,
		Location:     e.Location,
		Description:  e.Description,
		ArtistID:     e.ArtistID,
		Participants: toParticipantEntities(e.Participants),
		CreatedAt:    e.CreatedAt,
	}
}

func (eventMapper) ToDomain(e *eventEntity) *domain.Event {
	return &domain.Event{
		ID:   e.EventID,
		Name: e.Name,
		Types: lo.Map(e.EventTypes, func(t string, _ int) domain.EventType {
			return domain.EventType(t)
		}),
		Date:        e.DateOfEvent.UTC(),
		Location:    e.Location,
		Description: e.Description,
		ArtistID:    e.ArtistID,
		Participants: lo.Map(e.Participants, func(p participantEntity, _ int) domain.Participant {
			return domain.Participant{ID: p.ParticipantID, Type: domain.ParticipantType(p.Type)}
		}),
		CreatedAt: e.CreatedAt.UTC(),
	}
}

// toParticipantEntities never returns nil so stored arrays are [] rather than null.
func toParticipantEntities(ps []domain.Participant) []participantEntity {
	out := make([]participantEntity, 0, len(ps))
	for _, p := range ps {
		out = append(out, participantEntity{ParticipantID: p.ID, Type: string(p.Type)})
	}
	return out
}

type artistMapper struct{}

func (artistMapper) ToEntity(a *domain.Artist) *artistEntity {
	return &artistEntity{
		ArtistID:       a.ID,
		Name:           a.Name,
		Email:          a.Email,
		PasswordHash:   a.PasswordHash,
		BusinessName:   a.BusinessName,
		Specialization: lo.Ternary(a.Specialization == nil, []string{}, a.Specialization),
		DateOfBirth:    a.DateOfBirth,
		AboutHimself:   a.About,
		Contact:        contactEntity{Value: a.Contact.Phone, IsVerified: a.Contact.Verified},
		Address:        a.Address,
		City:           a.City,
		State:          a.State,
		Pincode:        a.Pincode,
		Aadhar:         a.Aadhar,
		CreatedAt:      a.CreatedAt,
	}
}

func (artistMapper) ToDomain(e *artistEntity) *domain.Artist {
	return &domain.Artist{
		ID:             e.ArtistID,
		Name:           e.Name,
		Email:          e.Email,
		PasswordHash:   e.PasswordHash,
		BusinessName:   e.BusinessName,
		Specialization: e.Specialization,
		DateOfBirth:    e.DateOfBirth.UTC(),
		About:          e.AboutHimself,
		Contact:        domain.Contact{Phone: e.Contact.Value, Verified: e.Contact.IsVerified},
		Address:        e.Address,
		City:           e.City,
		State:          e.State,
		Pincode:        e.Pincode,
		Aadhar:         e.Aadhar,
		CreatedAt:      e.CreatedAt.UTC(),
	}
}

type productMapper struct{}

func (productMapper) ToEntity(p *domain.Product) *productEntity {
	return &productEntity{
		ProductID:   p.ID,
		Category:    p.Category,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Images:      lo.Ternary(p.Images == nil, []string{}, p.Images),
		Quantity:    p.Quantity,
		ArtistID:    p.ArtistID,
		CreatedAt:   p.CreatedAt,
	}
}

func (productMapper) ToDomain(e *productEntity) *domain.Product {
	return &domain.Product{
		ID:          e.ProductID,
		Category:    e.Category,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		Images:      e.Images,
		Quantity:    e.Quantity,
		ArtistID:    e.ArtistID,
		CreatedAt:   e.CreatedAt.UTC(),
	}
}

func toListing(e *productListingEntity) *domain.ProductListing {
	listing := &domain.ProductListing{Product: *productMapper{}.ToDomain(&e.Product)}
	if e.Artisan != nil {
		listing.ArtistName = e.Artisan.Name
	}
	return listing
}
