package handler

import (
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/internal/validation"
	"github.com/samber/lo"
)

type messageResponse struct {
	Message string `json:"message"`
}

type participantResponse struct {
	ParticipantID string `json:"participantId"`
	Type          string `json:"type"`
}

type eventResponse struct {
	EventID      string                `json:"eventId"`
	Name         string                `json:"name"`
	EventTypes   []string              `json:"eventTypes"`
	DateOfEvent  string                `json:"dateOfEvent"`
	Location     string                `json:"location"`
	Description  string                `json:"description"`
	ArtistID     string                `json:"artistId"`
	Participants []participantResponse `json:"participants"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func toEventResponse(e *domain.Event) eventResponse {
	return eventResponse{
		EventID:     e.ID,
		Name:        e.Name,
		EventTypes:  lo.Map(e.Types, func(t domain.EventType, _ int) string { return string(t) }),
		DateOfEvent: validation.FormatDate(e.Date),
		Location:    e.Location,
		Description: e.Description,
		ArtistID:    e.ArtistID,
		Participants: lo.Map(e.Participants, func(p domain.Participant, _ int) participantResponse {
			return participantResponse{ParticipantID: p.ID, Type: string(p.Type)}
		}),
		CreatedAt: e.CreatedAt,
	}
}

type artisanResponse struct {
	Name string `json:"name"`
}

type productResponse struct {
	ProductID   string           `json:"productId"`
	Category    string           `json:"category"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       float64          `json:"price"`
	Images      []string         `json:"images"`
	Quantity    int              `json:"quantity"`
	ArtistID    string           `json:"artistId"`
	Artisan     *artisanResponse `json:"artisan,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func toProductResponse(l *domain.ProductListing) productResponse {
	resp := productResponse{
		ProductID:   l.ID,
		Category:    l.Category,
		Name:        l.Name,
		Description: l.Description,
		Price:       l.Price,
		Images:      lo.Ternary(l.Images == nil, []string{}, l.Images),
		Quantity:    l.Quantity,
		ArtistID:    l.ArtistID,
		CreatedAt:   l.CreatedAt,
	}
	if l.ArtistName != "" {
		resp.Artisan = &artisanResponse{Name: l.ArtistName}
	}
	return resp
}
