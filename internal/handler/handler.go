// Package handler exposes the marketplace services over HTTP.
package handler

import (
	"context"
	"net/http"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

type EventService interface {
	Create(ctx context.Context, in service.CreateEventInput) (*domain.Event, error)
	Delete(ctx context.Context, in service.DeleteEventInput) error
	Update(ctx context.Context, in service.UpdateEventInput) error
	Join(ctx context.Context, in service.JoinEventInput) error
	Get(ctx context.Context, eventID string) (*domain.Event, error)
	List(ctx context.Context, filter domain.EventFilter) ([]*domain.Event, error)
}

type ProductService interface {
	Create(ctx context.Context, in service.CreateProductInput) (*domain.Product, error)
	List(ctx context.Context, filter domain.ProductFilter) ([]*domain.ProductListing, error)
}

type ArtistService interface {
	Create(ctx context.Context, in service.CreateArtistInput) (*domain.Artist, error)
}

type eventHandler struct {
	events EventService
}

func newEventHandler(events EventService) *eventHandler {
	return &eventHandler{events: events}
}

func (h *eventHandler) create(c *gin.Context) {
	var in service.CreateEventInput
	if err := bind(c, &in); err != nil {
		fail(c, err)
		return
	}
	if _, err := h.events.Create(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{Message: "Event created successfully"})
}

func (h *eventHandler) delete(c *gin.Context) {
	var in service.DeleteEventInput
	if err := bind(c, &in); err != nil {
		fail(c, err)
		return
	}
	if err := h.events.Delete(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Event deleted successfully"})
}

func (h *eventHandler) update(c *gin.Context) {
	var in service.UpdateEventInput
	if err := bind(c, &in); err != nil {
		fail(c, err)
		return
	}
	if err := h.events.Update(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Event updated successfully"})
}

func (h *eventHandler) join(c *gin.Context) {
	var in service.JoinEventInput
	if err := bind(c, &in); err != nil {
		fail(c, err)
		return
	}
	if err := h.events.Join(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, messageResponse{Message: "Participant successfully joined the event"})
}

func (h *eventHandler) get(c *gin.Context) {
	event, err := h.events.Get(c.Request.Context(), c.Param("eventid"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toEventResponse(event))
}

func (h *eventHandler) list(c *gin.Context) {
	events, err := h.events.List(c.Request.Context(), domain.EventFilter{ArtistID: c.Query("artist")})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(events, func(e *domain.Event, _ int) eventResponse { return toEventResponse(e) }))
}

type productHandler struct {
	products ProductService
}

func newProductHandler(products ProductService) *productHandler {
	return &productHandler{products: products}
}

func (h *productHandler) create(c *gin.Context) {
	var in service.CreateProductInput
	if err := bind(c, &in); err != nil {
		fail(c, err)
		return
	}
	if _, err := h.products.Create(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{Message: "Product added successfully"})
}

func (h *productHandler) list(c *gin.Context) {
	listings, err := h.products.List(c.Request.Context(), domain.ProductFilter{Category: c.Query("category")})
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, lo.Map(listings, func(l *domain.ProductListing, _ int) productResponse { return toProductResponse(l) }))
}

type artistHandler struct {
	artists ArtistService
}

func newArtistHandler(artists ArtistService) *artistHandler {
	return &artistHandler{artists: artists}
}

func (h *artistHandler) create(c *gin.Context) {
	var in service.CreateArtistInput
	if err := bind(c, &in); err != nil {
		fail(c, err)
		return
	}
	if _, err := h.artists.Create(c.Request.Context(), in); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, messageResponse{Message: "Artisan account added succesfully"})
}
