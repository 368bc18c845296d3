package repository

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

const (
	eventsCollection   = "events"
	artistsCollection  = "artists"
	productsCollection = "products"
)

type participantEntity struct {
	ParticipantID string `bson:"participantId"`
	Type          string `bson:"type"`
}

type eventEntity struct {
	ObjectID     bson.ObjectID       `bson:"_id,omitempty"`
	EventID      string              `bson:"eventId"`
	Name         string              `bson:"name"`
	EventTypes   []string            `bson:"eventTypes"`
	DateOfEvent  time.Time           `bson:"dateOfEvent"`
	Location     string              `bson:"location"`
	Description  string              `bson:"description"`
	ArtistID     string              `bson:"artistId"`
	Participants []participantEntity `bson:"participants"`
	CreatedAt    time.Time           `bson:"createdAt"`
}

type contactEntity struct {
	Value      string `bson:"value"`
	IsVerified bool   `bson:"isVerified"`
}

type artistEntity struct {
	ObjectID       bson.ObjectID `bson:"_id,omitempty"`
	ArtistID       string        `bson:"artistId"`
	Name           string        `bson:"name"`
	Email          string        `bson:"email"`
	PasswordHash   string        `bson:"passwordHash"`
	BusinessName   string        `bson:"businessName,omitempty"`
	Specialization []string      `bson:"specialization"`
	DateOfBirth    time.Time     `bson:"dob"`
	AboutHimself   string        `bson:"aboutHimself"`
	Contact        contactEntity `bson:"contact"`
	Address        string        `bson:"address"`
	City           string        `bson:"city"`
	State          string        `bson:"state"`
	Pincode        string        `bson:"pincode"`
	Aadhar         string        `bson:"aadhar"`
	CreatedAt      time.Time     `bson:"createdAt"`
}

type productEntity struct {
	ObjectID    bson.ObjectID `bson:"_id,omitempty"`
	ProductID   string        `bson:"productId"`
	Category    string        `bson:"category"`
	Name        string        `bson:"name"`
	Description string        `bson:"description"`
	Price       float64       `bson:"price"`
	Images      []string      `bson:"images"`
	Quantity    int           `bson:"quantity"`
	ArtistID    string        `bson:"artistId"`
	CreatedAt   time.Time     `bson:"createdAt"`
}

type artisanRef struct {
	Name string `bson:"name"`
}

// productListingEntity is a product document joined with its owner.
type productListingEntity struct {
	Product productEntity `bson:",inline"`
	Artisan *artisanRef   `bson:"artisan,omitempty"`
}
