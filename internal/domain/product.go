package domain

import "time"

type Product struct {
	ID          string
	Category    string
	Name        string
	Description string
	Price       float64
	Images      []string
	Quantity    int
	ArtistID    string
	CreatedAt   time.Time
}

// ProductListing is a product together with its owner's display name.
// ArtistName is empty when the owner no longer exists.
type ProductListing struct {
	Product
	ArtistName string
}

type ProductFilter struct {
	Category string
}
