package domain

import (
	"github.com/google/uuid"
)

type Vendor struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name       string    `json:"name" gorm:"not null"`
	Category   string    `json:"category" gorm:"index"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	PriceRange string    `json:"priceRange"`
	Rating     float64   `json:"rating"`
	Location   string    `json:"location"`
	ImageURL   string    `json:"imageUrl,omitempty"`
}

var VendorCategories = []string{
	"Venue",
	"Catering",
	"Photography",
	"Entertainment",
	"Decoration",
	"Audio/Visual",
	"Transportation",
	"Accommodation",
	"Other",
}
