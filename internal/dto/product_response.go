package dto

import "time"

// CategoryReference is the expanded form of a product's category.
type CategoryReference struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Image       string             `json:"image"`
	Price       float64            `json:"price"`
	Quantity    float64            `json:"quantity"`
	Category    *CategoryReference `json:"category"`
	IsActive    bool               `json:"isActive"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}
