package dto

type ProductRequest struct {
	Name        *string  `json:"name" validate:"required,min=1"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price" validate:"required"`
	Quantity    *float64 `json:"quantity"`
	Category    *string  `json:"category" validate:"required,min=1"`
}

type ProductUpdateRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Image       *string  `json:"image"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	Category    *string  `json:"category"`
	IsActive    *bool    `json:"isActive"`
}

func (r *ProductRequest) Normalize() {
	r.Name = trimmed(r.Name)
	r.Description = trimmed(r.Description)
	r.Category = trimmed(r.Category)
}

func (r *ProductUpdateRequest) Normalize() {
	r.Name = trimmed(r.Name)
	r.Description = trimmed(r.Description)
	r.Category = trimmed(r.Category)
}
