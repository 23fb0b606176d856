package dto

import "strings"

type CategoryRequest struct {
	Name        *string `json:"name" validate:"required,min=1"`
	Description *string `json:"description"`
}

type CategoryUpdateRequest struct {
	ID          string  `json:"-"`
	Name        *string `json:"name" validate:"omitempty,min=1"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"isActive"`
}

func (r *CategoryRequest) Normalize() {
	r.Name = trimmed(r.Name)
	r.Description = trimmed(r.Description)
}

func (r *CategoryUpdateRequest) Normalize() {
	r.Name = trimmed(r.Name)
	r.Description = trimmed(r.Description)
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
