package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/domain"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/dto"
)

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, key string, data interface{}) error
}

type CategoryService interface {
	AddCategory(ctx context.Context, req dto.CategoryRequest) (category domain.Category, err error)
	GetCategories(ctx context.Context) (categories []domain.Category, err error)
	UpdateCategory(ctx context.Context, req dto.CategoryUpdateRequest) (category domain.Category, err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type ProductService interface {
	AddProduct(ctx context.Context, req dto.ProductRequest) (product domain.Product, err error)
	GetProducts(ctx context.Context) (products []dto.ProductResponse, err error)
	GetProductByID(ctx context.Context, id string) (product dto.ProductResponse, err error)
	GetProductsByCategory(ctx context.Context, categoryID string) (products []dto.ProductResponse, err error)
	UpdateProduct(ctx context.Context, req dto.ProductUpdateRequest) (product domain.Product, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}
