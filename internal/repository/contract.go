package repository

import (
	"context"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lookups by id return errs.ErrNotFound when the id is malformed or does not
// resolve to a document.

type CategoryRepository interface {
	AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error)
	GetActiveCategories(ctx context.Context) (data []domain.Category, err error)
	GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error)
	GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Category, err error)
	CategoryNameExists(ctx context.Context, name string) (exists bool, err error)
	UpdateCategory(ctx context.Context, data domain.Category) (err error)
	DeleteCategory(ctx context.Context, id string) (err error)
}

type ProductRepository interface {
	AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error)
	GetProducts(ctx context.Context) (data []domain.Product, err error)
	GetProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	UpdateProduct(ctx context.Context, data domain.Product) (err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}
