package repository

import (
	"context"
	"testing"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/domain"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMemoryCategoryRepository(t *testing.T) {
	ctx := context.Background()
	repo := CreateNewMemoryCategoryRepository(NewMemoryStore())

	activeID, err := repo.AddCategory(ctx, domain.Category{Name: "Feed", IsActive: true})
	require.NoError(t, err)
	_, err = repo.AddCategory(ctx, domain.Category{Name: "Archived", IsActive: false})
	require.NoError(t, err)

	active, err := repo.GetActiveCategories(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, activeID, active[0].ID)

	exists, err := repo.CategoryNameExists(ctx, "Archived")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.CategoryNameExists(ctx, "feed")
	require.NoError(t, err)
	assert.False(t, exists, "name lookup is case-sensitive")

	require.NoError(t, repo.DeleteCategory(ctx, activeID.Hex()))
	_, err = repo.GetCategoryByID(ctx, activeID.Hex())
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.ErrorIs(t, repo.DeleteCategory(ctx, activeID.Hex()), errs.ErrNotFound)
}

func TestMemoryProductRepository(t *testing.T) {
	ctx := context.Background()
	repo := CreateNewMemoryProductRepository(NewMemoryStore())
	categoryID := primitive.NewObjectID()

	id, err := repo.AddProduct(ctx, domain.Product{Name: "Dry feed", Price: 18000, Category: categoryID})
	require.NoError(t, err)
	_, err = repo.AddProduct(ctx, domain.Product{Name: "Cement", Price: 5000, Category: primitive.NewObjectID()})
	require.NoError(t, err)

	byCategory, err := repo.GetProductsByCategory(ctx, categoryID)
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, id, byCategory[0].ID)

	product, err := repo.GetProductByID(ctx, id.Hex())
	require.NoError(t, err)
	product.Price = 19000
	require.NoError(t, repo.UpdateProduct(ctx, product))

	product, err = repo.GetProductByID(ctx, id.Hex())
	require.NoError(t, err)
	assert.Equal(t, 19000.0, product.Price)

	assert.ErrorIs(t, repo.UpdateProduct(ctx, domain.Product{ID: primitive.NewObjectID()}), errs.ErrNotFound)
	_, err = repo.GetProductByID(ctx, "zzz")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
