package repository

import (
	"context"
	"sync"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/domain"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryStore keeps both collections in insertion order behind the same
// repository contracts as the MongoDB implementation.
type MemoryStore struct {
	mu         sync.RWMutex
	categories []domain.Category
	products   []domain.Product
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

type MemoryCategoryRepositoryImpl struct {
	store *MemoryStore
}

func CreateNewMemoryCategoryRepository(store *MemoryStore) CategoryRepository {
	return &MemoryCategoryRepositoryImpl{store: store}
}

func (r *MemoryCategoryRepositoryImpl) AddCategory(ctx context.Context, data domain.Category) (id primitive.ObjectID, err error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	r.store.categories = append(r.store.categories, data)

	return data.ID, nil
}

func (r *MemoryCategoryRepositoryImpl) GetActiveCategories(ctx context.Context) (data []domain.Category, err error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, category := range r.store.categories {
		if category.IsActive {
			data = append(data, category)
		}
	}

	return data, nil
}

func (r *MemoryCategoryRepositoryImpl) GetCategoryByID(ctx context.Context, id string) (category domain.Category, err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return category, errs.ErrNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.categories {
		if c.ID == categoryID {
			return c, nil
		}
	}

	return category, errs.ErrNotFound
}

func (r *MemoryCategoryRepositoryImpl) GetCategoriesByIDs(ctx context.Context, ids []primitive.ObjectID) (data []domain.Category, err error) {
	wanted := make(map[primitive.ObjectID]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.categories {
		if _, ok := wanted[c.ID]; ok {
			data = append(data, c)
		}
	}

	return data, nil
}

func (r *MemoryCategoryRepositoryImpl) CategoryNameExists(ctx context.Context, name string) (exists bool, err error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, c := range r.store.categories {
		if c.Name == name {
			return true, nil
		}
	}

	return false, nil
}

func (r *MemoryCategoryRepositoryImpl) UpdateCategory(ctx context.Context, data domain.Category) (err error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.categories {
		if c.ID == data.ID {
			r.store.categories[i] = data
			return nil
		}
	}

	return errs.ErrNotFound
}

func (r *MemoryCategoryRepositoryImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	categoryID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, c := range r.store.categories {
		if c.ID == categoryID {
			r.store.categories = append(r.store.categories[:i], r.store.categories[i+1:]...)
			return nil
		}
	}

	return errs.ErrNotFound
}

type MemoryProductRepositoryImpl struct {
	store *MemoryStore
}

func CreateNewMemoryProductRepository(store *MemoryStore) ProductRepository {
	return &MemoryProductRepositoryImpl{store: store}
}

func (r *MemoryProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id primitive.ObjectID, err error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if data.ID.IsZero() {
		data.ID = primitive.NewObjectID()
	}
	r.store.products = append(r.store.products, data)

	return data.ID, nil
}

func (r *MemoryProductRepositoryImpl) GetProducts(ctx context.Context) (data []domain.Product, err error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return append(data, r.store.products...), nil
}

func (r *MemoryProductRepositoryImpl) GetProductsByCategory(ctx context.Context, categoryID primitive.ObjectID) (data []domain.Product, err error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.products {
		if p.Category == categoryID {
			data = append(data, p)
		}
	}

	return data, nil
}

func (r *MemoryProductRepositoryImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return product, errs.ErrNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, p := range r.store.products {
		if p.ID == productID {
			return p, nil
		}
	}

	return product, errs.ErrNotFound
}

func (r *MemoryProductRepositoryImpl) UpdateProduct(ctx context.Context, data domain.Product) (err error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.products {
		if p.ID == data.ID {
			r.store.products[i] = data
			return nil
		}
	}

	return errs.ErrNotFound
}

func (r *MemoryProductRepositoryImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return errs.ErrNotFound
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, p := range r.store.products {
		if p.ID == productID {
			r.store.products = append(r.store.products[:i], r.store.products[i+1:]...)
			return nil
		}
	}

	return errs.ErrNotFound
}
