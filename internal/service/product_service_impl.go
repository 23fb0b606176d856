package service

import (
	"context"
	"strings"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/domain"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/dto"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/repository"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceImpl struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	publisher    EventPublisher
	validate     *validator.Validate
}

func CreateProductService(productRepo repository.ProductRepository, categoryRepo repository.CategoryRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		publisher:    publisher,
		validate:     newValidator(),
	}
}

// AddProduct does not check that the referenced category exists.
func (s *ProductServiceImpl) AddProduct(ctx context.Context, req dto.ProductRequest) (product domain.Product, err error) {
	req.Normalize()
	if err = validateRequest(s.validate, req, classifyNewProductField); err != nil {
		return
	}

	categoryID, err := primitive.ObjectIDFromHex(*req.Category)
	if err != nil {
		return product, errs.ErrInvalidCategoryID
	}

	timestamp := now()
	product = domain.Product{
		Name:        *req.Name,
		Description: stringValue(req.Description),
		Image:       stringValue(req.Image),
		Price:       *req.Price,
		Category:    categoryID,
		IsActive:    true,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}

	product.ID, err = s.productRepo.AddProduct(ctx, product)
	if err != nil {
		return domain.Product{}, err
	}

	publishEvent(ctx, s.publisher, dto.EventProductCreated, product.ID.Hex(), product)

	return product, nil
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context) (products []dto.ProductResponse, err error) {
	data, err := s.productRepo.GetProducts(ctx)
	if err != nil {
		return nil, err
	}

	return s.expandCategories(ctx, data)
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product dto.ProductResponse, err error) {
	data, err := s.productRepo.GetProductByID(ctx, id)
	if err != nil {
		return product, notFoundAs(err, errs.ErrProductNotFound)
	}

	expanded, err := s.expandCategories(ctx, []domain.Product{data})
	if err != nil {
		return product, err
	}

	return expanded[0], nil
}

// GetProductsByCategory returns an empty list both when the category has no
// products and when it does not exist.
func (s *ProductServiceImpl) GetProductsByCategory(ctx context.Context, categoryID string) (products []dto.ProductResponse, err error) {
	categoryID = strings.TrimSpace(categoryID)
	if categoryID == "" {
		return nil, errs.ErrCategoryIDRequired
	}

	objectID, err := primitive.ObjectIDFromHex(categoryID)
	if err != nil {
		return []dto.ProductResponse{}, nil
	}

	data, err := s.productRepo.GetProductsByCategory(ctx, objectID)
	if err != nil {
		return nil, err
	}

	return s.expandCategories(ctx, data)
}

func (s *ProductServiceImpl) UpdateProduct(ctx context.Context, req dto.ProductUpdateRequest) (product domain.Product, err error) {
	product, err = s.productRepo.GetProductByID(ctx, req.ID)
	if err != nil {
		return product, notFoundAs(err, errs.ErrProductNotFound)
	}

	req.Normalize()
	if err = validateRequest(s.validate, req, classifyProductUpdateField); err != nil {
		return domain.Product{}, err
	}

	patch := domain.ProductPatch{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		Image:       req.Image,
		IsActive:    req.IsActive,
	}
	if req.Category != nil {
		categoryID, err := primitive.ObjectIDFromHex(*req.Category)
		if err != nil {
			return domain.Product{}, errs.ErrInvalidCategoryID
		}
		patch.Category = &categoryID
	}

	product.Apply(patch)
	product.UpdatedAt = now()

	if err = s.productRepo.UpdateProduct(ctx, product); err != nil {
		return domain.Product{}, notFoundAs(err, errs.ErrProductNotFound)
	}

	publishEvent(ctx, s.publisher, dto.EventProductUpdated, product.ID.Hex(), product)

	return product, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	if err = s.productRepo.DeleteProduct(ctx, id); err != nil {
		return notFoundAs(err, errs.ErrProductNotFound)
	}

	publishEvent(ctx, s.publisher, dto.EventProductDeleted, id, dto.DeletedResource{ID: id})

	return nil
}

// expandCategories replaces each product's category id with {id, name}.
// Products whose category no longer exists get a nil category.
func (s *ProductServiceImpl) expandCategories(ctx context.Context, data []domain.Product) ([]dto.ProductResponse, error) {
	products := make([]dto.ProductResponse, 0, len(data))
	if len(data) == 0 {
		return products, nil
	}

	seen := make(map[primitive.ObjectID]struct{}, len(data))
	ids := make([]primitive.ObjectID, 0, len(data))
	for _, p := range data {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		ids = append(ids, p.Category)
	}

	categories, err := s.categoryRepo.GetCategoriesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make(map[primitive.ObjectID]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	for _, p := range data {
		resp := dto.ProductResponse{
			ID:          p.ID.Hex(),
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Price:       p.Price,
			Quantity:    p.Quantity,
			IsActive:    p.IsActive,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		}
		if name, ok := names[p.Category]; ok {
			resp.Category = &dto.CategoryReference{ID: p.Category.Hex(), Name: name}
		}
		products = append(products, resp)
	}

	return products, nil
}
