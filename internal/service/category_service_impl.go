package service

import (
	"context"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/domain"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/dto"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/repository"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/go-playground/validator/v10"
)

type CategoryServiceImpl struct {
	repo      repository.CategoryRepository
	publisher EventPublisher
	validate  *validator.Validate
}

func CreateCategoryService(repo repository.CategoryRepository, publisher EventPublisher) CategoryService {
	return &CategoryServiceImpl{repo: repo, publisher: publisher, validate: newValidator()}
}

// AddCategory rejects a name already used by any category, active or not.
// The check and the insert are separate round trips, so two concurrent
// requests with the same name can both succeed.
func (s *CategoryServiceImpl) AddCategory(ctx context.Context, req dto.CategoryRequest) (category domain.Category, err error) {
	req.Normalize()
	if err = validateRequest(s.validate, req, classifyCategoryField); err != nil {
		return
	}

	exists, err := s.repo.CategoryNameExists(ctx, *req.Name)
	if err != nil {
		return
	}

	if exists {
		return category, errs.ErrCategoryAlreadyExists
	}

	timestamp := now()
	category = domain.Category{
		Name:        *req.Name,
		Description: stringValue(req.Description),
		IsActive:    true,
		CreatedAt:   timestamp,
		UpdatedAt:   timestamp,
	}

	category.ID, err = s.repo.AddCategory(ctx, category)
	if err != nil {
		return domain.Category{}, err
	}

	publishEvent(ctx, s.publisher, dto.EventCategoryCreated, category.ID.Hex(), category)

	return category, nil
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) (categories []domain.Category, err error) {
	categories, err = s.repo.GetActiveCategories(ctx)
	if err != nil {
		return nil, err
	}

	if categories == nil {
		categories = []domain.Category{}
	}

	return categories, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, req dto.CategoryUpdateRequest) (category domain.Category, err error) {
	category, err = s.repo.GetCategoryByID(ctx, req.ID)
	if err != nil {
		return category, notFoundAs(err, errs.ErrCategoryNotFound)
	}

	req.Normalize()
	if err = validateRequest(s.validate, req, classifyCategoryField); err != nil {
		return domain.Category{}, err
	}

	category.Apply(domain.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	category.UpdatedAt = now()

	if err = s.repo.UpdateCategory(ctx, category); err != nil {
		return domain.Category{}, notFoundAs(err, errs.ErrCategoryNotFound)
	}

	publishEvent(ctx, s.publisher, dto.EventCategoryUpdated, category.ID.Hex(), category)

	return category, nil
}

// DeleteCategory leaves products that reference the category untouched.
func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id string) (err error) {
	if err = s.repo.DeleteCategory(ctx, id); err != nil {
		return notFoundAs(err, errs.ErrCategoryNotFound)
	}

	publishEvent(ctx, s.publisher, dto.EventCategoryDeleted, id, dto.DeletedResource{ID: id})

	return nil
}
