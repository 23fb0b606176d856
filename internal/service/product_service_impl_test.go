package service

import (
	"context"
	"strings"
	"testing"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/domain"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/dto"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/repository"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductServiceSuite struct {
	suite.Suite
	ctx             context.Context
	productRepo     repository.ProductRepository
	publisher       *fakePublisher
	categoryService CategoryService
	service         ProductService
	category        domain.Category
}

func (s *ProductServiceSuite) SetupTest() {
	s.ctx = context.Background()
	store := repository.NewMemoryStore()
	categoryRepo := repository.CreateNewMemoryCategoryRepository(store)
	s.productRepo = repository.CreateNewMemoryProductRepository(store)
	s.publisher = &fakePublisher{}
	s.categoryService = CreateCategoryService(categoryRepo, s.publisher)
	s.service = CreateProductService(s.productRepo, categoryRepo, s.publisher)

	category, err := s.categoryService.AddCategory(s.ctx, dto.CategoryRequest{Name: ptr("Pakan")})
	s.Require().NoError(err)
	s.category = category
	s.publisher.events = nil
}

func (s *ProductServiceSuite) newProduct(name string) domain.Product {
	product, err := s.service.AddProduct(s.ctx, dto.ProductRequest{
		Name:     ptr(name),
		Price:    ptr(18000.0),
		Category: ptr(s.category.ID.Hex()),
	})
	s.Require().NoError(err)
	return product
}

func (s *ProductServiceSuite) TestAddProductDefaults() {
	product, err := s.service.AddProduct(s.ctx, dto.ProductRequest{
		Name:     ptr(" Dry feed "),
		Price:    ptr(18000.0),
		Category: ptr(s.category.ID.Hex()),
	})
	s.Require().NoError(err)

	s.False(product.ID.IsZero())
	s.Equal("Dry feed", product.Name)
	s.Equal(float64(0), product.Quantity)
	s.Equal("", product.Image)
	s.True(product.IsActive)
	s.Equal(s.category.ID, product.Category)
	s.Equal([]string{dto.EventProductCreated}, s.publisher.types())
}

func (s *ProductServiceSuite) TestAddProductZeroPriceAllowed() {
	product, err := s.service.AddProduct(s.ctx, dto.ProductRequest{
		Name:     ptr("Sample"),
		Price:    ptr(0.0),
		Quantity: ptr(3.0),
		Image:    ptr("https://cdn.example.com/sample.png"),
		Category: ptr(s.category.ID.Hex()),
	})
	s.Require().NoError(err)
	s.Equal(float64(0), product.Price)
	s.Equal(float64(3), product.Quantity)
	s.Equal("https://cdn.example.com/sample.png", product.Image)
}

func (s *ProductServiceSuite) TestAddProductValidation() {
	categoryID := s.category.ID.Hex()

	testCases := []struct {
		name string
		req  dto.ProductRequest
		err  error
	}{
		{name: "missing price", req: dto.ProductRequest{Name: ptr("Feed"), Category: ptr(categoryID)}, err: errs.ErrProductFieldsRequired},
		{name: "missing name", req: dto.ProductRequest{Price: ptr(1.0), Category: ptr(categoryID)}, err: errs.ErrProductFieldsRequired},
		{name: "blank name", req: dto.ProductRequest{Name: ptr("  "), Price: ptr(1.0), Category: ptr(categoryID)}, err: errs.ErrProductFieldsRequired},
		{name: "missing category", req: dto.ProductRequest{Name: ptr("Feed"), Price: ptr(1.0)}, err: errs.ErrProductFieldsRequired},
		{name: "malformed category", req: dto.ProductRequest{Name: ptr("Feed"), Price: ptr(1.0), Category: ptr("abc")}, err: errs.ErrInvalidCategoryID},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.AddProduct(s.ctx, tc.req)
			s.ErrorIs(err, tc.err)
			s.Equal(errs.ErrStatusClient, errs.GetErrorStatusCode(err))
		})
	}

	products, err := s.service.GetProducts(s.ctx)
	s.Require().NoError(err)
	s.Empty(products)
}

func (s *ProductServiceSuite) TestGetProductsExpandsCategory() {
	product := s.newProduct("Dry feed")
	orphan, err := s.service.AddProduct(s.ctx, dto.ProductRequest{
		Name:     ptr("Orphan"),
		Price:    ptr(1.0),
		Category: ptr(primitive.NewObjectID().Hex()),
	})
	s.Require().NoError(err)

	products, err := s.service.GetProducts(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(products, 2)

	s.Equal(product.ID.Hex(), products[0].ID)
	s.Require().NotNil(products[0].Category)
	s.Equal(dto.CategoryReference{ID: s.category.ID.Hex(), Name: "Pakan"}, *products[0].Category)

	s.Equal(orphan.ID.Hex(), products[1].ID)
	s.Nil(products[1].Category)
}

func (s *ProductServiceSuite) TestGetProductByID() {
	product := s.newProduct("Dry feed")

	found, err := s.service.GetProductByID(s.ctx, product.ID.Hex())
	s.Require().NoError(err)
	s.Equal("Dry feed", found.Name)
	s.Require().NotNil(found.Category)
	s.Equal("Pakan", found.Category.Name)

	_, err = s.service.GetProductByID(s.ctx, primitive.NewObjectID().Hex())
	s.ErrorIs(err, errs.ErrProductNotFound)

	_, err = s.service.GetProductByID(s.ctx, "malformed")
	s.ErrorIs(err, errs.ErrProductNotFound)
}

func (s *ProductServiceSuite) TestGetProductsByCategory() {
	product := s.newProduct("Dry feed")

	products, err := s.service.GetProductsByCategory(s.ctx, s.category.ID.Hex())
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal(product.ID.Hex(), products[0].ID)

	products, err = s.service.GetProductsByCategory(s.ctx, primitive.NewObjectID().Hex())
	s.Require().NoError(err)
	s.NotNil(products)
	s.Empty(products)

	products, err = s.service.GetProductsByCategory(s.ctx, "malformed")
	s.Require().NoError(err)
	s.NotNil(products)
	s.Empty(products)

	_, err = s.service.GetProductsByCategory(s.ctx, "  ")
	s.ErrorIs(err, errs.ErrCategoryIDRequired)
}

func (s *ProductServiceSuite) TestUpdateProductChangesOnlyGivenFields() {
	product := s.newProduct("Dry feed")

	updated, err := s.service.UpdateProduct(s.ctx, dto.ProductUpdateRequest{ID: product.ID.Hex(), Price: ptr(21000.0)})
	s.Require().NoError(err)
	s.Equal(21000.0, updated.Price)

	found, err := s.service.GetProductByID(s.ctx, product.ID.Hex())
	s.Require().NoError(err)
	s.Equal(21000.0, found.Price)
	s.Equal(product.Name, found.Name)
	s.Equal(product.Quantity, found.Quantity)
	s.Equal(product.Image, found.Image)
	s.Equal(product.IsActive, found.IsActive)
	s.Equal(product.CreatedAt, found.CreatedAt)
	s.Equal(s.category.ID.Hex(), found.Category.ID)
	s.Equal([]string{dto.EventProductCreated, dto.EventProductUpdated}, s.publisher.types())
}

func (s *ProductServiceSuite) TestCategoryIDIsCaseInsensitive() {
	upper := strings.ToUpper(s.category.ID.Hex())

	product, err := s.service.AddProduct(s.ctx, dto.ProductRequest{
		Name:     ptr("Bran"),
		Price:    ptr(2500.0),
		Category: ptr(upper),
	})
	s.Require().NoError(err)
	s.Equal(s.category.ID, product.Category)

	updated, err := s.service.UpdateProduct(s.ctx, dto.ProductUpdateRequest{ID: product.ID.Hex(), Category: ptr(" " + upper + " ")})
	s.Require().NoError(err)
	s.Equal(s.category.ID, updated.Category)

	products, err := s.service.GetProductsByCategory(s.ctx, upper)
	s.Require().NoError(err)
	s.Require().Len(products, 1)
	s.Equal("Pakan", products[0].Category.Name)
}

func (s *ProductServiceSuite) TestUpdateProductMovesCategory() {
	product := s.newProduct("Dry feed")
	other, err := s.categoryService.AddCategory(s.ctx, dto.CategoryRequest{Name: ptr("Semen")})
	s.Require().NoError(err)

	updated, err := s.service.UpdateProduct(s.ctx, dto.ProductUpdateRequest{ID: product.ID.Hex(), Category: ptr(other.ID.Hex())})
	s.Require().NoError(err)
	s.Equal(other.ID, updated.Category)

	products, err := s.service.GetProductsByCategory(s.ctx, s.category.ID.Hex())
	s.Require().NoError(err)
	s.Empty(products)
}

func (s *ProductServiceSuite) TestUpdateProductErrors() {
	product := s.newProduct("Dry feed")

	testCases := []struct {
		name string
		req  dto.ProductUpdateRequest
		err  error
	}{
		{name: "unknown id", req: dto.ProductUpdateRequest{ID: primitive.NewObjectID().Hex(), Price: ptr(1.0)}, err: errs.ErrProductNotFound},
		{name: "malformed id", req: dto.ProductUpdateRequest{ID: "123", Price: ptr(1.0)}, err: errs.ErrProductNotFound},
		{name: "blank name", req: dto.ProductUpdateRequest{ID: product.ID.Hex(), Name: ptr("")}, err: errs.ErrProductNameRequired},
		{name: "malformed category", req: dto.ProductUpdateRequest{ID: product.ID.Hex(), Category: ptr("xyz")}, err: errs.ErrInvalidCategoryID},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.service.UpdateProduct(s.ctx, tc.req)
			s.ErrorIs(err, tc.err)
		})
	}
}

func (s *ProductServiceSuite) TestDeleteProduct() {
	product := s.newProduct("Dry feed")

	s.Require().NoError(s.service.DeleteProduct(s.ctx, product.ID.Hex()))
	s.ErrorIs(s.service.DeleteProduct(s.ctx, product.ID.Hex()), errs.ErrProductNotFound)
	s.ErrorIs(s.service.DeleteProduct(s.ctx, "bad"), errs.ErrProductNotFound)
	s.Equal([]string{dto.EventProductCreated, dto.EventProductDeleted}, s.publisher.types())
}

func (s *ProductServiceSuite) TestDeletingCategoryKeepsProducts() {
	product := s.newProduct("Dry feed")

	s.Require().NoError(s.categoryService.DeleteCategory(s.ctx, s.category.ID.Hex()))

	found, err := s.service.GetProductByID(s.ctx, product.ID.Hex())
	s.Require().NoError(err)
	s.Nil(found.Category)

	stored, err := s.productRepo.GetProductByID(s.ctx, product.ID.Hex())
	s.Require().NoError(err)
	s.Equal(s.category.ID, stored.Category)
}

func TestProductService(t *testing.T) {
	suite.Run(t, new(ProductServiceSuite))
}
