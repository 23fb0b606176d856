package controller

import (
	"net/http"

	"github.com/alimikegami/point-of-sales/catalog-service/internal/dto"
	"github.com/alimikegami/point-of-sales/catalog-service/internal/service"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/alimikegami/point-of-sales/catalog-service/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := ProductController{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.POST("/products", c.AddProduct)
	e.GET("/products/category/", c.GetProductsByCategory)
	e.GET("/products/category/:categoryId", c.GetProductsByCategory)
	e.GET("/products/:id", c.GetProductByID)
	e.PUT("/products/:id", c.UpdateProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
}

// GetProducts godoc
//
//	@Summary	List products
//	@Tags		products
//	@Produce	json
//	@Success	200	{array}		dto.ProductResponse
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/products [get]
func (c *ProductController) GetProducts(e echo.Context) error {
	products, err := c.service.GetProducts(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, products)
}

// GetProductByID godoc
//
//	@Summary	Get a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	dto.ProductResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/products/{id} [get]
func (c *ProductController) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, product)
}

// GetProductsByCategory godoc
//
//	@Summary	List products of a category
//	@Tags		products
//	@Produce	json
//	@Param		categoryId	path		string	true	"Category ID"
//	@Success	200			{array}		dto.ProductResponse
//	@Failure	400			{object}	response.ErrorResponse
//	@Router		/products/category/{categoryId} [get]
func (c *ProductController) GetProductsByCategory(e echo.Context) error {
	products, err := c.service.GetProductsByCategory(e.Request().Context(), e.Param("categoryId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, products)
}

// AddProduct godoc
//
//	@Summary	Create a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		product	body		dto.ProductRequest	true	"Product"
//	@Success	201		{object}	domain.Product
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	500		{object}	response.ErrorResponse
//	@Router		/products [post]
func (c *ProductController) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidRequestBody, nil)
	}

	product, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, product)
}

// UpdateProduct godoc
//
//	@Summary	Update a product
//	@Tags		products
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Product ID"
//	@Param		product	body		dto.ProductUpdateRequest	true	"Fields to change"
//	@Success	200		{object}	domain.Product
//	@Failure	400		{object}	response.ErrorResponse
//	@Failure	404		{object}	response.ErrorResponse
//	@Router		/products/{id} [put]
func (c *ProductController) UpdateProduct(e echo.Context) error {
	payload := dto.ProductUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "UpdateProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidRequestBody, nil)
	}

	payload.ID = e.Param("id")
	product, err := c.service.UpdateProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, product)
}

// DeleteProduct godoc
//
//	@Summary	Delete a product
//	@Tags		products
//	@Produce	json
//	@Param		id	path		string	true	"Product ID"
//	@Success	200	{object}	response.MessageResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/products/{id} [delete]
func (c *ProductController) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteMessageResponse(e, "Product removed")
}
