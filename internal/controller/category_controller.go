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

type CategoryController struct {
	service service.CategoryService
}

func CreateCategoryController(e *echo.Group, service service.CategoryService) {
	c := CategoryController{
		service: service,
	}
	e.GET("/categories", c.GetCategories)
	e.POST("/categories", c.AddCategory)
	e.PUT("/categories/:id", c.UpdateCategory)
	e.DELETE("/categories/:id", c.DeleteCategory)
}

// GetCategories godoc
//
//	@Summary	List active categories
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}		domain.Category
//	@Failure	500	{object}	response.ErrorResponse
//	@Router		/categories [get]
func (c *CategoryController) GetCategories(e echo.Context) error {
	categories, err := c.service.GetCategories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, categories)
}

// AddCategory godoc
//
//	@Summary	Create a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		category	body		dto.CategoryRequest	true	"Category"
//	@Success	201			{object}	domain.Category
//	@Failure	400			{object}	response.ErrorResponse
//	@Failure	500			{object}	response.ErrorResponse
//	@Router		/categories [post]
func (c *CategoryController) AddCategory(e echo.Context) error {
	payload := dto.CategoryRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "AddCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidRequestBody, nil)
	}

	category, err := c.service.AddCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, category)
}

// UpdateCategory godoc
//
//	@Summary	Update a category
//	@Tags		categories
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string						true	"Category ID"
//	@Param		category	body		dto.CategoryUpdateRequest	true	"Fields to change"
//	@Success	200			{object}	domain.Category
//	@Failure	400			{object}	response.ErrorResponse
//	@Failure	404			{object}	response.ErrorResponse
//	@Router		/categories/{id} [put]
func (c *CategoryController) UpdateCategory(e echo.Context) error {
	payload := dto.CategoryUpdateRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Warn().Err(err).Str("component", "UpdateCategory").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidRequestBody, nil)
	}

	payload.ID = e.Param("id")
	category, err := c.service.UpdateCategory(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, category)
}

// DeleteCategory godoc
//
//	@Summary	Delete a category
//	@Tags		categories
//	@Produce	json
//	@Param		id	path		string	true	"Category ID"
//	@Success	200	{object}	response.MessageResponse
//	@Failure	404	{object}	response.ErrorResponse
//	@Router		/categories/{id} [delete]
func (c *CategoryController) DeleteCategory(e echo.Context) error {
	err := c.service.DeleteCategory(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteMessageResponse(e, "Category removed")
}
