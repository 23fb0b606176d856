package response

import (
	"errors"
	"net/http"

	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Errors  interface{} `json:"errors"`
}

// WriteSuccessResponse writes data as the JSON body with the given status.
func WriteSuccessResponse(c echo.Context, statusCode int, data interface{}) error {
	return c.JSON(statusCode, data)
}

func WriteMessageResponse(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, MessageResponse{Message: message})
}

// WriteErrorResponse maps err to its status code. Field errors of an
// errs.ValidationError are reported when details is nil. Server-side failures
// get a generic message so store details do not reach the caller.
func WriteErrorResponse(c echo.Context, err error, details interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = details

	var validationErr *errs.ValidationError
	if details == nil && errors.As(err, &validationErr) {
		resp.Errors = validationErr.Fields
	}

	if !errs.IsClientError(err) {
		log.Ctx(c.Request().Context()).Error().Err(err).Str("component", "WriteErrorResponse").Msg("")
		resp.Message = errs.ErrInternalServer.Error()
		resp.Errors = nil
	}

	return c.JSON(statusCode, resp)
}
