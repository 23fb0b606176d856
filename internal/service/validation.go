package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/alimikegami/point-of-sales/catalog-service/pkg/errs"
	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs the struct tags of req and reports failures as an
// errs.ValidationError. classify picks the sentinel for the first failing field.
func validateRequest(v *validator.Validate, req interface{}, classify func(validator.FieldError) error) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	fields := make([]errs.FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, errs.FieldError{Field: fe.Field(), Tag: fe.Tag()})
	}

	return &errs.ValidationError{Err: classify(fieldErrs[0]), Fields: fields}
}

func classifyCategoryField(fe validator.FieldError) error {
	return errs.ErrCategoryNameRequired
}

func classifyNewProductField(fe validator.FieldError) error {
	return errs.ErrProductFieldsRequired
}

func classifyProductUpdateField(fe validator.FieldError) error {
	return errs.ErrProductNameRequired
}
