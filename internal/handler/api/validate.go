package api

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/dukerupert/tradeline/internal/domain"
	"github.com/go-playground/validator/v10"
)

// validate is shared by every handler in the package; validator caches
// struct metadata and is safe for concurrent use.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateRequest runs struct validation and turns the first failure into
// an EINVALID error naming the field.
func validateRequest(op string, req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return domain.Invalid(op, "Invalid request data")
	}

	fe := verrs[0]
	field := fe.Field()
	var msg string
	switch fe.Tag() {
	case "required", "required_with":
		msg = field + " is required"
	case "email":
		msg = field + " must be a valid email address"
	case "uuid":
		msg = field + " must be a valid id"
	case "max":
		if fe.Kind() == reflect.Slice {
			msg = fmt.Sprintf("%s must contain at most %s items", field, fe.Param())
		} else {
			msg = fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
	case "oneof":
		msg = fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		msg = field + " is invalid"
	}
	return domain.Invalid(op, msg)
}
