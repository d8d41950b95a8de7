package validate

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type CreateMenuItemRequest struct {
	Name         string `json:"name"         validate:"required"`
	Description  string `json:"description"  validate:"required"`
	Price        int64  `json:"price"        validate:"required,min=1"`
	Category     string `json:"category"     validate:"required,oneof=Thali Sweets Achar Catering Chinese"`
	ImageURL     string `json:"imageUrl"     validate:"required"`
	IsVegetarian *bool  `json:"isVegetarian"`
	Available    *bool  `json:"available"`
}

type PatchMenuItemRequest struct {
	Name         *string `json:"name"         validate:"omitempty,min=1"`
	Description  *string `json:"description"  validate:"omitempty,min=1"`
	Price        *int64  `json:"price"        validate:"omitempty,min=1"`
	Category     *string `json:"category"     validate:"omitempty,oneof=Thali Sweets Achar Catering Chinese"`
	ImageURL     *string `json:"imageUrl"     validate:"omitempty,min=1"`
	IsVegetarian *bool   `json:"isVegetarian"`
	Available    *bool   `json:"available"`
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Struct validates a request struct and reports failures per field. A nil map
// means the payload is valid.
func Struct(req any) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	fields := map[string]string{}
	for _, fe := range err.(validator.ValidationErrors) {
		fields[fe.Field()] = message(fe)
	}
	return fields
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return "is invalid"
	}
}
