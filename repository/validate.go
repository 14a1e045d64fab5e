package repository

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// checkDetails runs struct validation on a details struct and converts the
// first failure into a ValidationError naming the field.
func checkDetails(details any) error {
	err := validate.Struct(details)
	if err == nil {
		return nil
	}
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return &ValidationError{Field: "details", Message: "invalid details"}
	}
	fe := errs[0]
	field := strings.ToLower(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return &ValidationError{Field: field, Message: field + " is required"}
	default:
		return &ValidationError{Field: field, Message: field + " is invalid"}
	}
}
