// file: internals/helpers/validator.go
package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator instance (share satu untuk semua DTO)
var Validate = validator.New()

// ValidationError memetakan error validator.v10 ke respons 422 standar.
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}

	fieldErrors := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		fieldErrors[fieldErr.Field()] = append(fieldErrors[fieldErr.Field()], validationMessage(fieldErr))
	}
	return JsonValidationError(c, fieldErrors)
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + " characters"
	case "max":
		return "must be at most " + fe.Param() + " characters"
	case "gte":
		return "must be greater than or equal to " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "must be a valid date (YYYY-MM-DD)"
	default:
		return "failed rule: " + fe.Tag()
	}
}
