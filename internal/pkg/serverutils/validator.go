package serverutils

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// ValidateRequest checks struct tags and returns a 400 AppError listing the
// first offending field.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok || len(validationErrors) == 0 {
			return NewAppError(fiber.StatusBadRequest, "Invalid request payload")
		}
		first := validationErrors[0]
		return NewAppError(
			fiber.StatusBadRequest,
			fmt.Sprintf("Field '%s' failed validation rule '%s'", first.Field(), first.Tag()),
		)
	}
	return nil
}
