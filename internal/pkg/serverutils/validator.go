package serverutils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct validation on an already parsed request body.
// Any failure comes back as a VALIDATION_ERROR AppError.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	errs, ok := err.(validator.ValidationErrors)
	if !ok {
		return NewValidationError(err.Error())
	}

	messages := make([]string, 0, len(errs))
	for _, fe := range errs {
		messages = append(messages, fmt.Sprintf("field %s failed on rule %s", fe.Field(), fe.Tag()))
	}
	return NewValidationError(strings.Join(messages, "; "))
}
