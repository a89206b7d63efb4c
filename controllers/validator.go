package controllers

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sarthakm19/product-catalog-service/apperrors"
)

var validate = validator.New()

// validatePayload runs struct-tag validation and translates failures into
// a single validation error naming the offending fields.
func validatePayload(payload interface{}) error {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperrors.NewValidation("Invalid request payload")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return apperrors.NewValidation(fmt.Sprintf("Missing or invalid fields: %s", strings.Join(fields, ", ")))
}
