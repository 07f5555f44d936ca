// Package validation provides common validation utilities.
package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Amanile/epf-calculator/pkg/epf"
)

var validate = validator.New()

// ValidateInput checks projection inputs against their declared rules and
// reports every violation in one error, joined with ", ".
func ValidateInput(in epf.Input) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	validateErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	var messages []string
	for _, e := range validateErrs {
		switch e.ActualTag() {
		case "required":
			messages = append(messages, fmt.Sprintf("field %s is required", e.Field()))
		case "gt":
			messages = append(messages, fmt.Sprintf("field %s must be greater than %s", e.Field(), e.Param()))
		case "gte":
			messages = append(messages, fmt.Sprintf("field %s must be at least %s", e.Field(), e.Param()))
		case "lte":
			messages = append(messages, fmt.Sprintf("field %s must be at most %s", e.Field(), e.Param()))
		case "gtfield":
			messages = append(messages, fmt.Sprintf("field %s must be greater than field %s", e.Field(), e.Param()))
		default:
			messages = append(messages, fmt.Sprintf("field %s is invalid", e.Field()))
		}
	}

	return fmt.Errorf("%s", strings.Join(messages, ", "))
}
