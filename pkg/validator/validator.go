package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Var checks a single value against a validation rule tag, e.g. "gt=0",
// "gte=0,lte=5", "email". Presence/optionality is handled by the caller, so
// rules here never include "required" or "omitempty".
func Var(value interface{}, rule string) error {
	return validate.Var(value, rule)
}

// FailedTag extracts the first violated tag from a validation error, e.g.
// "gte" for a rule "gte=0,lte=5" failing on the lower bound.
func FailedTag(err error) string {
	if verrs, ok := err.(validator.ValidationErrors); ok && len(verrs) > 0 {
		return verrs[0].Tag()
	}
	return ""
}
