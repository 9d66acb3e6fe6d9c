package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Templates per tag. {field} and {param} are substituted.
var messages = map[string]string{
	"required": "{field} is required",
	"uuid":     "{field} must be a valid UUID",
	"email":    "{field} must be a valid email address",
	"oneof":    "{field} must be one of {param}",
	"min":      "{field} must be greater than or equal to {param}",
	"gte":      "{field} must be greater than or equal to {param}",
	"max":      "{field} must be less than or equal to {param}",
	"lte":      "{field} must be less than or equal to {param}",
	"gtfield":  "{field} must be after {param}",
	"datetime": "{field} must match the layout {param}",
	"clock":    "{field} must be a time in HH:MM format",
	"offsets":  "{field} must be a comma separated list of days",
}

// message describes the first failed rule that has a template. A bare
// variable has no field name, so fallback names it.
func message(err error, fallback ...string) string {
	var fieldErrs val.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}

	for _, fe := range fieldErrs {
		tmpl, ok := messages[fe.Tag()]
		if !ok {
			continue
		}

		field := fe.Field()
		if field == "" && len(fallback) > 0 {
			field = fallback[0]
		}

		return strings.NewReplacer("{field}", field, "{param}", fe.Param()).Replace(tmpl)
	}

	return fieldErrs.Error()
}
