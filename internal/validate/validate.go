// Package validate evaluates declarative field checks against request
// payloads. Each check names a field, the message to surface, and the
// rule kind to apply; kinds map one-to-one onto ozzo rules.
package validate

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"

	"github.com/devlink/backend/internal/model"
)

// Kind selects the rule a Check enforces.
type Kind int

const (
	NotEmpty Kind = iota
	Email
	MinLength
)

type Check struct {
	Field   string
	Message string
	Kind    Kind
	Min     int
}

func rules(c Check) []validation.Rule {
	switch c.Kind {
	case Email:
		return []validation.Rule{
			validation.Required.Error(c.Message),
			is.Email.Error(c.Message),
		}
	case MinLength:
		return []validation.Rule{
			validation.Required.Error(c.Message),
			validation.Length(c.Min, 0).Error(c.Message),
		}
	default:
		return []validation.Rule{validation.Required.Error(c.Message)}
	}
}

// Run applies each check to its field and collects failures in check
// order. The returned slice is nil when everything passes.
func Run(fields map[string]string, checks []Check) []model.FieldError {
	var errs []model.FieldError
	for _, c := range checks {
		if err := validation.Validate(fields[c.Field], rules(c)...); err != nil {
			errs = append(errs, model.FieldError{
				Msg:      c.Message,
				Param:    c.Field,
				Location: "body",
			})
		}
	}
	return errs
}
