package validation

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Check validates v and returns a *domain.ValidationError listing every
// violated field. Rule failures that are not input problems are returned
// wrapped, as internal errors.
func Check(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("validation rule failed: %w", err)
	}

	return domain.NewValidationError(Flatten(err)...)
}

// Flatten converts nested validation.Errors into violations with dotted field
// paths, sorted by field.
func Flatten(err error) []domain.FieldViolation {
	var out []domain.FieldViolation
	flatten("", err, &out)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Field < out[j].Field })
	return out
}

func flatten(prefix string, err error, out *[]domain.FieldViolation) {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		*out = append(*out, domain.FieldViolation{Field: prefix, Message: err.Error()})
		return
	}

	for field, fieldErr := range errs {
		if fieldErr == nil {
			continue
		}
		path := field
		if prefix != "" {
			path = prefix + "." + field
		}
		flatten(path, fieldErr, out)
	}
}
