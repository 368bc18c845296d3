package handler

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	"github.com/Sokol111/ecommerce-marketplace/pkg/http/problems"
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
)

// fail records err for the error logger and problem middlewares.
func fail(c *gin.Context, err error) {
	_ = c.Error(err).SetMeta(toProblem(err))
	c.Abort()
}

// toProblem maps domain errors to response bodies. Unknown errors yield nil,
// which the problem middleware renders as a generic 500.
func toProblem(err error) *problems.Problem {
	var (
		verr     *domain.ValidationError
		notFound *domain.NotFoundError
		conflict *domain.ConflictError
	)
	switch {
	case errors.As(err, &verr):
		fields := lo.Map(verr.Violations, func(v domain.FieldViolation, _ int) problems.FieldError {
			return problems.FieldError{Field: v.Field, Message: v.Message}
		})
		return problems.BadRequest(validationDetail(verr), fields...)
	case errors.As(err, &notFound):
		return problems.NotFound(notFound.Message)
	case errors.As(err, &conflict):
		return problems.BadRequest(conflict.Message)
	default:
		return nil
	}
}

func validationDetail(verr *domain.ValidationError) string {
	if len(verr.Violations) == 1 {
		return verr.Violations[0].Message
	}
	return "validation failed"
}

// bind decodes the JSON body into dst. Malformed bodies are reported as
// validation errors against the offending field when one is known.
func bind(c *gin.Context, dst any) error {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.Is(err, io.EOF):
		return domain.NewValidationError(domain.FieldViolation{Message: "request body is required"})
	case errors.As(err, &typeErr):
		return domain.NewValidationError(domain.FieldViolation{
			Field:   typeErr.Field,
			Message: "must be of type " + typeErr.Type.String(),
		})
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return domain.NewValidationError(domain.FieldViolation{Message: "request body is not valid JSON"})
	default:
		return err
	}
}
