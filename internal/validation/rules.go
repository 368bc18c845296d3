// Package validation holds the shared input rules and turns ozzo-validation
// errors into domain validation errors.
package validation

import (
	"errors"
	"regexp"
	"time"

	"github.com/Sokol111/ecommerce-marketplace/internal/domain"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/samber/lo"
)

const dateLayout = "2006-01-02"

var (
	phonePattern   = regexp.MustCompile(`^[789]\d{9}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
	aadharPattern  = regexp.MustCompile(`^\d{12}$`)
)

var (
	Phone   = validation.Match(phonePattern).Error("invalid phone number")
	Pincode = validation.Match(pincodePattern).Error("invalid pincode")
	Aadhar  = validation.Match(aadharPattern).Error("invalid Aadhar number")
	UUID    = is.UUID.Error("must be a valid UUID")
	Email   = is.EmailFormat.Error("invalid email address")
	URL     = is.URL.Error("must be a valid URL")

	// Password bounds follow bcrypt, which ignores input past 72 bytes.
	Password = validation.Length(8, 72).Error("password must be between 8 and 72 characters")

	EventType = validation.In(lo.Map(domain.EventTypes, func(t domain.EventType, _ int) any {
		return string(t)
	})...).Error("must be one of conference, workshop, webinar, meetup, seminar")

	ParticipantType = validation.In(lo.Map(domain.ParticipantTypes, func(t domain.ParticipantType, _ int) any {
		return string(t)
	})...).Error("must be one of artisan, customer")

	// Date accepts a calendar date or an RFC 3339 timestamp. Empty values pass.
	Date = validation.By(func(value any) error {
		v, _ := validation.Indirect(value)
		s, ok := v.(string)
		if !ok || s == "" {
			return nil
		}
		if _, err := ParseDate(s); err != nil {
			return errors.New("must be a date in YYYY-MM-DD format")
		}
		return nil
	})
)

// ParseDate parses "2006-01-02" or RFC 3339 input into a UTC time.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

// FormatDate renders a stored date the way clients send it.
func FormatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}
