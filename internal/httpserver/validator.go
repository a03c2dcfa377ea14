package httpserver

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"blogapi/internal/apierror"
)

const passwordComplexityMessage = "Password must contain at least one uppercase letter, one lowercase letter, one number, and one special character."

// requestValidator adapts go-playground/validator to echo's Validator
// interface, converting violations into the validation error kind with
// per-field detail.
type requestValidator struct {
	validate *validator.Validate
}

func newValidator() *requestValidator {
	v := validator.New()

	// Report fields by their JSON name, matching the wire format.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// The password complexity rule cannot be a single regexp without
	// lookaheads, so it is checked programmatically.
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return passwordIsStrong(fl.Field().String())
	})

	return &requestValidator{validate: v}
}

// passwordIsStrong enforces the signup password pattern: at least 8
// characters drawn from letters, digits and @$!%*?&, with at least one
// lowercase letter, one uppercase letter, one digit and one special
// character.
func passwordIsStrong(password string) bool {
	if len(password) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

func (rv *requestValidator) Validate(i interface{}) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return apierror.Internal(err)
	}

	details := make([]apierror.FieldError, 0, len(violations))
	for _, v := range violations {
		details = append(details, apierror.FieldError{
			Field:   v.Field(),
			Message: fieldMessage(v),
		})
	}
	return apierror.Validation("Request validation failed", details...)
}

func fieldMessage(v validator.FieldError) string {
	switch v.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", v.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", v.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", v.Field(), v.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", v.Field(), v.Param())
	case "password":
		return passwordComplexityMessage
	default:
		return fmt.Sprintf("%s is invalid", v.Field())
	}
}

// bind decodes and validates a request body. Malformed bodies and
// schema violations are reported before handler logic runs.
func (s *Server) bind(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return apierror.Validation("Malformed request body")
	}
	return c.Validate(req)
}
