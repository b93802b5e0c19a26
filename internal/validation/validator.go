// Package validation holds the field rules applied to account records before they are stored.
// Every failure names the field it belongs to so the caller can point the user at the right input.
package validation

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	emailPattern = regexp.MustCompile(`^[\w\-.]+@([\w\-]+\.)+[\w\-]{2,4}$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// FieldError is a single rejected field with a human readable reason
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Reason
}

// Errors lists every field that failed, in declaration order
type Errors []*FieldError

func (e Errors) Error() string {
	reasons := make([]string, 0, len(e))
	for _, fe := range e {
		reasons = append(reasons, fe.Reason)
	}
	return strings.Join(reasons, "; ")
}

// Field returns the error reported for field, or nil
func (e Errors) Field(name string) *FieldError {
	for _, fe := range e {
		if fe.Field == name {
			return fe
		}
	}
	return nil
}

// Validator wraps a go-playground validator with the account rules registered
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator with the emailaddr, phone and maxbytes tags registered
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Registration only fails for empty tag names or nil funcs.
	_ = v.RegisterValidation("emailaddr", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("maxbytes", func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return len(fl.Field().String()) <= limit
	})

	return &Validator{validate: v}
}

// Struct checks every validate tag on s and returns Errors when any rule fails
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validation: %w", err)
	}

	out := make(Errors, 0, len(verrs))
	for _, fe := range verrs {
		name := strings.ToLower(fe.StructField())
		out = append(out, &FieldError{Field: name, Reason: reason(name, fe)})
	}
	return out
}

// Var checks a single value against tag and reports failures under field
func (v *Validator) Var(field string, value string, tag string) *FieldError {
	err := v.validate.Var(value, tag)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return &FieldError{Field: field, Reason: reason(field, verrs[0])}
	}
	return &FieldError{Field: field, Reason: err.Error()}
}

func reason(field string, fe validator.FieldError) string {
	value, _ := fe.Value().(string)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "emailaddr":
		return fmt.Sprintf("%s is not a valid email address", value)
	case "phone":
		return fmt.Sprintf("%s is not a valid phone number", value)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", capitalize(field), fe.Param())
	case "maxbytes":
		return fmt.Sprintf("%s must be at most %s bytes long", capitalize(field), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
