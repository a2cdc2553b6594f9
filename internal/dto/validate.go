package dto

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

const passwordSpecials = "@$!%*?&"

var (
	cpfPattern   = regexp.MustCompile(`^\d{11}$`)
	phonePattern = regexp.MustCompile(`^\d{10,15}$`)

	validate     *validator.Validate
	validateOnce sync.Once
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []string
	msgs   []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.msgs, "; ")
}

func instance() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(fieldName)
		_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
			return cpfPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phonePattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return StrongPassword(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// fieldName reports fields by their json (or query) name.
func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name != "" && name != "-" {
			return name
		}
	}
	return f.Name
}

// Validate checks v against its struct tags and returns a *ValidationError
// with one readable message per failing field.
func Validate(v interface{}) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	ve := &ValidationError{}
	for _, fe := range fieldErrs {
		ve.Fields = append(ve.Fields, fe.Field())
		ve.msgs = append(ve.msgs, message(fe))
	}
	return ve
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "cpf":
		return field + " must contain exactly 11 digits"
	case "phone":
		return field + " must contain 10 to 15 digits"
	case "password":
		return field + " must contain upper and lower case letters, a digit and one of " + passwordSpecials
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "uuid":
		return field + " must be a valid UUID"
	case "boolean":
		return field + " must be true or false"
	default:
		return field + " is invalid"
	}
}

// StrongPassword reports whether s has at least eight characters including
// an upper case letter, a lower case letter, a digit and a special character.
func StrongPassword(s string) bool {
	if len(s) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// ParseDate parses a YYYY-MM-DD value as a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
	}
	return t, nil
}

// ParseOptionalDate returns nil for a blank value.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}
