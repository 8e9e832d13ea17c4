// Package validatex wraps go-playground/validator with the tags and message
// formatting the tack API uses for request bodies.
package validatex

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is one failing field, named by its JSON path.
type FieldError struct {
	Path    string
	Message string
}

var (
	once     sync.Once
	validate *validator.Validate
)

var (
	passwordCharset = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]{8,}$`)
	otpPattern      = regexp.MustCompile(`^[A-Za-z0-9]{6}$`)
)

const passwordSpecials = "@$!%*?&"

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("strongpassword", strongPassword)
		_ = v.RegisterValidation("otp", func(fl validator.FieldLevel) bool {
			return otpPattern.MatchString(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func jsonName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}

// strongPassword requires at least 8 characters drawn from letters, digits
// and @$!%*?&, including one of each class.
func strongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if !passwordCharset.MatchString(s) {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune(passwordSpecials, r):
			special = true
		}
	}
	return lower && upper && digit && special
}

// Struct validates s and returns one FieldError per failing field, in
// declaration order. A nil result means s is valid.
func Struct(s any) []FieldError {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Path: "", Message: err.Error()}}
	}

	out := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		out = append(out, FieldError{Path: path(e), Message: message(e)})
	}
	return out
}

// path drops the root struct name from the namespace, leaving the JSON path.
func path(e validator.FieldError) string {
	ns := e.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return e.Field()
}

func message(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters long", e.Param())
	case "max":
		return fmt.Sprintf("must be no longer than %s characters", e.Param())
	case "gte":
		return fmt.Sprintf("must be greater than or equal to %s", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", strings.ReplaceAll(e.Param(), " ", ", "))
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", e.Param())
	case "hexadecimal":
		return "must be hexadecimal"
	case "strongpassword":
		return "must be at least 8 characters and include an uppercase letter, a lowercase letter, a number and one of @$!%*?&"
	case "otp":
		return "must be a 6 character alphanumeric code"
	case "ulid":
		return "must be a valid id"
	}
	return fmt.Sprintf("is invalid (%s)", e.Tag())
}
