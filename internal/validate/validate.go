// Package validate wraps go-playground/validator with the rules shared by
// the API request types. Field errors are reported under their JSON names.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// basicEmailRegex accepts local@domain.tld with no whitespace and no
// extra @. It is intentionally loose; delivery is the real check.
var basicEmailRegex = regexp.MustCompile(`^` + emailPart + `@` + emailPart + `\.` + emailPart + `$`)

// emailPart excludes \v and the Unicode spaces too; RE2's \s is ASCII only.
const emailPart = `[^\s\x0B\p{Z}\x{FEFF}@]+`

// Rule registers a custom tag on the underlying validator.
type Rule struct {
	Tag string
	Fn  validator.Func
}

// BasicEmail validates the `basic_email` tag.
var BasicEmail = Rule{
	Tag: "basic_email",
	Fn: func(fl validator.FieldLevel) bool {
		val, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return basicEmailRegex.MatchString(val)
	},
}

type Validator struct {
	validator *validator.Validate
}

// New builds a Validator with the given rules registered. It panics if a
// rule cannot be registered, since rules are fixed at compile time.
func New(rules ...Rule) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)

	for _, r := range rules {
		if err := v.RegisterValidation(r.Tag, r.Fn); err != nil {
			panic(fmt.Sprintf("registering validation %q: %v", r.Tag, err))
		}
	}
	return &Validator{validator: v}
}

func (v *Validator) Struct(s any) error {
	return v.validator.Struct(s)
}

// Failure is one failed constraint.
type Failure struct {
	Field string
	Tag   string
}

// Failures flattens a validation error into field/tag pairs, in struct
// field order. It returns nil if err is not a validation error.
func Failures(err error) []Failure {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make([]Failure, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, Failure{Field: fe.Field(), Tag: fe.Tag()})
	}
	return out
}

func jsonName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}
