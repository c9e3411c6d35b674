package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rpupo63/portfolio-backend/errs"
	"github.com/rpupo63/portfolio-backend/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report fields by their JSON name so messages line up with the payload
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	choices := map[string]models.Choices{
		"project_status": models.ProjectStatuses,
		"blog_category":  models.BlogCategories,
	}
	for tag, set := range choices {
		set := set
		mustRegister(v, tag, func(fl validator.FieldLevel) bool {
			return set.Has(fl.Field().String())
		})
	}
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return models.IsSlug(fl.Field().String())
	})

	return v
}

// mustRegister panics when a custom tag cannot be registered, which only
// happens for a malformed tag name
func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registering %q validation: %v", tag, err))
	}
}

// Validate checks s against its `validate` tags. Every failing field is
// reported at once through an *errs.ApiErr carrying one message per field.
func Validate(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errs.NewInternalError(fmt.Sprintf("validating payload: %v", err))
	}

	fields := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		name := fieldName(fe)
		if _, seen := fields[name]; !seen {
			fields[name] = FieldMessage(fe)
		}
	}
	return errs.NewValidationError(fields)
}

// fieldName strips the struct name from the namespace, keeping indexes of
// nested slices (technologies[1])
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// FieldMessage turns a validation failure into a human readable message
func FieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "url", "http_url":
		return "Enter a valid URL."
	case "datetime":
		return "Date has wrong format. Use YYYY-MM-DD."
	case "slug":
		return "Enter a valid slug consisting of lowercase letters, numbers or hyphens."
	case "project_status", "blog_category":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	default:
		return "Enter a valid value."
	}
}

// trimAll trims surrounding whitespace from every string pointer, so a value
// made only of spaces counts as missing
func trimAll(values ...*string) {
	for _, v := range values {
		*v = strings.TrimSpace(*v)
	}
}
