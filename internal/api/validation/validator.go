package validation

import (
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/jisook325/tracker/internal/domain"
	"github.com/jisook325/tracker/pkg/daterange"
	"github.com/jisook325/tracker/pkg/problem"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Report fields by their JSON names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	validate.RegisterValidation("calendardate", func(fl validator.FieldLevel) bool {
		return daterange.IsDate(fl.Field().String())
	})

	validate.RegisterValidation("localtimestamp", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.LocalTimestampLayout, fl.Field().String())
		return err == nil
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []problem.FieldError{{Field: "body", Message: "is invalid"}}
	}

	var fieldErrors []problem.FieldError
	for _, err := range validationErrors {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   fieldPath(err),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

// Var validates a single value against tag, reporting it as field.
func Var(field string, value interface{}, tag string) []problem.FieldError {
	err := validate.Var(value, tag)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return []problem.FieldError{{Field: field, Message: "is invalid"}}
	}
	return []problem.FieldError{{Field: field, Message: getValidationMessage(validationErrors[0])}}
}

// fieldPath drops the struct name from the namespace, so nested errors read
// like "options[2]".
func fieldPath(err validator.FieldError) string {
	ns := err.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return err.Field()
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		if err.Kind() == reflect.String {
			return "must be at most " + err.Param() + " characters"
		}
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "calendardate":
		return "must be a date in YYYY-MM-DD format"
	case "localtimestamp":
		return "must be a local timestamp in YYYY-MM-DDTHH:MM format"
	default:
		return "is invalid"
	}
}
