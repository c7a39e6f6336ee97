package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Report status validation
	validate.RegisterValidation("report_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"pending", "approved", "rejected", "in_progress"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})

	// Fact-check verdict validation
	validate.RegisterValidation("verdict", func(fl validator.FieldLevel) bool {
		verdict := fl.Field().String()
		validVerdicts := []string{"queued", "in-progress", "verified", "disputed", "needs-review"}
		for _, v := range validVerdicts {
			if verdict == v {
				return true
			}
		}
		return false
	})

	// Attachment type validation
	validate.RegisterValidation("attachment_type", func(fl validator.FieldLevel) bool {
		t := fl.Field().String()
		validTypes := []string{"document", "image", "video", "audio"}
		for _, v := range validTypes {
			if t == v {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "url":
			errors[field] = "Invalid URL format"
		case "report_status":
			errors[field] = "Invalid status. Must be: pending, approved, rejected or in_progress"
		case "verdict":
			errors[field] = "Invalid verdict. Must be: queued, in-progress, verified, disputed or needs-review"
		case "attachment_type":
			errors[field] = "Invalid attachment type. Must be: document, image, video or audio"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
