package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels used in error messages.
var FieldLabels = map[string]string{
	// Profile fields
	"Status":         "Status",
	"Skills":         "Skills",
	"Company":        "Company",
	"Website":        "Website",
	"Location":       "Location",
	"Bio":            "Bio",
	"GithubUsername": "Github username",

	// Experience fields
	"Title": "Title",
	"From":  "From date",
	"To":    "To date",

	// Education fields
	"School":       "School",
	"Degree":       "Degree",
	"FieldOfStudy": "Field of study",

	// Auth fields
	"Name":     "Name",
	"Email":    "Email",
	"Password": "Password",
}

// FormatValidationErrors converts validator.ValidationErrors into a
// per-field message list suitable for a 400 response body.
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	default:
		return fmt.Sprintf("%s is invalid (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
