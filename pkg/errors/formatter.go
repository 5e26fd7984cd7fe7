package errors

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ValidationErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func msgForTag(tag string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short or too small"
	case "max":
		return "Value is too long or too large"
	case "numeric":
		return "Value must be numeric"
	case "datetime":
		return "Invalid date format"
	case "oneof":
		return "Value must be one of the allowed options"
	default:
		return "Invalid value"
	}
}

// fieldNameForClient resolves the wire name of a struct field, preferring the
// form tag since the public surface of this application is form-encoded.
func fieldNameForClient(structType reflect.Type, fieldName string) string {
	field, found := structType.FieldByName(fieldName)
	if !found {
		return fieldName
	}

	for _, tagName := range []string{"form", "json"} {
		tag := field.Tag.Get(tagName)
		if tag == "" || tag == "-" {
			continue
		}
		return strings.Split(tag, ",")[0]
	}

	return fieldName
}

func FormatValidationErrors(err error, model interface{}) []ValidationErrorResponse {
	var errorsList []ValidationErrorResponse

	if err == nil {
		return errorsList
	}

	if jsonErr, ok := err.(*json.UnmarshalTypeError); ok {
		return []ValidationErrorResponse{
			{
				Field:   jsonErr.Field,
				Message: fmt.Sprintf("Invalid type for field %s. Expected %s, got %s", jsonErr.Field, jsonErr.Type, jsonErr.Value),
			},
		}
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return errorsList
	}

	var structType reflect.Type
	if model != nil {
		structType = reflect.TypeOf(model)
		if structType.Kind() == reflect.Ptr {
			structType = structType.Elem()
		}
	}

	errorsList = make([]ValidationErrorResponse, len(validationErrors))

	for i, fieldError := range validationErrors {
		clientField := fieldError.Field()
		if model != nil {
			clientField = fieldNameForClient(structType, fieldError.Field())
		}

		message := msgForTag(fieldError.Tag())

		if fieldError.Param() != "" {
			switch fieldError.Tag() {
			case "min":
				message = fmt.Sprintf("Must be at least %s characters", fieldError.Param())
			case "max":
				message = fmt.Sprintf("Must not exceed %s characters", fieldError.Param())
			case "datetime":
				message = fmt.Sprintf("Must be a date in %s form", fieldError.Param())
			case "oneof":
				message = fmt.Sprintf("Must be one of: %s", fieldError.Param())
			}
		}

		errorsList[i] = ValidationErrorResponse{
			Field:   clientField,
			Message: message,
		}
	}

	return errorsList
}
