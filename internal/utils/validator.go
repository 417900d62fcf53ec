package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// ValidationErrorDetail represents the structure of a single validation error.
type ValidationErrorDetail struct {
	Field    string      `json:"field"`
	Message  string      `json:"message"`
	Expected string      `json:"expected"`
	Received interface{} `json:"received"`
}

// BindAndValidate binds the request body to the given object and validates it.
// If validation fails, it sends a 400 ErrorResponse whose error is the first
// failure's message and returns false. An empty body binds as an empty object.
func BindAndValidate(c *gin.Context, obj interface{}) bool {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj)
	}
	if err == nil {
		return true
	}

	details := validationDetails(obj, err)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   details[0].Message,
		Details: details,
	})
	return false
}

func validationDetails(obj interface{}, err error) []ValidationErrorDetail {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		details := make([]ValidationErrorDetail, 0, len(validationErrors))
		for _, e := range validationErrors {
			field := getJSONTagName(obj, e.StructField())
			detail := ValidationErrorDetail{
				Field:    field,
				Message:  fmt.Sprintf("Field '%s' failed on the '%s' tag", field, e.Tag()),
				Expected: e.Param(),
				Received: e.Value(),
			}
			if detail.Expected == "" {
				detail.Expected = e.Tag()
			}

			switch e.Tag() {
			case "required":
				detail.Message = fmt.Sprintf("Missing %s", field)
				detail.Expected = "not null"
			case "gt", "min":
				detail.Message = fmt.Sprintf("Invalid %s", field)
				detail.Expected = fmt.Sprintf("greater than %s", e.Param())
			}

			details = append(details, detail)
		}
		return details
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return []ValidationErrorDetail{{
			Field:    typeErr.Field,
			Message:  fmt.Sprintf("Invalid %s", typeErr.Field),
			Expected: typeErr.Type.String(),
			Received: typeErr.Value,
		}}
	}

	return []ValidationErrorDetail{{
		Field:    "body",
		Message:  "Invalid request body",
		Expected: "valid JSON",
		Received: "invalid",
	}}
}

func getJSONTagName(obj interface{}, fieldName string) string {
	t := reflect.TypeOf(obj)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if f, ok := t.FieldByName(fieldName); ok {
		if name, _, _ := strings.Cut(f.Tag.Get("json"), ","); name != "" && name != "-" {
			return name
		}
	}
	return fieldName
}
