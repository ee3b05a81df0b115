package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Validator failures must name the JSON key the client sent, not the Go
// struct field, so the engine is taught to read the json tag.
func init() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// FieldErrors translates a Gin binding error into the envelope's field-error
// shape. Validator failures yield one entry per failing field; JSON type
// mismatches (for example a string where a numeric id is expected) yield an
// entry for the offending field.
func FieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			// Field() yields the json tag name via the registered tag-name func.
			field := fe.Field()
			out = append(out, FieldError{Field: field, Message: messageForTag(field, fe.Tag())})
		}
		return out
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return []FieldError{{Field: typeErr.Field, Message: fmt.Sprintf("%s is malformed", typeErr.Field)}}
	}

	return []FieldError{{Field: "body", Message: "Invalid request body"}}
}

// messageForTag maps a validator tag to a human-readable message.
func messageForTag(field, tag string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "Invalid email"
	case "http_url":
		return "Invalid URL"
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
