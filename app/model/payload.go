package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate backs every payload schema in this package. Schemas are
// declarative (struct tags); the instance holds no state between calls.
var validate = validator.New()

// ValidationError is the recoverable failure returned by every parse entry
// point. Malformed external input is never worth a panic; callers translate
// this into a 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func errValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidationError reports whether err is a recoverable parse failure as
// opposed to a contract violation.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func validationFromErr(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errValidation(err.Error())
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "min":
			parts = append(parts, fe.Field()+" must be at least "+fe.Param()+" characters")
		case "gte":
			parts = append(parts, fe.Field()+" must be at least "+fe.Param())
		case "lte":
			parts = append(parts, fe.Field()+" must be at most "+fe.Param())
		case "oneof":
			parts = append(parts, fe.Field()+" must be one of: "+fe.Param())
		case "url":
			parts = append(parts, fe.Field()+" must be a valid absolute URL")
		default:
			parts = append(parts, fe.Field()+" is not valid")
		}
	}
	return errValidation(strings.Join(parts, "; "))
}

// envelopeHead is the untyped first pass over an incoming envelope; Data is
// decoded a second time once the activity code has selected a variant.
type envelopeHead struct {
	ActivityCode string          `json:"activityCode"`
	Data         json.RawMessage `json:"data"`
}

// decodePayload decodes raw strictly into T and applies T's schema.
// DisallowUnknownFields is what rejects wrong-convention field names: a
// snake_case key inside an API-shape body (or the reverse) is an unknown
// field for that shape, by construction.
func decodePayload[T any](raw json.RawMessage) (*T, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errValidation("data is required")
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	var payload T
	if err := dec.Decode(&payload); err != nil {
		return nil, errValidation("data does not match the payload shape for this activity code: " + err.Error())
	}
	if err := validate.Struct(&payload); err != nil {
		return nil, validationFromErr(err)
	}
	return &payload, nil
}
