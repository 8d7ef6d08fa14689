package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"

	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of a 400 validation response.
type FieldError struct {
	Type     string      `json:"type"`
	Value    interface{} `json:"value,omitempty"`
	Msg      string      `json:"msg"`
	Path     string      `json:"path"`
	Location string      `json:"location"`
}

type ValidationErrorResponse struct {
	Errors []FieldError `json:"errors"`
}

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 100 << 10

// fields whose submitted value is never echoed back
var secretFields = map[string]bool{
	"password": true,
}

func toFieldErrors(errs validator.ValidationErrors) []FieldError {
	fieldErrors := make([]FieldError, 0, len(errs))
	for _, fe := range errs {
		entry := FieldError{
			Type:     "field",
			Msg:      "Invalid value",
			Path:     fe.Field(),
			Location: "body",
		}
		if !secretFields[fe.Field()] {
			entry.Value = fieldValue(fe.Value())
		}
		fieldErrors = append(fieldErrors, entry)
	}
	return fieldErrors
}

// fieldValue drops nil pointers so absent fields carry no value.
func fieldValue(value interface{}) interface{} {
	rv := reflect.ValueOf(value)
	if !rv.IsValid() {
		return nil
	}
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return nil
		}
		return rv.Elem().Interface()
	}
	return value
}

// bind decodes the JSON body into dst and runs its validate tags. It writes
// the error response itself and reports whether the handler may continue.
// An empty body decodes as an empty object.
func (h *Handlers) bind(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(dst); err != nil && !errors.Is(err, io.EOF) {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			WriteMessage(w, msgBodyTooLarge, http.StatusRequestEntityTooLarge)
			return false
		}
		WriteMessage(w, msgInvalidBody, http.StatusBadRequest)
		return false
	}

	if err := h.Validate.Struct(dst); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			WriteJSON(w, ValidationErrorResponse{Errors: toFieldErrors(validationErrors)}, http.StatusBadRequest)
			return false
		}
		h.ServerError(w, r, err)
		return false
	}

	return true
}
