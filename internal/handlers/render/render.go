package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func init() {
	// Report on the json tag instead of the Go field name
	// Look at documentation of 'RegisterTagNameFunc' for more details
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		// skip if tag key says it should be ignored
		if name == "-" {
			return ""
		}
		return name
	})
}

type Struct any

// ErrorResponse is the only error body shape the API speaks:
// a flat object with a non-empty error string.
type ErrorResponse struct {
	Error string `json:"error"`
}

func JSON(w http.ResponseWriter, data any) {
	JSONWithStatus(w, data, http.StatusOK)
}

// JSONWithStatus sends data as json and enforces status code
func JSONWithStatus(w http.ResponseWriter, data any, code int) {
	buf := &bytes.Buffer{}
	enc := json.NewEncoder(buf)

	if err := enc.Encode(data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_, _ = w.Write(buf.Bytes())
}

// Error renders the error body
func Error(w http.ResponseWriter, message string, code int) {
	JSONWithStatus(w, ErrorResponse{Error: message}, code)
}

// DecodeError renders json decoding failures
func DecodeError(w http.ResponseWriter, err error) {
	var message string

	// Try to provide more specific error message based on error type
	switch err := err.(type) {
	case *json.UnmarshalTypeError:
		message = fmt.Sprintf("invalid data type for field '%s'", err.Field)
	default:
		message = fmt.Sprintf("failed to parse JSON: %s", err.Error())
	}

	Error(w, message, http.StatusBadRequest)
}

// ValidationErrors renders validator failures as a single message
func ValidationErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	messages := make([]string, 0, len(errs))

	for _, fieldError := range errs {
		var reason string
		switch fieldError.Tag() {
		case "required":
			reason = "is required"
		case "min":
			reason = fmt.Sprintf("is too short (minimum %s)", fieldError.Param())
		default:
			reason = "is invalid"
		}

		messages = append(messages, fmt.Sprintf("field '%s' %s", fieldError.Field(), reason))
	}

	Error(w, "validation failed: "+strings.Join(messages, "; "), http.StatusBadRequest)
}

// BindAndValidate decodes JSON request body into type T and validates it using
// struct tags. Writes the error response itself on decoding or validation
// failures, the caller only has to return.
func BindAndValidate[T Struct](w http.ResponseWriter, r *http.Request) (T, error) {
	var value T

	err := json.NewDecoder(r.Body).Decode(&value)
	if err != nil {
		DecodeError(w, err)
		return value, err
	}

	err = validate.Struct(value)
	if err != nil {
		// pretty sure cast will be ok cause expecting T is valid struct
		errs := err.(validator.ValidationErrors)
		ValidationErrors(w, errs)
		return value, err
	}

	return value, nil
}
