// Package api defines the uniform JSON envelope shared by every endpoint.
package api

// Response is the envelope returned by all handlers. Status is 1 on success
// and 0 on failure. Data carries the record or sequence on success; Errors
// carries field-level validation failures.
type Response struct {
	Status  int          `json:"status"`
	Message string       `json:"message"`
	Data    any          `json:"data,omitempty"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failing input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// LoginResponse is the envelope for a successful login, carrying the signed
// token at the top level for client compatibility.
type LoginResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// Success builds a success envelope with the given payload.
func Success(message string, data any) Response {
	return Response{Status: 1, Message: message, Data: data}
}

// Failure builds a failure envelope with no payload.
func Failure(message string) Response {
	return Response{Status: 0, Message: message}
}

// ValidationFailure builds a failure envelope carrying field-level errors.
func ValidationFailure(errs []FieldError) Response {
	return Response{Status: 0, Message: "Validation failed", Errors: errs}
}
