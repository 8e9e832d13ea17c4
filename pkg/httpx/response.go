package httpx

import (
	"encoding/json"
	"net/http"
)

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// FieldError is one entry in a validation failure list.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Envelope wraps every JSON body the API writes.
type Envelope struct {
	Status     string       `json:"status"`
	StatusCode int          `json:"statusCode"`
	Message    string       `json:"message,omitempty"`
	Data       any          `json:"data,omitempty"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success envelope around data.
func WriteData(w http.ResponseWriter, code int, message string, data any) {
	WriteJSON(w, code, Envelope{
		Status:     StatusSuccess,
		StatusCode: code,
		Message:    message,
		Data:       data,
	})
}

// WriteError writes an error envelope.
func WriteError(w http.ResponseWriter, code int, message string, fields []FieldError) {
	WriteJSON(w, code, Envelope{
		Status:     StatusError,
		StatusCode: code,
		Message:    message,
		Errors:     fields,
	})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// Every response in this API is user specific.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
