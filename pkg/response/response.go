// Package response writes the flat wire bodies of the API: resources are
// returned as-is, failures as {"error": message}, confirmations as
// {"message": text}.
package response

import (
	"encoding/json"
	"net/http"
)

type errorBody struct {
	Error string `json:"error"`
}

type messageBody struct {
	Message string `json:"message"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

// Error writes {"error": message} with the given status code.
func Error(w http.ResponseWriter, statusCode int, message string) {
	JSON(w, statusCode, errorBody{Error: message})
}

// Message writes {"message": text} with 200, used for delete confirmations
// and auth acknowledgements without a payload.
func Message(w http.ResponseWriter, message string) {
	JSON(w, http.StatusOK, messageBody{Message: message})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Bad request"
	}
	Error(w, http.StatusBadRequest, message)
}

func Unauthorized(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Unauthorized"
	}
	Error(w, http.StatusUnauthorized, message)
}

func Forbidden(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Forbidden"
	}
	Error(w, http.StatusForbidden, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

// InternalServerError hides internal detail from the client; the real error
// is logged server-side.
func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Something went wrong!"
	}
	Error(w, http.StatusInternalServerError, message)
}
