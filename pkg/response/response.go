// Package response writes the JSON envelope every endpoint speaks:
// {"success": bool, "error"?: string, <payload keys>...}. Payload fields sit
// at the top level next to the success flag, not under a data wrapper.
package response

import (
	"encoding/json"
	"net/http"
)

// Payload holds the top-level response fields merged next to the success flag.
type Payload map[string]interface{}

func write(w http.ResponseWriter, statusCode int, body map[string]interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}

func Success(w http.ResponseWriter, statusCode int, payload Payload) {
	body := map[string]interface{}{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	write(w, statusCode, body)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	write(w, statusCode, map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

func BadRequest(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Invalid request data"
	}
	Error(w, http.StatusBadRequest, message)
}

func NotFound(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Resource not found"
	}
	Error(w, http.StatusNotFound, message)
}

func InternalServerError(w http.ResponseWriter, message string) {
	if message == "" {
		message = "Internal server error"
	}
	Error(w, http.StatusInternalServerError, message)
}

func MethodNotAllowed(w http.ResponseWriter) {
	Error(w, http.StatusMethodNotAllowed, "Method not allowed")
}
