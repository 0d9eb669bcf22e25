package utils

import (
	"encoding/json"
	"net/http"
)

// Response adalah envelope standar untuk semua endpoint.
type Response struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
	Errors  any    `json:"errors,omitempty"`
}

func writeJSON(w http.ResponseWriter, code int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

// ResponseJSON writes the envelope with a custom status code.
func ResponseJSON(w http.ResponseWriter, code int, status bool, message string, data, errors any) {
	writeJSON(w, code, Response{Status: status, Message: message, Data: data, Errors: errors})
}

// ResponseSuccess returns 200 OK.
func ResponseSuccess(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusOK, Response{Status: true, Message: message, Data: data})
}

// ResponseCreated returns 201 Created.
func ResponseCreated(w http.ResponseWriter, message string, data any) {
	writeJSON(w, http.StatusCreated, Response{Status: true, Message: message, Data: data})
}

// ResponseBadRequest returns 400 with optional field errors.
func ResponseBadRequest(w http.ResponseWriter, message string, errors any) {
	writeJSON(w, http.StatusBadRequest, Response{Status: false, Message: message, Errors: errors})
}

// ResponseUnauthorized returns 401.
func ResponseUnauthorized(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnauthorized, Response{Status: false, Message: message})
}

// ResponseForbidden returns 403.
func ResponseForbidden(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusForbidden, Response{Status: false, Message: message})
}

// ResponseNotFound returns 404.
func ResponseNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, Response{Status: false, Message: message})
}

// ResponseConflict returns 409.
func ResponseConflict(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusConflict, Response{Status: false, Message: message})
}

// ResponseInternalError returns 500.
func ResponseInternalError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusInternalServerError, Response{Status: false, Message: message})
}
