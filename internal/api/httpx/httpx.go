package httpx

import (
	"encoding/json"
	"net/http"
)

type messageEnvelope struct {
	Message string `json:"message"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the API's error shape: {"message": "..."}.
func Error(w http.ResponseWriter, status int, message string) {
	WriteJSON(w, status, messageEnvelope{Message: message})
}

func OK(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusOK, v)
}

func Created(w http.ResponseWriter, v any) {
	WriteJSON(w, http.StatusCreated, v)
}
