package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// fallbackBody is sent when the response value itself cannot be encoded.
const fallbackBody = `{"success":false,"error":"Internal server error"}`

// WriteJSON serializes data to JSON and writes it with the given status code
// and a "Content-Type: application/json" header.
//
// If marshaling fails the client gets 500 with a generic error envelope and
// the wrapped marshal error is returned.
//
// Example usage:
//
//	WriteJSON(w, models.Envelope{Success: true}, http.StatusOK)
//	WriteJSON(w, models.Envelope{Error: "File not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	w.Header().Set("Content-Type", "application/json")

	jsonData, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(fallbackBody))
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
