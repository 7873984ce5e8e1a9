package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON serializes data and writes it as the response body with the
// given status code and an application/json content type.
//
// Every API response goes through this helper: the success/failure
// envelopes as well as the bare arrays produced by the room and message
// listing endpoints. Centralizing the write keeps the Content-Type header
// and status ordering in one place.
//
// If marshaling fails, it responds with 500 Internal Server Error and
// returns a wrapped error; otherwise it returns the byte count from the
// underlying writer.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
