package response

import (
	"bytes"
	"encoding/json"
	"net/http"

	"showcase/internal/models"
)

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(data); err != nil {
		http.Error(w, "Failed to encode JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	buf.WriteTo(w)
}

func Error(w http.ResponseWriter, statusCode int, message string) {
	type errResponse struct {
		Error string `json:"error"`
	}
	JSON(w, statusCode, errResponse{Error: message})
}

// Toast answers a newsletter submission.
func Toast(w http.ResponseWriter, statusCode int, toast models.Toast) {
	JSON(w, statusCode, struct {
		Toast models.Toast `json:"toast"`
	}{Toast: toast})
}

// Alert answers a login or signup submission.
func Alert(w http.ResponseWriter, statusCode int, alert models.Alert) {
	JSON(w, statusCode, struct {
		Alert models.Alert `json:"alert"`
	}{Alert: alert})
}
