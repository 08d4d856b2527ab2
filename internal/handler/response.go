package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// All responses share the {success, message?, ...} envelope.
type messageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type userDataEnvelope struct {
	Success  bool             `json:"success"`
	UserData UserDataResponse `json:"userData"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, success bool, message string) {
	writeJSON(w, status, messageResponse{Success: success, Message: message})
}

func parseJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid json: %w", err)
	}
	return nil
}
