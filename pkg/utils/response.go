package utils

import (
	"encoding/json"
	"net/http"
)

// OpResult is the uniform envelope every mutating operation answers with.
// Errors never cross the handler boundary as HTTP failures; they are
// converted here, matching the IPC semantics the UI was built against.
type OpResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// Result writes the {success, error?} envelope for err, always with HTTP
// 200.
func Result(w http.ResponseWriter, err error) {
	if err != nil {
		JSON(w, http.StatusOK, OpResult{Success: false, Error: err.Error()})
		return
	}
	JSON(w, http.StatusOK, OpResult{Success: true})
}
