package response

import (
	"encoding/json"
	"net/http"
)

// Body is the wire envelope for every non-empty response:
// {"message":"..."}
type Body struct {
	Message string `json:"message"`
}

// JSON writes raw JSON with Content-Type.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Message writes {"message": ...} with the given status.
func Message(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, Body{Message: msg})
}
