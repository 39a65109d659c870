package httputil

import (
	"encoding/json"
	"net/http"

	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"go.uber.org/zap"
)

type errorBody struct {
	Error string `json:"error"`
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		obslog.L().Warn("failed to encode response", zap.Error(err))
	}
}

// JSONError writes {"error": msg}. Server errors are logged with their cause
// and never leak it to the client.
func JSONError(w http.ResponseWriter, status int, msg string, err error) {
	if status >= http.StatusInternalServerError {
		obslog.L().Error(msg, zap.Error(err))
		msg = http.StatusText(status)
	}
	WriteJSON(w, status, errorBody{Error: msg})
}
