package httputil

import (
	"net/http"

	"github.com/AdamBeresnev/poker-league/internal/obslog"
	"go.uber.org/zap"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	obslog.L().Error(msg, zap.Error(err))
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusBadRequest, "bad request", msg, err)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	clientError(w, http.StatusNotFound, "not found", msg, err)
}

func clientError(w http.ResponseWriter, status int, kind, msg string, err error) {
	fields := []zap.Field{zap.String("message", msg)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	obslog.L().Warn(kind, fields...)
	http.Error(w, msg, status)
}
