package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/learnhub-api/internal/domain"
	appmiddleware "github.com/learnhub-api/internal/transport/http/middleware"
)

// MessageEnvelope is the generic response wrapper for simple outcomes.
type MessageEnvelope struct {
	Message string `json:"message,omitempty"`
	UserID  string `json:"userId,omitempty"`
}

// LoginEnvelope wraps successful login responses.
type LoginEnvelope struct {
	Message string          `json:"message"`
	User    *domain.Account `json:"user"`
	Token   string          `json:"token"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, MessageEnvelope{Message: msg})
}

// writeError maps a service error to an HTTP response. Client-addressable
// failures get a plain {message} body; anything unrecognized goes through the
// platform error registry so the response always has a consistent shape.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		// Fixed string: the cause (unknown email vs wrong password vs wrong
		// current password) must not be recoverable from the response.
		writeMessage(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, domain.ErrInvalidToken):
		writeMessage(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, domain.ErrInvalidResetToken):
		writeMessage(w, http.StatusBadRequest, "Invalid or expired reset token")
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrBadRequest):
		writeMessage(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeMessage(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeMessage(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		writeMessage(w, http.StatusForbidden, err.Error())
	case errors.Is(err, domain.ErrNotification):
		writeMessage(w, http.StatusBadGateway, err.Error())
	default:
		slog.Error("unhandled request error", "err", err)
		appmiddleware.WritePlatformEnvelope(w, err)
	}
}
