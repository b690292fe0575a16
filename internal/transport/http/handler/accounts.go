package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/learnhub-api/internal/application/account"
	"github.com/learnhub-api/internal/domain"
	"github.com/learnhub-api/internal/transport/http/middleware"
)

// AccountHandler handles profile endpoints.
type AccountHandler struct {
	svc account.Service
}

func NewAccountHandler(svc account.Service) *AccountHandler {
	return &AccountHandler{svc: svc}
}

func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	targetID, ok := selfOnly(w, r)
	if !ok {
		return
	}
	a, err := h.svc.Get(r.Context(), targetID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	targetID, ok := selfOnly(w, r)
	if !ok {
		return
	}
	var req domain.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.svc.Update(r.Context(), targetID, req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	targetID, ok := selfOnly(w, r)
	if !ok {
		return
	}
	var req changePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.svc.ChangePassword(r.Context(), targetID, req.CurrentPassword, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Password changed successfully")
}

// selfOnly resolves the {id} URL param and rejects requests targeting another
// account. There is no admin role on the platform.
func selfOnly(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	targetID := chi.URLParam(r, "id")
	if targetID != claims.AccountID {
		writeMessage(w, http.StatusForbidden, "cannot act on another account")
		return "", false
	}
	return targetID, true
}
