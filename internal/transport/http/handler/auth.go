package handler

import (
	"encoding/json"
	"net/http"

	"github.com/learnhub-api/internal/application/account"
	"github.com/learnhub-api/internal/application/auth"
	"github.com/learnhub-api/internal/domain"
	"github.com/learnhub-api/internal/transport/http/middleware"
)

const sessionCookieMaxAge = 24 * 60 * 60

// AuthHandler handles signup, login, session and password-reset endpoints.
type AuthHandler struct {
	authSvc    auth.Service
	accountSvc account.Service
}

func NewAuthHandler(authSvc auth.Service, accountSvc account.Service) *AuthHandler {
	return &AuthHandler{authSvc: authSvc, accountSvc: accountSvc}
}

func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	a, err := h.accountSvc.Register(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, MessageEnvelope{
		Message: "User registered successfully",
		UserID:  a.AccountID,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}
	result, err := h.authSvc.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "token",
		Value:    result.Token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   sessionCookieMaxAge,
	})
	writeJSON(w, http.StatusOK, LoginEnvelope{
		Message: "Login successful",
		User:    result.Account,
		Token:   result.Token,
	})
}

// Me returns the authenticated account's profile.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok {
		writeMessage(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	a, err := h.accountSvc.Get(r.Context(), claims.AccountID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a)
}

type requestResetRequest struct {
	Email string `json:"email"`
}

// RequestReset always answers 200 for well-formed input so responses carry no
// account-enumeration signal. Dispatch failures after the token is stored are
// the one exception and surface as 502.
func (h *AuthHandler) RequestReset(w http.ResponseWriter, r *http.Request) {
	var req requestResetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Email == "" {
		writeMessage(w, http.StatusBadRequest, "Email is required")
		return
	}
	if err := h.authSvc.RequestPasswordReset(r.Context(), req.Email); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "If that email is registered, a reset link has been sent")
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
}

func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" {
		writeMessage(w, http.StatusBadRequest, "Reset token is required")
		return
	}
	if err := h.authSvc.CompletePasswordReset(r.Context(), req.Token, req.NewPassword); err != nil {
		writeError(w, err)
		return
	}
	writeMessage(w, http.StatusOK, "Password has been reset successfully")
}
