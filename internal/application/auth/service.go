package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/learnhub-api/internal/domain"
	"github.com/learnhub-api/internal/infrastructure/sns"
	tokeninfra "github.com/learnhub-api/internal/infrastructure/token"
	pkgtoken "github.com/learnhub-api/internal/pkg/token"
	"golang.org/x/crypto/bcrypt"
)

const resetTokenTTL = time.Hour

type LoginResult struct {
	Token   string
	Account *domain.Account
}

type Service interface {
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	VerifySession(tokenStr string) (*tokeninfra.Claims, error)
	RequestPasswordReset(ctx context.Context, email string) error
	CompletePasswordReset(ctx context.Context, resetToken, newPassword string) error
}

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByResetToken(ctx context.Context, resetToken string) (*domain.Account, error)
	SetResetToken(ctx context.Context, accountID, resetToken string, expiresAt int64) error
	CompleteReset(ctx context.Context, accountID, passwordHash string) error
}

type mailer interface {
	SendEmail(to, subject, htmlBody string) error
}

type sessionSigner interface {
	Sign(accountID, email string) (string, error)
	Verify(tokenStr string) (*tokeninfra.Claims, error)
}

type service struct {
	repo      accountStore
	mailer    mailer
	smsSender sns.SMSSender // optional; nil disables SMS alerts
	tokens    sessionSigner
	baseURL   string
}

type ServiceDeps struct {
	AccountRepo   accountStore
	Mailer        mailer
	SMSSender     sns.SMSSender
	TokenProvider sessionSigner
	PublicBaseURL string
}

func NewService(deps ServiceDeps) Service {
	return &service{
		repo:      deps.AccountRepo,
		mailer:    deps.Mailer,
		smsSender: deps.SMSSender,
		tokens:    deps.TokenProvider,
		baseURL:   strings.TrimRight(deps.PublicBaseURL, "/"),
	}
}

// Login authenticates by email and password. An unknown email and a wrong
// password produce the identical error so responses never reveal whether an
// account exists.
func (s *service) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	a, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	tok, err := s.tokens.Sign(a.AccountID, a.Email)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: tok, Account: a}, nil
}

// VerifySession validates signature and expiry. Every failure mode collapses
// to ErrInvalidToken.
func (s *service) VerifySession(tokenStr string) (*tokeninfra.Claims, error) {
	claims, err := s.tokens.Verify(tokenStr)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// RequestPasswordReset stores a fresh single-use token (overwriting any prior
// one) and emails a reset link. Unknown emails return success silently. A mail
// dispatch failure surfaces as ErrNotification but leaves the stored token
// valid.
func (s *service) RequestPasswordReset(ctx context.Context, email string) error {
	a, err := s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil
	}
	resetToken, err := pkgtoken.NewResetToken()
	if err != nil {
		return err
	}
	expiresAt := time.Now().Add(resetTokenTTL).Unix()
	if err := s.repo.SetResetToken(ctx, a.AccountID, resetToken, expiresAt); err != nil {
		return err
	}
	resetURL := fmt.Sprintf("%s/reset-password/%s", s.baseURL, resetToken)
	body := fmt.Sprintf(
		"<p>You requested a password reset.</p>"+
			"<p>Click this <a href=%q>link</a> to reset your password.</p>"+
			"<p>This link will expire in 1 hour.</p>"+
			"<p>If you didn't request this, please ignore this email.</p>",
		resetURL,
	)
	if err := s.mailer.SendEmail(a.Email, "Password Reset Request", body); err != nil {
		return fmt.Errorf("send reset email: %w", domain.ErrNotification)
	}
	return nil
}

// CompletePasswordReset consumes a reset token: the new hash is stored and the
// token cleared in a single update, so a second attempt with the same token
// fails. Expired tokens fail even when the token string matches.
func (s *service) CompletePasswordReset(ctx context.Context, resetToken, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("field 'newPassword' failed 'min': %w", domain.ErrValidation)
	}
	a, err := s.repo.GetByResetToken(ctx, resetToken)
	if err != nil {
		return domain.ErrInvalidResetToken
	}
	if a.ResetExpires <= time.Now().Unix() {
		return domain.ErrInvalidResetToken
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := s.repo.CompleteReset(ctx, a.AccountID, string(hash)); err != nil {
		return err
	}
	s.alertPasswordChanged(ctx, a)
	return nil
}

// alertPasswordChanged sends a best-effort SMS security alert. Failures are
// logged, never surfaced: the reset already succeeded.
func (s *service) alertPasswordChanged(ctx context.Context, a *domain.Account) {
	if s.smsSender == nil || a.PhoneNumber == "" {
		return
	}
	msg := "Your LearnHub password was just changed. If this wasn't you, contact support immediately."
	if err := s.smsSender.SendSMS(ctx, "+91"+a.PhoneNumber, msg); err != nil {
		slog.Warn("password-changed SMS alert failed", "account_id", a.AccountID, "err", err)
	}
}
