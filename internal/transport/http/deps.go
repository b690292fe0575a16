package http

import (
	"context"
	"io"

	"github.com/learnhub-api/internal/domain"
	"github.com/learnhub-api/internal/infrastructure/smtp"
	"github.com/learnhub-api/internal/infrastructure/sns"
	tokeninfra "github.com/learnhub-api/internal/infrastructure/token"
)

// AccountRepository is the minimal interface the router requires from an
// account store.
type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	GetByResetToken(ctx context.Context, resetToken string) (*domain.Account, error)
	Put(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	Update(ctx context.Context, accountID string, updates map[string]interface{}) error
	SetResetToken(ctx context.Context, accountID, resetToken string, expiresAt int64) error
	CompleteReset(ctx context.Context, accountID, passwordHash string) error
}

// DocumentRepository is the minimal interface the router requires from a
// document store.
type DocumentRepository interface {
	Put(ctx context.Context, d *domain.Document) error
	Get(ctx context.Context, documentID string) (*domain.Document, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Document, error)
	SoftDelete(ctx context.Context, documentID string) error
}

// ObjectStore is the minimal interface the router requires from an object
// storage backend.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Deps holds all infrastructure dependencies for the router.
type Deps struct {
	AccountRepo   AccountRepository
	DocumentRepo  DocumentRepository
	ObjectStore   ObjectStore
	Mailer        smtp.Mailer
	SMSSender     sns.SMSSender
	TokenProvider *tokeninfra.Provider
}
