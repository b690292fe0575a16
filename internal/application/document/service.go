package document

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/learnhub-api/internal/domain"
	"github.com/learnhub-api/internal/pkg/id"
)

type UploadInput struct {
	Reader      io.Reader
	Filename    string
	ContentType string
	Size        int64
	AccountID   string
}

type Service interface {
	Upload(ctx context.Context, input UploadInput) (*domain.Document, error)
	List(ctx context.Context, accountID string) ([]domain.Document, error)
	Download(ctx context.Context, documentID, requesterID string) (io.ReadCloser, *domain.Document, error)
	Delete(ctx context.Context, documentID, requesterID string) error
}

type documentStore interface {
	Put(ctx context.Context, d *domain.Document) error
	Get(ctx context.Context, documentID string) (*domain.Document, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.Document, error)
	SoftDelete(ctx context.Context, documentID string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	Download(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type service struct {
	objects objectStore
	repo    documentStore
}

func NewService(objects objectStore, repo documentStore) Service {
	return &service{objects: objects, repo: repo}
}

func (s *service) Upload(ctx context.Context, input UploadInput) (*domain.Document, error) {
	safeName := sanitizeFilename(input.Filename)
	key := fmt.Sprintf("resumes/%s/%s", input.AccountID, safeName)
	hasher := sha256.New()
	tee := io.TeeReader(input.Reader, hasher)
	if _, err := s.objects.Upload(ctx, key, tee, input.ContentType); err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	d := &domain.Document{
		DocumentID: id.New(),
		AccountID:  input.AccountID,
		Object:     key,
		Name:       safeName,
		Type:       input.ContentType,
		Size:       input.Size,
		Hash:       hex.EncodeToString(hasher.Sum(nil)),
		Enable:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Put(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *service) List(ctx context.Context, accountID string) ([]domain.Document, error) {
	return s.repo.ListByAccount(ctx, accountID)
}

func (s *service) Download(ctx context.Context, documentID, requesterID string) (io.ReadCloser, *domain.Document, error) {
	d, err := s.load(ctx, documentID, requesterID)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.objects.Download(ctx, d.Object)
	if err != nil {
		return nil, nil, err
	}
	return rc, d, nil
}

func (s *service) Delete(ctx context.Context, documentID, requesterID string) error {
	d, err := s.load(ctx, documentID, requesterID)
	if err != nil {
		return err
	}
	if err := s.objects.Delete(ctx, d.Object); err != nil {
		return err
	}
	return s.repo.SoftDelete(ctx, documentID)
}

// load fetches a document and enforces ownership. Documents belong to exactly
// one account; there is no sharing model.
func (s *service) load(ctx context.Context, documentID, requesterID string) (*domain.Document, error) {
	d, err := s.repo.Get(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if !d.Enable {
		return nil, fmt.Errorf("document not found: %w", domain.ErrNotFound)
	}
	if d.AccountID != requesterID {
		return nil, fmt.Errorf("access denied: %w", domain.ErrForbidden)
	}
	return d, nil
}

// sanitizeFilename strips directory components and keeps only safe characters
// (alphanumeric, dot, dash, underscore) to prevent path traversal in S3 keys.
func sanitizeFilename(name string) string {
	name = path.Base(name)
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if result := b.String(); result != "" && result != "." {
		return result
	}
	return "_"
}
