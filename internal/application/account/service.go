package account

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/learnhub-api/internal/domain"
	"github.com/learnhub-api/internal/pkg/id"
	"github.com/learnhub-api/internal/pkg/validate"
	"golang.org/x/crypto/bcrypt"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldFirstName      = "first_name"
	fieldLastName       = "last_name"
	fieldEmail          = "email"
	fieldPhoneNumber    = "phone_number"
	fieldCourse         = "course"
	fieldTenthMarks     = "tenth_marks"
	fieldTwelfthMarks   = "twelfth_marks"
	fieldCPI            = "cpi"
	fieldYearOfStudy    = "year_of_study"
	fieldAchievements   = "achievements"
	fieldCertifications = "certifications"
	fieldProjects       = "projects"
	fieldInterests      = "interests"
	fieldPasswordHash   = "password_hash"
)

type Service interface {
	Register(ctx context.Context, req domain.CreateAccountRequest) (*domain.Account, error)
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	Update(ctx context.Context, accountID string, req domain.UpdateAccountRequest) (*domain.Account, error)
	ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error
}

type accountStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	Put(ctx context.Context, a *domain.Account) error
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	Update(ctx context.Context, accountID string, updates map[string]interface{}) error
}

type service struct {
	repo accountStore
}

func NewService(repo accountStore) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, req domain.CreateAccountRequest) (*domain.Account, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	a := &domain.Account{
		AccountID:      id.New(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          email,
		PhoneNumber:    req.PhoneNumber,
		PasswordHash:   string(hash),
		Course:         req.Course,
		TenthMarks:     req.TenthMarks,
		TwelfthMarks:   req.TwelfthMarks,
		CPI:            req.CPI,
		YearOfStudy:    req.YearOfStudy,
		Achievements:   req.Achievements,
		Certifications: req.Certifications,
		Projects:       req.Projects,
		Interests:      req.Interests,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.repo.Put(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *service) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	return s.repo.Get(ctx, accountID)
}

func (s *service) Update(ctx context.Context, accountID string, req domain.UpdateAccountRequest) (*domain.Account, error) {
	if err := validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), domain.ErrValidation)
	}
	updates := map[string]interface{}{}
	if req.FirstName != nil {
		updates[fieldFirstName] = *req.FirstName
	}
	if req.LastName != nil {
		updates[fieldLastName] = *req.LastName
	}
	if req.Email != nil {
		email := strings.ToLower(strings.TrimSpace(*req.Email))
		if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing.AccountID != accountID {
			return nil, fmt.Errorf("email already registered: %w", domain.ErrConflict)
		}
		updates[fieldEmail] = email
	}
	if req.PhoneNumber != nil {
		updates[fieldPhoneNumber] = *req.PhoneNumber
	}
	if req.Course != nil {
		updates[fieldCourse] = *req.Course
	}
	if req.TenthMarks != nil {
		updates[fieldTenthMarks] = *req.TenthMarks
	}
	if req.TwelfthMarks != nil {
		updates[fieldTwelfthMarks] = *req.TwelfthMarks
	}
	if req.CPI != nil {
		updates[fieldCPI] = *req.CPI
	}
	if req.YearOfStudy != nil {
		updates[fieldYearOfStudy] = *req.YearOfStudy
	}
	if req.Achievements != nil {
		updates[fieldAchievements] = *req.Achievements
	}
	if req.Certifications != nil {
		updates[fieldCertifications] = *req.Certifications
	}
	if req.Projects != nil {
		updates[fieldProjects] = *req.Projects
	}
	if req.Interests != nil {
		updates[fieldInterests] = *req.Interests
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, accountID)
	}
	if err := s.repo.Update(ctx, accountID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, accountID)
}

func (s *service) ChangePassword(ctx context.Context, accountID, currentPassword, newPassword string) error {
	if len(newPassword) < 6 {
		return fmt.Errorf("field 'password' failed 'min': %w", domain.ErrValidation)
	}
	a, err := s.repo.Get(ctx, accountID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(currentPassword)); err != nil {
		return fmt.Errorf("current password is incorrect: %w", domain.ErrInvalidCredentials)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.repo.Update(ctx, accountID, map[string]interface{}{fieldPasswordHash: string(hash)})
}
