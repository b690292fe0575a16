package domain

import "time"

// Account is a registered learner's stored identity and profile.
// PasswordHash, ResetToken and ResetExpires are never serialized to JSON.
type Account struct {
	AccountID      string  `json:"id" dynamodbav:"account_id"`
	FirstName      string  `json:"first_name" dynamodbav:"first_name"`
	LastName       string  `json:"last_name" dynamodbav:"last_name"`
	Email          string  `json:"email" dynamodbav:"email"`
	PhoneNumber    string  `json:"phone_number" dynamodbav:"phone_number"`
	PasswordHash   string  `json:"-" dynamodbav:"password_hash"`
	Course         string  `json:"course" dynamodbav:"course"`
	TenthMarks     float64 `json:"tenth_marks" dynamodbav:"tenth_marks"`
	TwelfthMarks   float64 `json:"twelfth_marks" dynamodbav:"twelfth_marks"`
	CPI            float64 `json:"cpi" dynamodbav:"cpi"`
	YearOfStudy    int     `json:"year_of_study" dynamodbav:"year_of_study"`
	Achievements   string  `json:"achievements,omitempty" dynamodbav:"achievements"`
	Certifications string  `json:"certifications,omitempty" dynamodbav:"certifications"`
	Projects       string  `json:"projects,omitempty" dynamodbav:"projects"`
	Interests      string  `json:"interests" dynamodbav:"interests"`

	// Reset-token attributes are absent from the item unless a reset is in
	// flight. ResetExpires is a Unix timestamp; the reset_token-index GSI is
	// sparse over reset_token.
	ResetToken   string `json:"-" dynamodbav:"reset_token,omitempty"`
	ResetExpires int64  `json:"-" dynamodbav:"reset_expires,omitempty"`

	CreatedAt time.Time `json:"created" dynamodbav:"created_at"`
	UpdatedAt time.Time `json:"updated" dynamodbav:"updated_at"`
}

// CreateAccountRequest is the signup payload. Field names follow the frontend
// form; validate tags enforce the input-boundary ranges.
type CreateAccountRequest struct {
	FirstName      string  `json:"firstName" validate:"required"`
	LastName       string  `json:"lastName" validate:"required"`
	Email          string  `json:"email" validate:"required,email"`
	PhoneNumber    string  `json:"phoneNumber" validate:"required,len=10,numeric"`
	Password       string  `json:"password" validate:"required,min=6,max=72"`
	Course         string  `json:"course" validate:"required"`
	TenthMarks     float64 `json:"tenthMarks" validate:"gte=0,lte=100"`
	TwelfthMarks   float64 `json:"twelfthMarks" validate:"gte=0,lte=100"`
	CPI            float64 `json:"cpi" validate:"gte=0,lte=10"`
	YearOfStudy    int     `json:"yearOfStudy" validate:"required,gte=1,lte=4"`
	Achievements   string  `json:"achievements"`
	Certifications string  `json:"certifications"`
	Projects       string  `json:"projects"`
	Interests      string  `json:"interests" validate:"required"`
}

// UpdateAccountRequest is a partial profile update. Password changes go
// through the dedicated change-password operation, never through here.
type UpdateAccountRequest struct {
	FirstName      *string  `json:"firstName"`
	LastName       *string  `json:"lastName"`
	Email          *string  `json:"email" validate:"omitempty,email"`
	PhoneNumber    *string  `json:"phoneNumber" validate:"omitempty,len=10,numeric"`
	Course         *string  `json:"course"`
	TenthMarks     *float64 `json:"tenthMarks" validate:"omitempty,gte=0,lte=100"`
	TwelfthMarks   *float64 `json:"twelfthMarks" validate:"omitempty,gte=0,lte=100"`
	CPI            *float64 `json:"cpi" validate:"omitempty,gte=0,lte=10"`
	YearOfStudy    *int     `json:"yearOfStudy" validate:"omitempty,gte=1,lte=4"`
	Achievements   *string  `json:"achievements"`
	Certifications *string  `json:"certifications"`
	Projects       *string  `json:"projects"`
	Interests      *string  `json:"interests"`
}
