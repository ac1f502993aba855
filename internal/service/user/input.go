package user

import (
	"net/mail"
	"strings"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

const (
	minPasswordLen = 8
	maxPasswordLen = 72 // bcrypt input limit
	maxNameLen     = 200
)

// RegisterInput carries the parameters for creating an account.
type RegisterInput struct {
	Email    string
	Name     string
	Password string
}

// Validate checks structural validity; email and name are normalized in place.
func (in *RegisterInput) Validate() error {
	var errs []domain.FieldError

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	} else if _, err := mail.ParseAddress(in.Email); err != nil {
		errs = append(errs, domain.FieldError{Field: "email", Message: "invalid email address"})
	}

	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	} else if len(in.Name) > maxNameLen {
		errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
	}

	if len(in.Password) < minPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too short"})
	} else if len(in.Password) > maxPasswordLen {
		errs = append(errs, domain.FieldError{Field: "password", Message: "too long"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// LoginInput carries login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Validate checks structural validity; email is normalized in place.
func (in *LoginInput) Validate() error {
	var errs []domain.FieldError

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Email == "" {
		errs = append(errs, domain.FieldError{Field: "email", Message: "required"})
	}
	if in.Password == "" {
		errs = append(errs, domain.FieldError{Field: "password", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
