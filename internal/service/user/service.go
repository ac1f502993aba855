// Package user implements registration, login, and profile access.
package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"github.com/hourglass-hq/hourglass-backend/internal/domain"
)

// userRepo defines the user repository interface needed by the user service.
type userRepo interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// passwordHasher defines the password hashing interface needed by the user service.
type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) (bool, error)
}

// jwtManager defines the token interface needed by the user service.
type jwtManager interface {
	GenerateAccessToken(userID uuid.UUID, role string) (string, error)
}

// Service implements user account operations.
type Service struct {
	users     userRepo
	passwords passwordHasher
	jwt       jwtManager
	clock     clockwork.Clock
	log       *slog.Logger
}

// NewService creates a new user service.
func NewService(
	logger *slog.Logger,
	users userRepo,
	passwords passwordHasher,
	jwt jwtManager,
	clock clockwork.Clock,
) *Service {
	return &Service{
		users:     users,
		passwords: passwords,
		jwt:       jwt,
		clock:     clock,
		log:       logger.With("service", "user"),
	}
}

// AuthResult is the outcome of a successful register or login.
type AuthResult struct {
	User        *domain.User
	AccessToken string
}
