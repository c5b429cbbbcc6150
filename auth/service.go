package auth

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tripai/db"
	"tripai/models"
)

// ErrInvalidCredentials covers both an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserStore is the credential lookup the service depends on.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
}

// dummyHash is compared against when the email is unknown so both failure
// paths cost one bcrypt comparison.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("tripai-placeholder"), bcrypt.DefaultCost)

type Service struct {
	users  UserStore
	logger *zap.Logger
}

func NewService(users UserStore, logger *zap.Logger) *Service {
	return &Service{users: users, logger: logger}
}

// Login verifies the credentials and returns the record without its hash.
func (s *Service) Login(ctx context.Context, email, password string) (*models.PublicUser, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, db.ErrUserNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, errors.Wrap(err, "lookup credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	public := user.Public()
	s.logger.Debug("login succeeded", zap.String("userID", public.ID))
	return &public, nil
}
