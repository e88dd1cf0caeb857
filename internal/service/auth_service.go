package service

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-rental-store/internal/auth"
	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
)

// AuthService resolves identities and roles. Authentication is a pure
// read; registration creates customer accounts.
type AuthService struct {
	Users      *repository.UserRepo
	JWTSecret  string
	SessionTTL int // minutes
	BcryptCost int
}

func NewAuthService(users *repository.UserRepo, jwtSecret string, sessionTTLMin, bcryptCost int) *AuthService {
	return &AuthService{Users: users, JWTSecret: jwtSecret, SessionTTL: sessionTTLMin, BcryptCost: bcryptCost}
}

// Register creates a new customer account. Login is capped by the column
// width, the password follows the 1-30 rule applied to the plaintext, and
// the phone number must be non-empty.
func (s *AuthService) Register(ctx context.Context, login, password, phone string) error {
	if !lengthIn(login, 1, 50) || !lengthIn(password, 1, 30) || phone == "" {
		return ErrInvalidField
	}
	hash, err := auth.HashPassword(password, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.Users.Create(ctx, login, hash, phone)
}

// Authenticate verifies a login/password pair and issues a session. The
// returned token is the serialized session; the caller decides whether to
// retry on ErrInvalidCredentials.
func (s *AuthService) Authenticate(ctx context.Context, login, password string) (auth.Session, string, error) {
	u, err := s.Users.GetByLogin(ctx, login)
	if err != nil {
		if err == sql.ErrNoRows {
			return auth.Session{}, "", ErrInvalidCredentials
		}
		return auth.Session{}, "", err
	}
	if !auth.VerifyPassword(u.PasswordHash, password) {
		return auth.Session{}, "", ErrInvalidCredentials
	}
	token, sess, err := auth.NewSessionToken(s.JWTSecret, u.Login, u.Role, s.SessionTTL)
	if err != nil {
		return auth.Session{}, "", err
	}
	return sess, token, nil
}

// RoleOf reads the caller's current role from the store.
func (s *AuthService) RoleOf(ctx context.Context, login string) (model.Role, error) {
	role, err := s.Users.RoleOf(ctx, login)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrNotFound
		}
		return "", err
	}
	return role, nil
}

// requireRole is the single authorization guard for every privileged
// operation. It re-resolves the caller's role from the store (the role
// carried in the session is never trusted) and returns ErrForbidden when
// the resolved role is not in the allowed set. An unknown caller is also
// forbidden rather than not-found, so the guard leaks nothing.
func requireRole(ctx context.Context, users *repository.UserRepo, callerLogin string, allowed ...model.Role) (model.Role, error) {
	role, err := users.RoleOf(ctx, callerLogin)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", ErrForbidden
		}
		return "", err
	}
	for _, a := range allowed {
		if role == a {
			return role, nil
		}
	}
	return "", ErrForbidden
}

// lengthIn reports whether the string's length in bytes is within the
// inclusive window. Field limits are byte-oriented, matching the column
// widths they protect.
func lengthIn(s string, min, max int) bool {
	return len(s) >= min && len(s) <= max
}
