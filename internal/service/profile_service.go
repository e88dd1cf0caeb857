package service

import (
	"context"
	"database/sql"

	authpkg "github.com/iliyamo/game-rental-store/internal/auth"
	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
)

// ProfileService covers self-service reads and updates of the caller's own
// account. No role applies: every user owns their profile. Note the
// favorites semantics: this path APPENDS to the list, while the manager
// administration path replaces it. These are two distinct operations.
type ProfileService struct {
	Users      *repository.UserRepo
	BcryptCost int
}

func NewProfileService(users *repository.UserRepo, bcryptCost int) *ProfileService {
	return &ProfileService{Users: users, BcryptCost: bcryptCost}
}

// View returns the caller's own row.
func (s *ProfileService) View(ctx context.Context, login string) (model.User, error) {
	u, err := s.Users.GetByLogin(ctx, login)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}

// AddFavoriteGame appends one game to the caller's favorites. Appending
// the same game twice records it twice; the operation is not idempotent.
func (s *ProfileService) AddFavoriteGame(ctx context.Context, login, game string) error {
	if game == "" {
		return ErrInvalidField
	}
	return s.Users.AppendFavGame(ctx, login, game)
}

// ChangePassword replaces the caller's credential, 1-30 plaintext rule.
func (s *ProfileService) ChangePassword(ctx context.Context, login, newPassword string) error {
	if !lengthIn(newPassword, 1, 30) {
		return ErrInvalidField
	}
	hash, err := authpkg.HashPassword(newPassword, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePasswordHash(ctx, login, hash)
}

// ChangePhone sets the caller's phone number, non-empty.
func (s *ProfileService) ChangePhone(ctx context.Context, login, phone string) error {
	if phone == "" {
		return ErrInvalidField
	}
	return s.Users.UpdatePhone(ctx, login, phone)
}
