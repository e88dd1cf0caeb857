package service

import (
	"context"
	"database/sql"

	authpkg "github.com/iliyamo/game-rental-store/internal/auth"
	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
	"github.com/iliyamo/game-rental-store/internal/utils"
)

// AdminService covers the manager-only mutation pipelines: catalog field
// updates and user administration. Every operation re-checks the caller's
// role against the store before touching anything.
//
// Two validations here are literal transcriptions of the product rules and
// look suspect on purpose: the phone number has a documented 20-character
// cap that is NOT enforced, and the overdue-games count rejects zero even
// though zero is the natural "none overdue" value. Both are preserved
// as-is and flagged in the test suite rather than silently fixed.
type AdminService struct {
	Users      *repository.UserRepo
	Catalog    *repository.CatalogRepo
	BcryptCost int
}

func NewAdminService(users *repository.UserRepo, catalog *repository.CatalogRepo, bcryptCost int) *AdminService {
	return &AdminService{Users: users, Catalog: catalog, BcryptCost: bcryptCost}
}

// ---- catalog administration ----

// GameExists is the pre-flight check run once before the surface enters
// the catalog update menu.
func (s *AdminService) GameExists(ctx context.Context, callerLogin, gameID string) (bool, error) {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return false, err
	}
	return s.Catalog.Exists(ctx, gameID)
}

// UpdateGameName sets the game name, length 1-300.
func (s *AdminService) UpdateGameName(ctx context.Context, callerLogin, gameID, name string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	if !lengthIn(name, 1, 300) {
		return ErrInvalidField
	}
	return s.Catalog.UpdateGameName(ctx, gameID, name)
}

// UpdateGenre sets the genre, length 1-30.
func (s *AdminService) UpdateGenre(ctx context.Context, callerLogin, gameID, genre string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	if !lengthIn(genre, 1, 30) {
		return ErrInvalidField
	}
	return s.Catalog.UpdateGenre(ctx, gameID, genre)
}

// UpdatePrice parses the value as a non-negative decimal and sets the
// price. Non-numeric input fails validation; there is no upper bound.
func (s *AdminService) UpdatePrice(ctx context.Context, callerLogin, gameID, value string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	cents, err := utils.ParsePrice(value)
	if err != nil {
		return ErrInvalidField
	}
	return s.Catalog.UpdatePriceCents(ctx, gameID, cents)
}

// UpdateDescription sets the description. Unconstrained; last write wins.
func (s *AdminService) UpdateDescription(ctx context.Context, callerLogin, gameID, description string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	return s.Catalog.UpdateDescription(ctx, gameID, description)
}

// UpdateImageURL sets the image reference, length 1-20.
func (s *AdminService) UpdateImageURL(ctx context.Context, callerLogin, gameID, url string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	if !lengthIn(url, 1, 20) {
		return ErrInvalidField
	}
	return s.Catalog.UpdateImageURL(ctx, gameID, url)
}

// ---- user administration ----
//
// Target existence is not verified: an update against a login that does
// not exist matches zero rows and silently succeeds.

// UpdateUserPassword replaces the target's credential. The 1-30 rule
// applies to the plaintext, which is then hashed before storage.
func (s *AdminService) UpdateUserPassword(ctx context.Context, callerLogin, targetLogin, password string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	if !lengthIn(password, 1, 30) {
		return ErrInvalidField
	}
	hash, err := authpkg.HashPassword(password, s.BcryptCost)
	if err != nil {
		return err
	}
	return s.Users.UpdatePasswordHash(ctx, targetLogin, hash)
}

// UpdateUserRole sets the target's role to one of the three known roles.
func (s *AdminService) UpdateUserRole(ctx context.Context, callerLogin, targetLogin string, role model.Role) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	if !role.Valid() {
		return ErrInvalidField
	}
	return s.Users.UpdateRole(ctx, targetLogin, role)
}

// ReplaceFavoriteGames overwrites the target's favorites list. This is the
// manager-side REPLACE semantics; the self-service path appends instead.
// The asymmetry is deliberate and kept as two distinct operations.
func (s *AdminService) ReplaceFavoriteGames(ctx context.Context, callerLogin, targetLogin, games string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	return s.Users.ReplaceFavGames(ctx, targetLogin, games)
}

// UpdateUserPhone sets the target's phone number. Only non-emptiness is
// enforced; the documented 20-character cap is not (see package comment).
func (s *AdminService) UpdateUserPhone(ctx context.Context, callerLogin, targetLogin, phone string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	if phone == "" {
		return ErrInvalidField
	}
	return s.Users.UpdatePhone(ctx, targetLogin, phone)
}

// UpdateOverdueCount sets the target's overdue-games counter. The count
// must be strictly positive; zero is rejected (see package comment).
func (s *AdminService) UpdateOverdueCount(ctx context.Context, callerLogin, targetLogin string, count int) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return err
	}
	if count <= 0 {
		return ErrInvalidField
	}
	return s.Users.UpdateOverdueCount(ctx, targetLogin, uint32(count))
}

// ViewUser returns the target's full row for the update menu's view
// option. Unlike the mutations, reading does report a missing target.
func (s *AdminService) ViewUser(ctx context.Context, callerLogin, targetLogin string) (model.User, error) {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleManager); err != nil {
		return model.User{}, err
	}
	u, err := s.Users.GetByLogin(ctx, targetLogin)
	if err == sql.ErrNoRows {
		return model.User{}, ErrNotFound
	}
	return u, err
}
