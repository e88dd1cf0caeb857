package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/iliyamo/game-rental-store/internal/model"
)

// UserRepo provides access to the 'users' table.
type UserRepo struct{ DB *sql.DB }

func NewUserRepo(db *sql.DB) *UserRepo { return &UserRepo{DB: db} }

var ErrLoginExists = errors.New("login already exists")

// Create inserts a new customer row. New registrations always start as
// customers with no favorites and no overdue games; role promotion is a
// manager operation.
func (r *UserRepo) Create(ctx context.Context, login, passwordHash, phone string) error {
	login = strings.TrimSpace(login)
	_, err := r.DB.ExecContext(ctx,
		"INSERT INTO users (login, password_hash, role, fav_games, phone_num, num_overdue_games) VALUES (?,?,?,?,?,0)",
		login, passwordHash, model.RoleCustomer, "", phone)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrLoginExists
		}
		return err
	}
	return nil
}

// GetByLogin fetches a user row. sql.ErrNoRows signals an unknown login.
func (r *UserRepo) GetByLogin(ctx context.Context, login string) (model.User, error) {
	var u model.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT login,password_hash,role,fav_games,phone_num,num_overdue_games,created_at,updated_at FROM users WHERE login=? LIMIT 1",
		login).Scan(&u.Login, &u.PasswordHash, &u.Role, &u.FavGames, &u.PhoneNum, &u.NumOverdueGames, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// RoleOf reads only the role column. Privileged services call this before
// every mutation instead of trusting the role cached in the session.
func (r *UserRepo) RoleOf(ctx context.Context, login string) (model.Role, error) {
	var role model.Role
	err := r.DB.QueryRowContext(ctx,
		"SELECT role FROM users WHERE login=? LIMIT 1", login).Scan(&role)
	return role, err
}

// The single-field update statements below intentionally do not verify that
// the target row exists; an UPDATE matching zero rows succeeds silently,
// matching the administration contract.

// UpdatePasswordHash replaces the stored credential.
func (r *UserRepo) UpdatePasswordHash(ctx context.Context, login, hash string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET password_hash=? WHERE login=?", hash, login)
	return err
}

// UpdateRole sets the user's role.
func (r *UserRepo) UpdateRole(ctx context.Context, login string, role model.Role) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET role=? WHERE login=?", role, login)
	return err
}

// ReplaceFavGames overwrites the favorites list. This is the manager-side
// semantics; the self-service path appends instead (AppendFavGame).
func (r *UserRepo) ReplaceFavGames(ctx context.Context, login, games string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET fav_games=? WHERE login=?", games, login)
	return err
}

// AppendFavGame adds one game to the comma-joined favorites list. Applying
// the same game twice yields "A, A"; the append is deliberately not
// idempotent.
func (r *UserRepo) AppendFavGame(ctx context.Context, login, game string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET fav_games=IF(fav_games='',?,CONCAT(fav_games,', ',?)) WHERE login=?",
		game, game, login)
	return err
}

// UpdatePhone sets the phone number.
func (r *UserRepo) UpdatePhone(ctx context.Context, login, phone string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET phone_num=? WHERE login=?", phone, login)
	return err
}

// UpdateOverdueCount sets the overdue-games counter.
func (r *UserRepo) UpdateOverdueCount(ctx context.Context, login string, count uint32) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE users SET num_overdue_games=? WHERE login=?", count, login)
	return err
}
