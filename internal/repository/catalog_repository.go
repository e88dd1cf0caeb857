package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/utils"
)

// CatalogFilter selects one of the mutually exclusive browse modes. The
// modes are not composable; this mirrors the single-choice catalog menu.
type CatalogFilter int

const (
	FilterAll CatalogFilter = iota
	FilterByGenre
	FilterByMaxPrice
	SortPriceDesc
	SortPriceAsc
)

// CatalogQuery carries the browse mode and its argument, if any.
type CatalogQuery struct {
	Filter        CatalogFilter
	Genre         string // used by FilterByGenre
	MaxPriceCents int64  // used by FilterByMaxPrice
}

// CatalogRepo provides access to the 'catalog' table. Prices cross the
// boundary as integer cents and are bound to the DECIMAL(10,2) column as
// two-digit decimal strings.
type CatalogRepo struct{ DB *sql.DB }

func NewCatalogRepo(db *sql.DB) *CatalogRepo { return &CatalogRepo{DB: db} }

// Search returns the full projected row set for one browse mode.
func (r *CatalogRepo) Search(ctx context.Context, q CatalogQuery) ([]model.CatalogEntry, error) {
	query := "SELECT game_id, game_name, genre, price, description, image_url FROM catalog"
	args := []any{}

	switch q.Filter {
	case FilterByGenre:
		query += " WHERE genre = ?"
		args = append(args, q.Genre)
	case FilterByMaxPrice:
		query += " WHERE price <= ?"
		args = append(args, utils.FormatCents(q.MaxPriceCents))
	case SortPriceDesc:
		query += " ORDER BY price DESC"
	case SortPriceAsc:
		query += " ORDER BY price ASC"
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]model.CatalogEntry, 0)
	for rows.Next() {
		var e model.CatalogEntry
		var price string
		if err := rows.Scan(&e.GameID, &e.GameName, &e.Genre, &price, &e.Description, &e.ImageURL); err != nil {
			return nil, err
		}
		cents, err := utils.ParsePrice(price)
		if err != nil {
			return nil, err
		}
		e.PriceCents = cents
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// PriceCents returns the rental price of one game. sql.ErrNoRows signals an
// unknown gameID; order placement uses that to skip the item.
func (r *CatalogRepo) PriceCents(ctx context.Context, gameID string) (int64, error) {
	var price string
	err := r.DB.QueryRowContext(ctx,
		"SELECT price FROM catalog WHERE game_id=? LIMIT 1", gameID).Scan(&price)
	if err != nil {
		return 0, err
	}
	return utils.ParsePrice(price)
}

// Exists reports whether a catalog row exists. Used as the once-per-session
// pre-flight check before the catalog update menu.
func (r *CatalogRepo) Exists(ctx context.Context, gameID string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM catalog WHERE game_id=? LIMIT 1", gameID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// UpdateGameName sets the display name.
func (r *CatalogRepo) UpdateGameName(ctx context.Context, gameID, name string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE catalog SET game_name=? WHERE game_id=?", name, gameID)
	return err
}

// UpdateGenre sets the genre label.
func (r *CatalogRepo) UpdateGenre(ctx context.Context, gameID, genre string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE catalog SET genre=? WHERE game_id=?", genre, gameID)
	return err
}

// UpdatePriceCents sets the rental price.
func (r *CatalogRepo) UpdatePriceCents(ctx context.Context, gameID string, cents int64) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE catalog SET price=? WHERE game_id=?", utils.FormatCents(cents), gameID)
	return err
}

// UpdateDescription sets the description. Last write wins; applying the
// same value twice leaves the row identical to a single application.
func (r *CatalogRepo) UpdateDescription(ctx context.Context, gameID, description string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE catalog SET description=? WHERE game_id=?", description, gameID)
	return err
}

// UpdateImageURL sets the image reference.
func (r *CatalogRepo) UpdateImageURL(ctx context.Context, gameID, url string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE catalog SET image_url=? WHERE game_id=?", url, gameID)
	return err
}
