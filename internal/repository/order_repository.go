package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/utils"
)

// OrderRepo provides access to the 'rental_orders' and 'games_in_order'
// tables. Orders are only ever created inside the placement transaction;
// there is no update path after creation. All timestamp columns are UTC.
type OrderRepo struct{ DB *sql.DB }

func NewOrderRepo(db *sql.DB) *OrderRepo { return &OrderRepo{DB: db} }

// CreateTx inserts a new order within the scope of an existing transaction
// and populates the generated rental order ID on the provided record. The
// AUTO_INCREMENT key claimed through LastInsertId is the persistence-backed
// sequence that keeps order IDs unique under concurrent placement. The
// caller must commit or rollback the transaction.
func (r *OrderRepo) CreateTx(ctx context.Context, tx *sql.Tx, order *model.RentalOrder) error {
	const q = `INSERT INTO rental_orders (login, no_of_games, total_price, order_timestamp, due_date) VALUES (?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		order.Login, order.NoOfGames, utils.FormatCents(order.TotalPriceCents),
		order.OrderTimestamp, order.DueDate)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	order.RentalOrderID = uint64(id)
	return nil
}

// CreateItemsBulkTx inserts all line items of an order in a single
// statement within the provided transaction. Each record must carry the
// generated rental order ID. Passing an empty slice has no effect and
// returns nil.
func (r *OrderRepo) CreateItemsBulkTx(ctx context.Context, tx *sql.Tx, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	query := `INSERT INTO games_in_order (game_id, rental_order_id, units_ordered) VALUES `
	args := make([]any, 0, len(items)*3)
	for i, it := range items {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?)"
		args = append(args, it.GameID, it.RentalOrderID, it.UnitsOrdered)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// GetDetailForUser returns a single order with its tracking ID and named
// line items, restricted to the given owner. sql.ErrNoRows is returned
// both when the order does not exist and when it belongs to someone else;
// the visibility resolver relies on the two cases being indistinguishable.
func (r *OrderRepo) GetDetailForUser(ctx context.Context, orderID uint64, login string) (*model.OrderDetail, error) {
	const q = `SELECT r.rental_order_id, r.login, r.total_price, r.order_timestamp, r.due_date, t.tracking_id
               FROM rental_orders r
               JOIN tracking_info t ON t.rental_order_id = r.rental_order_id
               WHERE r.rental_order_id = ? AND r.login = ?`
	return r.detail(ctx, q, orderID, login)
}

// GetDetail returns a single order regardless of ownership. It backs the
// staff read path of the visibility resolver.
func (r *OrderRepo) GetDetail(ctx context.Context, orderID uint64) (*model.OrderDetail, error) {
	const q = `SELECT r.rental_order_id, r.login, r.total_price, r.order_timestamp, r.due_date, t.tracking_id
               FROM rental_orders r
               JOIN tracking_info t ON t.rental_order_id = r.rental_order_id
               WHERE r.rental_order_id = ?`
	return r.detail(ctx, q, orderID)
}

func (r *OrderRepo) detail(ctx context.Context, query string, args ...any) (*model.OrderDetail, error) {
	var det model.OrderDetail
	var total string
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&det.RentalOrderID, &det.Login, &total, &det.OrderTimestamp, &det.DueDate, &det.TrackingID)
	if err != nil {
		return nil, err
	}
	cents, err := utils.ParsePrice(total)
	if err != nil {
		return nil, err
	}
	det.TotalPriceCents = cents

	// Line items in a second query, named through the catalog join and
	// ordered by name for deterministic output.
	const lineQ = `SELECT g.game_id, c.game_name, g.units_ordered
               FROM games_in_order g
               JOIN catalog c ON c.game_id = g.game_id
               WHERE g.rental_order_id = ?
               ORDER BY c.game_name`
	rows, err := r.DB.QueryContext(ctx, lineQ, det.RentalOrderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	det.Lines = make([]model.OrderLine, 0)
	for rows.Next() {
		var l model.OrderLine
		if err := rows.Scan(&l.GameID, &l.GameName, &l.UnitsOrdered); err != nil {
			return nil, err
		}
		det.Lines = append(det.Lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &det, nil
}

// ListByLogin returns the full order history of one user, newest first.
// History listings are always owner-scoped; there is no staff variant.
func (r *OrderRepo) ListByLogin(ctx context.Context, login string) ([]model.OrderSummary, error) {
	const q = `SELECT rental_order_id, total_price, order_timestamp, due_date
               FROM rental_orders
               WHERE login = ?
               ORDER BY order_timestamp DESC`
	return r.list(ctx, q, login)
}

// ListRecentByLogin returns the newest orders of one user up to limit.
func (r *OrderRepo) ListRecentByLogin(ctx context.Context, login string, limit int) ([]model.OrderSummary, error) {
	const q = `SELECT rental_order_id, total_price, order_timestamp, due_date
               FROM rental_orders
               WHERE login = ?
               ORDER BY order_timestamp DESC
               LIMIT ?`
	return r.list(ctx, q, login, limit)
}

func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]model.OrderSummary, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	summaries := make([]model.OrderSummary, 0)
	for rows.Next() {
		var s model.OrderSummary
		var total string
		if err := rows.Scan(&s.RentalOrderID, &total, &s.OrderTimestamp, &s.DueDate); err != nil {
			return nil, err
		}
		cents, err := utils.ParsePrice(total)
		if err != nil {
			return nil, err
		}
		s.TotalPriceCents = cents
		summaries = append(summaries, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return summaries, nil
}
