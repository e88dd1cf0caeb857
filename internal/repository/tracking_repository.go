package repository

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-rental-store/internal/model"
)

// TrackingRepo provides access to the 'tracking_info' table. Exactly one
// tracking row exists per order; it is created inside the placement
// transaction and afterwards mutated one field at a time. Every field
// update also refreshes last_update_date in the same single-row statement.
type TrackingRepo struct{ DB *sql.DB }

func NewTrackingRepo(db *sql.DB) *TrackingRepo { return &TrackingRepo{DB: db} }

// CreateTx inserts the initial tracking row for a freshly placed order
// within the placement transaction and populates the generated tracking ID
// on the provided record.
func (r *TrackingRepo) CreateTx(ctx context.Context, tx *sql.Tx, t *model.TrackingInfo) error {
	const q = `INSERT INTO tracking_info (rental_order_id, status, current_location, courier_name, last_update_date, additional_comments) VALUES (?, ?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, q,
		t.RentalOrderID, t.Status, t.CurrentLocation, t.CourierName,
		t.LastUpdateDate, t.AdditionalComments)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	t.TrackingID = uint64(id)
	return nil
}

// Exists reports whether a tracking row exists. Used as the
// once-per-session pre-flight check before the tracking update menu.
func (r *TrackingRepo) Exists(ctx context.Context, trackingID uint64) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM tracking_info WHERE tracking_id=? LIMIT 1", trackingID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetForUser returns a tracking row restricted to the owner of its order.
// sql.ErrNoRows is returned both for absent rows and for rows owned by
// someone else, keeping the two indistinguishable to the caller.
func (r *TrackingRepo) GetForUser(ctx context.Context, trackingID uint64, login string) (*model.TrackingInfo, error) {
	const q = `SELECT t.tracking_id, t.rental_order_id, t.status, t.current_location, t.courier_name, t.last_update_date, t.additional_comments
               FROM tracking_info t
               JOIN rental_orders r ON r.rental_order_id = t.rental_order_id
               WHERE t.tracking_id = ? AND r.login = ?`
	return r.get(ctx, q, trackingID, login)
}

// Get returns a tracking row regardless of ownership (staff read path).
func (r *TrackingRepo) Get(ctx context.Context, trackingID uint64) (*model.TrackingInfo, error) {
	const q = `SELECT t.tracking_id, t.rental_order_id, t.status, t.current_location, t.courier_name, t.last_update_date, t.additional_comments
               FROM tracking_info t
               WHERE t.tracking_id = ?`
	return r.get(ctx, q, trackingID)
}

func (r *TrackingRepo) get(ctx context.Context, query string, args ...any) (*model.TrackingInfo, error) {
	var t model.TrackingInfo
	err := r.DB.QueryRowContext(ctx, query, args...).Scan(
		&t.TrackingID, &t.RentalOrderID, &t.Status, &t.CurrentLocation,
		&t.CourierName, &t.LastUpdateDate, &t.AdditionalComments)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateStatus sets the free-text status.
func (r *TrackingRepo) UpdateStatus(ctx context.Context, trackingID uint64, status string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE tracking_info SET status=?, last_update_date=UTC_TIMESTAMP() WHERE tracking_id=?",
		status, trackingID)
	return err
}

// UpdateLocation sets the current location.
func (r *TrackingRepo) UpdateLocation(ctx context.Context, trackingID uint64, location string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE tracking_info SET current_location=?, last_update_date=UTC_TIMESTAMP() WHERE tracking_id=?",
		location, trackingID)
	return err
}

// UpdateCourier sets the courier name.
func (r *TrackingRepo) UpdateCourier(ctx context.Context, trackingID uint64, courier string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE tracking_info SET courier_name=?, last_update_date=UTC_TIMESTAMP() WHERE tracking_id=?",
		courier, trackingID)
	return err
}

// UpdateComments sets the additional comments, which may be empty.
func (r *TrackingRepo) UpdateComments(ctx context.Context, trackingID uint64, comments string) error {
	_, err := r.DB.ExecContext(ctx,
		"UPDATE tracking_info SET additional_comments=?, last_update_date=UTC_TIMESTAMP() WHERE tracking_id=?",
		comments, trackingID)
	return err
}
