package service

import (
	"context"
	"database/sql"

	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
)

// recentOrdersLimit caps the short history listing.
const recentOrdersLimit = 5

// VisibilityService decides, per caller and ownership, which orders and
// tracking records may be read. The rule: the owner always sees their own
// record; employees and managers see any record; everyone else gets
// ErrNotFound, never ErrForbidden, so a denied lookup is indistinguishable
// from a missing record.
type VisibilityService struct {
	Users    *repository.UserRepo
	Orders   *repository.OrderRepo
	Tracking *repository.TrackingRepo
}

func NewVisibilityService(users *repository.UserRepo, orders *repository.OrderRepo, tracking *repository.TrackingRepo) *VisibilityService {
	return &VisibilityService{Users: users, Orders: orders, Tracking: tracking}
}

// VisibleOrder resolves a single-order lookup. The owner-scoped query runs
// first; only when it comes back empty is the caller's role consulted for
// the staff-wide retry.
func (s *VisibilityService) VisibleOrder(ctx context.Context, callerLogin string, orderID uint64) (*model.OrderDetail, error) {
	det, err := s.Orders.GetDetailForUser(ctx, orderID, callerLogin)
	if err == nil {
		return det, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}
	if err := s.staffOnly(ctx, callerLogin); err != nil {
		return nil, err
	}
	det, err = s.Orders.GetDetail(ctx, orderID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return det, err
}

// VisibleTracking resolves a single tracking-record lookup under the same
// rule as VisibleOrder.
func (s *VisibilityService) VisibleTracking(ctx context.Context, callerLogin string, trackingID uint64) (*model.TrackingInfo, error) {
	t, err := s.Tracking.GetForUser(ctx, trackingID, callerLogin)
	if err == nil {
		return t, nil
	}
	if err != sql.ErrNoRows {
		return nil, err
	}
	if err := s.staffOnly(ctx, callerLogin); err != nil {
		return nil, err
	}
	t, err = s.Tracking.Get(ctx, trackingID)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	return t, err
}

// staffOnly gates the cross-ownership retry. Every denial comes back as
// ErrNotFound, never ErrForbidden.
func (s *VisibilityService) staffOnly(ctx context.Context, callerLogin string) error {
	role, err := s.Users.RoleOf(ctx, callerLogin)
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	if !role.Staff() {
		return ErrNotFound
	}
	return nil
}

// AllOrders lists the caller's complete order history, newest first.
// History listings never cross ownership; only the single-order lookup
// extends to staff.
func (s *VisibilityService) AllOrders(ctx context.Context, login string) ([]model.OrderSummary, error) {
	return s.Orders.ListByLogin(ctx, login)
}

// RecentOrders lists the caller's five newest orders.
func (s *VisibilityService) RecentOrders(ctx context.Context, login string) ([]model.OrderSummary, error) {
	return s.Orders.ListRecentByLogin(ctx, login, recentOrdersLimit)
}
