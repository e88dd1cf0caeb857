package service

import (
	"context"

	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
)

// TrackingService applies role-gated single-field updates to tracking
// records. There is no status state machine: any employee or manager may
// set any status string within the length window. Each update is one
// atomic single-row statement that also refreshes last_update_date.
type TrackingService struct {
	Users    *repository.UserRepo
	Tracking *repository.TrackingRepo
}

func NewTrackingService(users *repository.UserRepo, tracking *repository.TrackingRepo) *TrackingService {
	return &TrackingService{Users: users, Tracking: tracking}
}

// Exists is the pre-flight existence check run once before the surface
// enters the update menu. It is deliberately not chained with the updates
// that follow; in a single-session deployment that gap is benign.
func (s *TrackingService) Exists(ctx context.Context, trackingID uint64) (bool, error) {
	return s.Tracking.Exists(ctx, trackingID)
}

// UpdateStatus sets the status, length 1-50.
func (s *TrackingService) UpdateStatus(ctx context.Context, callerLogin string, trackingID uint64, status string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleEmployee, model.RoleManager); err != nil {
		return err
	}
	if !lengthIn(status, 1, 50) {
		return ErrInvalidField
	}
	return s.Tracking.UpdateStatus(ctx, trackingID, status)
}

// UpdateLocation sets the current location, length 1-60.
func (s *TrackingService) UpdateLocation(ctx context.Context, callerLogin string, trackingID uint64, location string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleEmployee, model.RoleManager); err != nil {
		return err
	}
	if !lengthIn(location, 1, 60) {
		return ErrInvalidField
	}
	return s.Tracking.UpdateLocation(ctx, trackingID, location)
}

// UpdateCourier sets the courier name, length 1-60.
func (s *TrackingService) UpdateCourier(ctx context.Context, callerLogin string, trackingID uint64, courier string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleEmployee, model.RoleManager); err != nil {
		return err
	}
	if !lengthIn(courier, 1, 60) {
		return ErrInvalidField
	}
	return s.Tracking.UpdateCourier(ctx, trackingID, courier)
}

// UpdateComments sets the additional comments. No length rule applies and
// the empty string is allowed.
func (s *TrackingService) UpdateComments(ctx context.Context, callerLogin string, trackingID uint64, comments string) error {
	if _, err := requireRole(ctx, s.Users, callerLogin, model.RoleEmployee, model.RoleManager); err != nil {
		return err
	}
	return s.Tracking.UpdateComments(ctx, trackingID, comments)
}
