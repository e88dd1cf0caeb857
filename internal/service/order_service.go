package service

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/iliyamo/game-rental-store/internal/model"
	"github.com/iliyamo/game-rental-store/internal/repository"
)

// Initial tracking record values seeded at order placement.
const (
	initialTrackingStatus = "Order Placed"
	unknownField          = "N/A"
)

// ItemRequest is one (game, quantity) pairing requested by the caller
// before validation against the catalog.
type ItemRequest struct {
	GameID   string
	Quantity uint32
}

// OrderService implements the order placement pipeline: it validates the
// shopping list against catalog prices, computes the total and atomically
// creates the order, its line items and the initial tracking record.
type OrderService struct {
	DB               *sql.DB
	Catalog          *repository.CatalogRepo
	Orders           *repository.OrderRepo
	Tracking         *repository.TrackingRepo
	RentalPeriodDays int
}

func NewOrderService(db *sql.DB, catalog *repository.CatalogRepo, orders *repository.OrderRepo, tracking *repository.TrackingRepo, rentalPeriodDays int) *OrderService {
	return &OrderService{DB: db, Catalog: catalog, Orders: orders, Tracking: tracking, RentalPeriodDays: rentalPeriodDays}
}

// PlaceOrder validates the requested items and creates the order. Items
// naming an unknown game, or carrying a non-positive quantity, are
// excluded rather than aborting the order; their gameIDs come back in the
// skipped list so the surface can tell the caller. Quantities for a game
// requested twice merge into one line item. With zero accepted items the
// call returns ErrEmptyOrder and writes nothing.
//
// On success the returned order satisfies the placement invariants: the
// total equals the sum of price times quantity over the accepted items,
// one line item exists per accepted game, and exactly one tracking record
// with status "Order Placed" was created in the same transaction. Any
// store failure rolls the whole transaction back and surfaces as
// ErrPersistence.
func (s *OrderService) PlaceOrder(ctx context.Context, login string, items []ItemRequest) (*model.RentalOrder, []string, error) {
	accepted := make([]model.OrderItem, 0, len(items))
	index := make(map[string]int) // gameID -> position in accepted
	var skipped []string
	var totalCents int64

	for _, req := range items {
		if req.Quantity == 0 {
			skipped = append(skipped, req.GameID)
			continue
		}
		price, err := s.Catalog.PriceCents(ctx, req.GameID)
		if err == sql.ErrNoRows {
			skipped = append(skipped, req.GameID)
			continue
		}
		if err != nil {
			return nil, skipped, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
		totalCents += price * int64(req.Quantity)
		if i, ok := index[req.GameID]; ok {
			// same game twice: merge into the existing line item
			accepted[i].UnitsOrdered += req.Quantity
			continue
		}
		index[req.GameID] = len(accepted)
		accepted = append(accepted, model.OrderItem{GameID: req.GameID, UnitsOrdered: req.Quantity})
	}

	if len(accepted) == 0 {
		return nil, skipped, ErrEmptyOrder
	}

	// DATETIME columns carry second precision
	now := time.Now().UTC().Truncate(time.Second)
	order := &model.RentalOrder{
		Login:           login,
		NoOfGames:       uint32(len(accepted)),
		TotalPriceCents: totalCents,
		OrderTimestamp:  now,
		DueDate:         now.AddDate(0, 0, s.RentalPeriodDays),
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, skipped, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	defer tx.Rollback()

	if err := s.Orders.CreateTx(ctx, tx, order); err != nil {
		return nil, skipped, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	for i := range accepted {
		accepted[i].RentalOrderID = order.RentalOrderID
	}
	if err := s.Orders.CreateItemsBulkTx(ctx, tx, accepted); err != nil {
		return nil, skipped, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	tracking := &model.TrackingInfo{
		RentalOrderID:      order.RentalOrderID,
		Status:             initialTrackingStatus,
		CurrentLocation:    unknownField,
		CourierName:        unknownField,
		LastUpdateDate:     order.OrderTimestamp,
		AdditionalComments: "",
	}
	if err := s.Tracking.CreateTx(ctx, tx, tracking); err != nil {
		return nil, skipped, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	if err := tx.Commit(); err != nil {
		return nil, skipped, fmt.Errorf("%w: %v", ErrPersistence, err)
	}
	return order, skipped, nil
}
