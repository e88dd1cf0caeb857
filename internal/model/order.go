package model

import "time"

// RentalOrder records a placed order as stored in the `rental_orders`
// table. Orders are immutable after creation; the total equals the sum of
// price times quantity over the order's line items as evaluated at
// placement time (prices are not re-validated later).
//
// Fields:
//  RentalOrderID   – generated primary key.
//  Login           – owner of the order.
//  NoOfGames       – number of distinct line items.
//  TotalPriceCents – order total in cents.
//  OrderTimestamp  – placement time (UTC).
//  DueDate         – return deadline (UTC).
type RentalOrder struct {
	RentalOrderID   uint64    // rental_orders.rental_order_id
	Login           string    // rental_orders.login
	NoOfGames       uint32    // rental_orders.no_of_games
	TotalPriceCents int64     // rental_orders.total_price (DECIMAL(10,2))
	OrderTimestamp  time.Time // rental_orders.order_timestamp
	DueDate         time.Time // rental_orders.due_date
}

// OrderItem is one line item of a rental order as stored in the
// `games_in_order` table. The pair (GameID, RentalOrderID) is the primary
// key, so a game appears at most once per order.
type OrderItem struct {
	GameID        string // games_in_order.game_id
	RentalOrderID uint64 // games_in_order.rental_order_id
	UnitsOrdered  uint32 // games_in_order.units_ordered
}

// OrderLine is a line item joined with its catalog name for display.
type OrderLine struct {
	GameID       string
	GameName     string
	UnitsOrdered uint32
}

// OrderDetail aggregates an order with its tracking ID and named line
// items. It is the projection returned by the visibility resolver for a
// single-order lookup.
type OrderDetail struct {
	RentalOrderID   uint64
	Login           string
	TotalPriceCents int64
	OrderTimestamp  time.Time
	DueDate         time.Time
	TrackingID      uint64
	Lines           []OrderLine
}

// OrderSummary is one row of an order history listing.
type OrderSummary struct {
	RentalOrderID   uint64
	TotalPriceCents int64
	OrderTimestamp  time.Time
	DueDate         time.Time
}
