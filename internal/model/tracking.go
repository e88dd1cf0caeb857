package model

import "time"

// TrackingInfo is the shipment record attached one-to-one to a rental
// order, stored in the `tracking_info` table. It is created in the same
// transaction as its order with status "Order Placed" and afterwards
// mutated one field at a time by employees and managers. Status is free
// text, not a closed enum.
//
// Fields:
//  TrackingID         – generated primary key.
//  RentalOrderID      – the order this record tracks (unique).
//  Status             – free-text status, up to 50 characters.
//  CurrentLocation    – up to 60 characters.
//  CourierName        – up to 60 characters.
//  LastUpdateDate     – set on creation and on every field update.
//  AdditionalComments – unconstrained free text, may be empty.
type TrackingInfo struct {
	TrackingID         uint64    // tracking_info.tracking_id
	RentalOrderID      uint64    // tracking_info.rental_order_id
	Status             string    // tracking_info.status
	CurrentLocation    string    // tracking_info.current_location
	CourierName        string    // tracking_info.courier_name
	LastUpdateDate     time.Time // tracking_info.last_update_date
	AdditionalComments string    // tracking_info.additional_comments
}
