package models

import "time"

// OrderStatus is the lifecycle state of an order. This service only ever
// writes Pending; the remaining transitions are driven by back-office staff
// and observed through the order stream.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusAllocated OrderStatus = "Allocated"
	StatusDelivered OrderStatus = "Delivered"
	StatusReturned  OrderStatus = "Returned"
)

// BookingMode records which entry point created an order.
type BookingMode string

const (
	ModeApp      BookingMode = "app"
	ModeVoiceBot BookingMode = "voice-bot"
)

// Order represents a rental order document. Field names follow the persisted
// collection schema shared with back-office tooling, so they must not change.
type Order struct {
	ID            string      `bson:"id" json:"id"`
	EquipmentID   string      `bson:"equipmentId" json:"equipmentId"`
	EquipmentName string      `bson:"equipmentName" json:"equipmentName"` // denormalized at booking time
	EquipmentRent int64       `bson:"equipmentRent" json:"equipmentRent"` // hourly rate snapshot (₹/hr), never re-synced
	BookingHrs    int         `bson:"bookingHrs" json:"bookingHrs"`
	EstimatedCost int64       `bson:"estimatedCost" json:"estimatedCost"` // equipmentRent * bookingHrs, computed once
	DeliveryOTP   string      `bson:"deliveryOtp" json:"deliveryOtp"`     // 4-digit handoff code, write-once
	Status        OrderStatus `bson:"status" json:"status"`
	BookingMode   BookingMode `bson:"bookingMode" json:"bookingMode"`
	UserID        string      `bson:"userId" json:"userId"`
	UserName      string      `bson:"userName" json:"userName"`
	ChcID         string      `bson:"chcId" json:"chcId"`
	CreatedAt     time.Time   `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time   `bson:"updatedAt" json:"updatedAt"`
}

// ShortID returns the first four characters of the order id, the form shown
// in receipts and status banners.
func (o *Order) ShortID() string {
	if len(o.ID) <= 4 {
		return o.ID
	}
	return o.ID[:4]
}
