package models

// BookingRequest carries everything the booking engine needs to place an
// order. The rate is deliberately absent: the engine re-resolves it from the
// catalog and never trusts a caller-supplied price.
type BookingRequest struct {
	UserID      string
	UserName    string
	ChcID       string
	EquipmentID string
	Hours       int
	Mode        BookingMode
}

// BookingReceipt is the structured result of a successful booking.
type BookingReceipt struct {
	OrderID       string `json:"orderId"`
	EquipmentName string `json:"equipmentName"`
	BookingHrs    int    `json:"bookingHrs"`
	EstimatedCost int64  `json:"estimatedCost"`
	DeliveryOTP   string `json:"deliveryOtp"`
	Message       string `json:"message"`
}
