package entities

import "time"

// PaymentStatus represents the payment outcome for a booking.
//
// Lifecycle: every booking starts as PENDING and moves to PAID exactly once,
// driven either by the Stripe webhook or by a direct session-status check.
// There is no transition out of PAID.

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

// PaymentMethod is how the guest paid. Stripe Checkout only collects card
// payments today; BANK_TRANSFER is kept for records imported from elsewhere.

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

// Booking is a hotel reservation persisted by the backend.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (hotel_id-index): hotel_id
//   - GSI2 (user_id-index): user_id
//
// UserID is the opaque subject issued by the identity provider, not a key
// into the local users table.

type Booking struct {
	ID            string        `json:"id"`
	HotelID       string        `json:"hotel_id"`
	UserID        string        `json:"user_id"`
	CheckIn       time.Time     `json:"check_in"`
	CheckOut      time.Time     `json:"check_out"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	Email         string        `json:"email"`
	PhoneNumber   string        `json:"phone_number"`
	RoomNumber    int           `json:"room_number"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	PaymentMethod PaymentMethod `json:"payment_method"`
	CreatedAt     time.Time     `json:"created_at"`
}
