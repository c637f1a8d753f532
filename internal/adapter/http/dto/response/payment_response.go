package response

import (
	"time"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
)

type CheckoutSessionResponse struct {
	SessionID  string `json:"sessionId"`
	SessionURL string `json:"sessionUrl"`
}

type PaymentStatusResponse struct {
	PaymentStatus string `json:"paymentStatus"`
	BookingID     string `json:"bookingId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
}

type SessionBookingResponse struct {
	ID            string `json:"id"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	RoomNumber    int    `json:"roomNumber"`
	PaymentStatus string `json:"paymentStatus"`
	HotelName     string `json:"hotelName"`
}

type SessionStatusResponse struct {
	Success             bool                    `json:"success"`
	Message             string                  `json:"message,omitempty"`
	Booking             *SessionBookingResponse `json:"booking,omitempty"`
	StripeSessionStatus string                  `json:"stripeSessionStatus"`
	StripePaymentStatus string                  `json:"stripePaymentStatus"`
}

type WebhookAckResponse struct {
	Received bool `json:"received"`
}

func FromSessionStatus(s usecase.SessionStatus) SessionStatusResponse {
	resp := SessionStatusResponse{
		Success:             s.Booking != nil,
		StripeSessionStatus: s.SessionStatus,
		StripePaymentStatus: s.SessionPaymentStatus,
	}
	if s.Booking == nil {
		resp.Message = "booking not found for session"
		return resp
	}
	resp.Booking = &SessionBookingResponse{
		ID:            s.Booking.ID,
		CheckIn:       s.Booking.CheckIn.Format(time.RFC3339),
		CheckOut:      s.Booking.CheckOut.Format(time.RFC3339),
		FirstName:     s.Booking.FirstName,
		LastName:      s.Booking.LastName,
		RoomNumber:    s.Booking.RoomNumber,
		PaymentStatus: string(s.Booking.PaymentStatus),
		HotelName:     s.HotelName,
	}
	return resp
}
