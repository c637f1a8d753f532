package response

import (
	"time"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
)

type BookingResponse struct {
	ID            string `json:"id"`
	HotelID       string `json:"hotelId"`
	UserID        string `json:"userId"`
	CheckIn       string `json:"checkIn"`
	CheckOut      string `json:"checkOut"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phoneNumber"`
	RoomNumber    int    `json:"roomNumber"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
}

type GuestResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BookingWithGuestResponse is the admin listing shape with the shadow user
// record embedded.
type BookingWithGuestResponse struct {
	BookingResponse
	User GuestResponse `json:"user"`
}

// BookingWithHotelResponse embeds the hotel name for user-facing listings.
type BookingWithHotelResponse struct {
	BookingResponse
	HotelName string `json:"hotelName"`
}

func FromBooking(b entities.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		HotelID:       b.HotelID,
		UserID:        b.UserID,
		CheckIn:       b.CheckIn.Format(time.RFC3339),
		CheckOut:      b.CheckOut.Format(time.RFC3339),
		FirstName:     b.FirstName,
		LastName:      b.LastName,
		Email:         b.Email,
		PhoneNumber:   b.PhoneNumber,
		RoomNumber:    b.RoomNumber,
		PaymentStatus: string(b.PaymentStatus),
		PaymentMethod: string(b.PaymentMethod),
	}
}

func FromBookingsWithGuest(items []usecase.BookingWithGuest) []BookingWithGuestResponse {
	out := make([]BookingWithGuestResponse, 0, len(items))
	for _, it := range items {
		out = append(out, BookingWithGuestResponse{
			BookingResponse: FromBooking(it.Booking),
			User: GuestResponse{
				ID:    it.Guest.ID,
				Name:  it.Guest.Name,
				Email: it.Guest.Email,
			},
		})
	}
	return out
}

func FromBookingsWithHotel(items []usecase.BookingWithHotel) []BookingWithHotelResponse {
	out := make([]BookingWithHotelResponse, 0, len(items))
	for _, it := range items {
		out = append(out, BookingWithHotelResponse{
			BookingResponse: FromBooking(it.Booking),
			HotelName:       it.HotelName,
		})
	}
	return out
}

func FromBookings(items []entities.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(items))
	for _, b := range items {
		out = append(out, FromBooking(b))
	}
	return out
}
