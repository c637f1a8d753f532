package request

import (
	"errors"
	"time"
)

var ErrInvalidDateFormat = errors.New("invalid date format")

// Date formats accepted for check-in/check-out, tried in order.
var bookingDateFormats = []string{time.RFC3339, "2006-01-02"}

// CreateBookingRequest is the payload for booking creation. The owning user
// is never part of the payload; it always comes from the authenticated
// principal.

type CreateBookingRequest struct {
	HotelID     string `json:"hotelId" binding:"required"`
	CheckIn     string `json:"checkIn" binding:"required"`
	CheckOut    string `json:"checkOut" binding:"required"`
	FirstName   string `json:"firstName" binding:"required"`
	LastName    string `json:"lastName" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	PhoneNumber string `json:"phoneNumber" binding:"required"`
	RoomNumber  int    `json:"roomNumber" binding:"required,gt=0"`
}

// Dates parses the check-in/check-out strings. Date-only values are
// interpreted as midnight UTC.
func (r CreateBookingRequest) Dates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = parseBookingDate(r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err = parseBookingDate(r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func parseBookingDate(s string) (time.Time, error) {
	for _, layout := range bookingDateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateFormat
}
