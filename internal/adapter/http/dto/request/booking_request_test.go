package request

import (
	"errors"
	"testing"
	"time"
)

func TestCreateBookingRequest_Dates(t *testing.T) {
	t.Run("date-only values parse as midnight UTC", func(t *testing.T) {
		r := CreateBookingRequest{CheckIn: "2025-07-01", CheckOut: "2025-07-03"}
		checkIn, checkOut, err := r.Dates()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)
		if !checkIn.Equal(want) {
			t.Fatalf("expected %v, got %v", want, checkIn)
		}
		if !checkOut.Equal(want.AddDate(0, 0, 2)) {
			t.Fatalf("unexpected checkout %v", checkOut)
		}
	})

	t.Run("rfc3339 values parse", func(t *testing.T) {
		r := CreateBookingRequest{CheckIn: "2025-07-01T15:04:05+05:30", CheckOut: "2025-07-03T00:00:00Z"}
		checkIn, _, err := r.Dates()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if checkIn.Location() != time.UTC {
			t.Fatalf("expected UTC, got %v", checkIn.Location())
		}
	})

	t.Run("unparseable value", func(t *testing.T) {
		r := CreateBookingRequest{CheckIn: "July 1st", CheckOut: "2025-07-03"}
		_, _, err := r.Dates()
		if !errors.Is(err, ErrInvalidDateFormat) {
			t.Fatalf("expected ErrInvalidDateFormat, got %v", err)
		}
	})
}
