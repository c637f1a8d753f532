package interfaces

import (
	"context"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for Booking.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: hotel_id-index (PK: hotel_id)
//   - GSI: user_id-index (PK: user_id)
//
// UpdatePaymentStatus is the only write after creation. It must be safe to
// apply repeatedly with the same arguments: webhook delivery and the direct
// session poll can race on the same booking. It returns a zero-value Booking
// when the id does not exist.

type IBookingRepository interface {
	Create(ctx context.Context, b entities.Booking) (entities.Booking, error)
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	List(ctx context.Context) ([]entities.Booking, error)
	ListByHotelID(ctx context.Context, hotelID string) ([]entities.Booking, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Booking, error)
	UpdatePaymentStatus(ctx context.Context, id string, status entities.PaymentStatus, method entities.PaymentMethod) (entities.Booking, error)
}
