package interfaces

import (
	"context"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
)

// IHotelRepository abstracts DynamoDB persistence for Hotel.
//
// Reads return a zero-value Hotel (empty ID) when nothing matches; callers
// decide whether that is a not-found error.

type IHotelRepository interface {
	Create(ctx context.Context, h entities.Hotel) (entities.Hotel, error)
	GetByID(ctx context.Context, id string) (entities.Hotel, error)
	List(ctx context.Context) ([]entities.Hotel, error)
	Update(ctx context.Context, h entities.Hotel) (entities.Hotel, error)
	Delete(ctx context.Context, id string) error
}
