package interfaces

import (
	"context"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
)

// IHotelVectorRepository abstracts DynamoDB persistence for hotel embeddings.
// Put overwrites any existing vector for the same hotel so embeddings can be
// regenerated in place.

type IHotelVectorRepository interface {
	Put(ctx context.Context, v entities.HotelVector) error
	ListAll(ctx context.Context) ([]entities.HotelVector, error)
}
