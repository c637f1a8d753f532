package request

import "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"

// HotelRequest is the payload for hotel create and full-replace update.
// Rating and reviews are optional; everything else is required.

type HotelRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location" binding:"required"`
	Rating      float64 `json:"rating" binding:"omitempty,gte=1,lte=5"`
	Reviews     int     `json:"reviews"`
	Image       string  `json:"image" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Description string  `json:"description" binding:"required"`
}

func (r HotelRequest) ToEntity() entities.Hotel {
	return entities.Hotel{
		Name:        r.Name,
		Location:    r.Location,
		Rating:      r.Rating,
		Reviews:     r.Reviews,
		Image:       r.Image,
		Price:       r.Price,
		Description: r.Description,
	}
}
