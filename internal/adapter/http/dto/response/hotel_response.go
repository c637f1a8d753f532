package response

import "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"

type HotelResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Rating        float64 `json:"rating,omitempty"`
	Reviews       int     `json:"reviews,omitempty"`
	Image         string  `json:"image"`
	Price         float64 `json:"price"`
	Description   string  `json:"description"`
	StripePriceID string  `json:"stripePriceId,omitempty"`
}

func FromHotel(h entities.Hotel) HotelResponse {
	return HotelResponse{
		ID:            h.ID,
		Name:          h.Name,
		Location:      h.Location,
		Rating:        h.Rating,
		Reviews:       h.Reviews,
		Image:         h.Image,
		Price:         h.Price,
		Description:   h.Description,
		StripePriceID: h.StripePriceID,
	}
}

func FromHotels(hotels []entities.Hotel) []HotelResponse {
	out := make([]HotelResponse, 0, len(hotels))
	for _, h := range hotels {
		out = append(out, FromHotel(h))
	}
	return out
}
