package response

import "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"

type ScoredHotelResponse struct {
	Hotel      HotelResponse `json:"hotel"`
	Confidence float64       `json:"confidence"`
}

type SearchResponse struct {
	Results []ScoredHotelResponse `json:"results"`
}

type EmbeddingsCreatedResponse struct {
	Indexed int    `json:"indexed"`
	Message string `json:"message"`
}

type LLMResponse struct {
	Response string `json:"response"`
}

func FromScoredHotels(items []usecase.ScoredHotel) SearchResponse {
	out := make([]ScoredHotelResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ScoredHotelResponse{
			Hotel:      FromHotel(it.Hotel),
			Confidence: it.Confidence,
		})
	}
	return SearchResponse{Results: out}
}
