package entities

// HotelVector is an embedding of a hotel's descriptive text, persisted so
// semantic search can rank the catalog without re-embedding on every query.
//
// Storage model (DynamoDB):
//   - PK: hotel_id

type HotelVector struct {
	HotelID   string    `json:"hotel_id"`
	Embedding []float32 `json:"embedding"`
}
