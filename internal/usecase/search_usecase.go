package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"
)

var ErrEmptyPrompt = errors.New("empty prompt")

// Retrieve returns at most this many matches.
const maxSearchResults = 4

// ScoredHotel is a semantic search match. Confidence is cosine similarity in
// [-1, 1]; listings returned without a search (empty query) carry 1.

type ScoredHotel struct {
	Hotel      entities.Hotel `json:"hotel"`
	Confidence float64        `json:"confidence"`
}

// ISearchUseCase exposes the semantic search and chat passthrough features.
// Both are thin: the heavy lifting happens in the language-model provider,
// this just maps hotels to texts and ranks by similarity.

type ISearchUseCase interface {
	CreateEmbeddings(ctx context.Context) (int, error)
	Retrieve(ctx context.Context, query string) ([]ScoredHotel, error)
	GenerateResponse(ctx context.Context, prompt string) (string, error)
}

type SearchUseCase struct {
	hotelRepo  interfaces.IHotelRepository
	vectorRepo interfaces.IHotelVectorRepository
	ai         interfaces.IAIClient
}

var _ ISearchUseCase = (*SearchUseCase)(nil)

func NewSearchUseCase(hotelRepo interfaces.IHotelRepository, vectorRepo interfaces.IHotelVectorRepository, ai interfaces.IAIClient) *SearchUseCase {
	return &SearchUseCase{hotelRepo: hotelRepo, vectorRepo: vectorRepo, ai: ai}
}

// CreateEmbeddings re-embeds the whole catalog and upserts the vectors.
// Returns how many hotels were embedded.
func (u *SearchUseCase) CreateEmbeddings(ctx context.Context) (int, error) {
	if u.ai == nil {
		return 0, errors.New("ai client not configured")
	}

	hotels, err := u.hotelRepo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(hotels) == 0 {
		return 0, nil
	}

	texts := make([]string, len(hotels))
	for i, h := range hotels {
		texts[i] = hotelEmbeddingText(h)
	}

	embeddings, err := u.ai.EmbedTexts(ctx, texts)
	if err != nil {
		log.Printf("[search][usecase] embedding generation failed err=%v", err)
		return 0, err
	}
	if len(embeddings) != len(hotels) {
		return 0, fmt.Errorf("embedding count mismatch: got %d for %d hotels", len(embeddings), len(hotels))
	}

	for i, h := range hotels {
		if err := u.vectorRepo.Put(ctx, entities.HotelVector{HotelID: h.ID, Embedding: embeddings[i]}); err != nil {
			log.Printf("[search][usecase] vector put failed hotel_id=%s err=%v", h.ID, err)
			return 0, err
		}
	}

	log.Printf("[search][usecase] embeddings created count=%d", len(hotels))
	return len(hotels), nil
}

// Retrieve ranks the catalog against the query by cosine similarity over the
// stored vectors. An empty query degrades to a plain listing.
func (u *SearchUseCase) Retrieve(ctx context.Context, query string) ([]ScoredHotel, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		hotels, err := u.hotelRepo.List(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]ScoredHotel, 0, len(hotels))
		for _, h := range hotels {
			out = append(out, ScoredHotel{Hotel: h, Confidence: 1})
		}
		return out, nil
	}
	if u.ai == nil {
		return nil, errors.New("ai client not configured")
	}

	embeddings, err := u.ai.EmbedTexts(ctx, []string{query})
	if err != nil {
		log.Printf("[search][usecase] query embedding failed err=%v", err)
		return nil, err
	}
	if len(embeddings) != 1 {
		return nil, fmt.Errorf("expected 1 query embedding, got %d", len(embeddings))
	}
	queryVec := embeddings[0]

	vectors, err := u.vectorRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	type scored struct {
		hotelID string
		score   float64
	}
	ranked := make([]scored, 0, len(vectors))
	for _, v := range vectors {
		ranked = append(ranked, scored{hotelID: v.HotelID, score: cosineSimilarity(queryVec, v.Embedding)})
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })

	if len(ranked) > maxSearchResults {
		ranked = ranked[:maxSearchResults]
	}

	out := make([]ScoredHotel, 0, len(ranked))
	for _, r := range ranked {
		hotel, err := u.hotelRepo.GetByID(ctx, r.hotelID)
		if err != nil {
			return nil, err
		}
		if hotel.ID == "" {
			// Vector for a hotel deleted since embedding; skip it.
			continue
		}
		out = append(out, ScoredHotel{Hotel: hotel, Confidence: r.score})
	}

	log.Printf("[search][usecase] retrieve query_len=%d results=%d", len(query), len(out))
	return out, nil
}

func (u *SearchUseCase) GenerateResponse(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", ErrEmptyPrompt
	}
	if u.ai == nil {
		return "", errors.New("ai client not configured")
	}
	return u.ai.ChatCompletion(ctx, prompt)
}

func hotelEmbeddingText(h entities.Hotel) string {
	return fmt.Sprintf("%s located in %s. Price per night: %v", h.Description, h.Location, h.Price)
}

// cosineSimilarity over unnormalized vectors. Zero-length or mismatched
// vectors score 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
