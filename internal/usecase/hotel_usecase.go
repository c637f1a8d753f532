package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrHotelNotFound     = errors.New("hotel not found")
	ErrInvalidHotelID    = errors.New("invalid hotel id")
	ErrInvalidHotelInput = errors.New("invalid hotel input")
)

// HotelFilter narrows and orders the catalog listing.
//
// Location matches case-insensitively as a substring; a comma-separated value
// matches any of the listed locations. "All" or empty means no filter.
// Sorting supports SortBy "price" with SortOrder "asc" or "desc".

type HotelFilter struct {
	Location  string
	SortBy    string
	SortOrder string
}

// IHotelUseCase exposes hotel catalog operations.

type IHotelUseCase interface {
	CreateHotel(ctx context.Context, h entities.Hotel) (entities.Hotel, error)
	GetHotelByID(ctx context.Context, id string) (entities.Hotel, error)
	ListHotels(ctx context.Context) ([]entities.Hotel, error)
	FilterHotels(ctx context.Context, f HotelFilter) ([]entities.Hotel, error)
	UpdateHotel(ctx context.Context, id string, h entities.Hotel) (entities.Hotel, error)
	DeleteHotel(ctx context.Context, id string) error
}

type HotelUseCase struct {
	repo interfaces.IHotelRepository
}

var _ IHotelUseCase = (*HotelUseCase)(nil)

func NewHotelUseCase(repo interfaces.IHotelRepository) *HotelUseCase {
	return &HotelUseCase{repo: repo}
}

func (u *HotelUseCase) CreateHotel(ctx context.Context, h entities.Hotel) (entities.Hotel, error) {
	if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Location) == "" ||
		strings.TrimSpace(h.Image) == "" || strings.TrimSpace(h.Description) == "" || h.Price <= 0 {
		return entities.Hotel{}, ErrInvalidHotelInput
	}

	h.ID = uuid.NewString()
	created, err := u.repo.Create(ctx, h)
	if err != nil {
		log.Printf("[hotel][usecase] create failed name=%q err=%v", h.Name, err)
		return entities.Hotel{}, err
	}
	log.Printf("[hotel][usecase] create success hotel_id=%s name=%q", created.ID, created.Name)
	return created, nil
}

func (u *HotelUseCase) GetHotelByID(ctx context.Context, id string) (entities.Hotel, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Hotel{}, ErrInvalidHotelID
	}

	h, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Hotel{}, err
	}
	if h.ID == "" {
		return entities.Hotel{}, ErrHotelNotFound
	}
	return h, nil
}

func (u *HotelUseCase) ListHotels(ctx context.Context) ([]entities.Hotel, error) {
	return u.repo.List(ctx)
}

// FilterHotels applies the location filter and price ordering in-process.
// The catalog is small enough that a table scan plus in-memory filtering
// beats maintaining extra indexes.
func (u *HotelUseCase) FilterHotels(ctx context.Context, f HotelFilter) ([]entities.Hotel, error) {
	hotels, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	location := strings.TrimSpace(f.Location)
	if location != "" && !strings.EqualFold(location, "All") {
		var terms []string
		for _, part := range strings.Split(location, ",") {
			if part = strings.TrimSpace(part); part != "" {
				terms = append(terms, strings.ToLower(part))
			}
		}

		filtered := make([]entities.Hotel, 0, len(hotels))
		for _, h := range hotels {
			loc := strings.ToLower(h.Location)
			for _, term := range terms {
				if strings.Contains(loc, term) {
					filtered = append(filtered, h)
					break
				}
			}
		}
		hotels = filtered
	}

	if f.SortBy == "price" && (f.SortOrder == "asc" || f.SortOrder == "desc") {
		asc := f.SortOrder == "asc"
		sort.SliceStable(hotels, func(i, j int) bool {
			if asc {
				return hotels[i].Price < hotels[j].Price
			}
			return hotels[i].Price > hotels[j].Price
		})
	}

	log.Printf("[hotel][usecase] filter location=%q sort_by=%q sort_order=%q matched=%d", f.Location, f.SortBy, f.SortOrder, len(hotels))
	return hotels, nil
}

func (u *HotelUseCase) UpdateHotel(ctx context.Context, id string, h entities.Hotel) (entities.Hotel, error) {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return entities.Hotel{}, ErrInvalidHotelID
	}
	if strings.TrimSpace(h.Name) == "" || strings.TrimSpace(h.Location) == "" ||
		strings.TrimSpace(h.Image) == "" || strings.TrimSpace(h.Description) == "" || h.Price <= 0 {
		return entities.Hotel{}, ErrInvalidHotelInput
	}

	existing, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Hotel{}, err
	}
	if existing.ID == "" {
		return entities.Hotel{}, ErrHotelNotFound
	}

	// Full replace of mutable fields; the Stripe price reference survives.
	h.ID = existing.ID
	h.StripePriceID = existing.StripePriceID
	return u.repo.Update(ctx, h)
}

func (u *HotelUseCase) DeleteHotel(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if uuid.Validate(id) != nil {
		return ErrInvalidHotelID
	}
	return u.repo.Delete(ctx, id)
}
