package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookingDates = errors.New("invalid booking dates")
	ErrInvalidRoomNumber   = errors.New("invalid room number")
	ErrInvalidGuestContact = errors.New("invalid guest contact details")
	ErrMissingPrincipal    = errors.New("missing authenticated user")
)

// CreateBookingCommand is the validated shape of a booking request. The
// owning user id is NOT part of the command: it always comes from the
// authenticated principal, never from the request payload.

type CreateBookingCommand struct {
	HotelID     string
	CheckIn     time.Time
	CheckOut    time.Time
	FirstName   string
	LastName    string
	Email       string
	PhoneNumber string
	RoomNumber  int
}

// BookingWithGuest pairs a booking with the shadow User record of its owner.
// Guest is zero-valued when no shadow record exists for the user id.

type BookingWithGuest struct {
	Booking entities.Booking
	Guest   entities.User
}

// BookingWithHotel pairs a booking with its hotel's display name.

type BookingWithHotel struct {
	Booking   entities.Booking
	HotelName string
}

// IBookingUseCase exposes booking creation and the read paths. Payment
// lifecycle operations live in IPaymentUseCase.

type IBookingUseCase interface {
	CreateBooking(ctx context.Context, userID string, cmd CreateBookingCommand) (entities.Booking, error)
	ListBookings(ctx context.Context) ([]entities.Booking, error)
	ListBookingsForHotel(ctx context.Context, hotelID string) ([]BookingWithGuest, error)
	ListBookingsForUser(ctx context.Context, userID string) ([]BookingWithHotel, error)
}

type BookingUseCase struct {
	repo      interfaces.IBookingRepository
	hotelRepo interfaces.IHotelRepository
	userRepo  interfaces.IUserRepository
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, hotelRepo interfaces.IHotelRepository, userRepo interfaces.IUserRepository) *BookingUseCase {
	return &BookingUseCase{repo: repo, hotelRepo: hotelRepo, userRepo: userRepo}
}

func (u *BookingUseCase) CreateBooking(ctx context.Context, userID string, cmd CreateBookingCommand) (entities.Booking, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Booking{}, ErrMissingPrincipal
	}

	hotelID := strings.TrimSpace(cmd.HotelID)
	if uuid.Validate(hotelID) != nil {
		return entities.Booking{}, ErrInvalidHotelID
	}
	if cmd.CheckIn.IsZero() || cmd.CheckOut.IsZero() || cmd.CheckOut.Before(cmd.CheckIn) {
		return entities.Booking{}, ErrInvalidBookingDates
	}
	if cmd.RoomNumber <= 0 {
		return entities.Booking{}, ErrInvalidRoomNumber
	}
	if strings.TrimSpace(cmd.FirstName) == "" || strings.TrimSpace(cmd.LastName) == "" ||
		strings.TrimSpace(cmd.Email) == "" || strings.TrimSpace(cmd.PhoneNumber) == "" {
		return entities.Booking{}, ErrInvalidGuestContact
	}

	hotel, err := u.hotelRepo.GetByID(ctx, hotelID)
	if err != nil {
		log.Printf("[booking][usecase] hotel lookup failed hotel_id=%s err=%v", hotelID, err)
		return entities.Booking{}, err
	}
	if hotel.ID == "" {
		return entities.Booking{}, ErrHotelNotFound
	}

	b := entities.Booking{
		ID:            uuid.NewString(),
		HotelID:       hotel.ID,
		UserID:        userID,
		CheckIn:       cmd.CheckIn,
		CheckOut:      cmd.CheckOut,
		FirstName:     cmd.FirstName,
		LastName:      cmd.LastName,
		Email:         cmd.Email,
		PhoneNumber:   cmd.PhoneNumber,
		RoomNumber:    cmd.RoomNumber,
		PaymentStatus: entities.PaymentStatusPending,
		PaymentMethod: entities.PaymentMethodCard,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, b)
	if err != nil {
		log.Printf("[booking][usecase] create failed hotel_id=%s user_id=%s err=%v", hotelID, userID, err)
		return entities.Booking{}, err
	}
	log.Printf("[booking][usecase] create success booking_id=%s hotel_id=%s user_id=%s", created.ID, created.HotelID, created.UserID)
	return created, nil
}

func (u *BookingUseCase) ListBookings(ctx context.Context) ([]entities.Booking, error) {
	return u.repo.List(ctx)
}

// ListBookingsForHotel returns a hotel's bookings enriched with the guest's
// shadow User record, joined at read time.
func (u *BookingUseCase) ListBookingsForHotel(ctx context.Context, hotelID string) ([]BookingWithGuest, error) {
	hotelID = strings.TrimSpace(hotelID)
	if uuid.Validate(hotelID) != nil {
		return nil, ErrInvalidHotelID
	}

	bookings, err := u.repo.ListByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingWithGuest, 0, len(bookings))
	for _, b := range bookings {
		guest, err := u.userRepo.GetByID(ctx, b.UserID)
		if err != nil {
			log.Printf("[booking][usecase] guest lookup failed booking_id=%s user_id=%s err=%v", b.ID, b.UserID, err)
			return nil, err
		}
		out = append(out, BookingWithGuest{Booking: b, Guest: guest})
	}
	return out, nil
}

// ListBookingsForUser returns a user's bookings enriched with hotel names.
// A booking whose hotel has since been deleted still lists, with a generic
// display name.
func (u *BookingUseCase) ListBookingsForUser(ctx context.Context, userID string) ([]BookingWithHotel, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrMissingPrincipal
	}

	bookings, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]BookingWithHotel, 0, len(bookings))
	for _, b := range bookings {
		name := "Hotel Booking"
		hotel, err := u.hotelRepo.GetByID(ctx, b.HotelID)
		if err != nil {
			log.Printf("[booking][usecase] hotel lookup failed booking_id=%s hotel_id=%s err=%v", b.ID, b.HotelID, err)
			return nil, err
		}
		if hotel.ID != "" {
			name = hotel.Name
		}
		out = append(out, BookingWithHotel{Booking: b, HotelName: name})
	}
	return out, nil
}
