package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/domain/entities"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBookingID   = errors.New("invalid booking id")
	ErrBookingNotFound    = errors.New("booking not found")
	ErrBookingAlreadyPaid = errors.New("booking already paid")
	ErrInvalidSessionID   = errors.New("invalid session id")
	ErrWebhookSignature   = errors.New("webhook signature verification failed")
)

// Stripe event types this service reacts to. payment_intent.succeeded is a
// duplicate signal of checkout.session.completed in the checkout flow and is
// acknowledged without state change.
const (
	eventCheckoutSessionCompleted = "checkout.session.completed"
	eventPaymentIntentSucceeded   = "payment_intent.succeeded"
)

// Stripe-side payment status on a checkout session.
const sessionPaymentStatusPaid = "paid"

// Metadata keys attached to checkout sessions. The bookingId is how the
// asynchronous webhook finds its way back to the local record.
const (
	metadataBookingID = "bookingId"
	metadataHotelID   = "hotelId"
	metadataUserID    = "userId"
)

// SessionStatus is the merged local+provider view returned by
// CheckSessionStatus. Booking is nil when no local booking matched the
// session metadata; BookingID carries whatever the metadata said either way.

type SessionStatus struct {
	Booking              *entities.Booking
	HotelName            string
	BookingID            string
	SessionStatus        string
	SessionPaymentStatus string
}

// IPaymentUseCase orchestrates the booking payment lifecycle: checkout
// session creation, webhook-driven confirmation, and poll-based
// reconciliation.
//
//   - A booking is created PENDING elsewhere (IBookingUseCase).
//   - InitiateCheckout opens a Stripe hosted session; nothing is persisted
//     locally until the provider confirms.
//   - ProcessWebhook and CheckSessionStatus both mark the booking PAID; the
//     write is idempotent so the two paths may race freely.

type IPaymentUseCase interface {
	InitiateCheckout(ctx context.Context, bookingID, frontendURL string) (interfaces.CheckoutSession, error)
	ProcessWebhook(ctx context.Context, payload []byte, signature string) error
	GetPaymentStatus(ctx context.Context, bookingID string) (entities.Booking, error)
	CheckSessionStatus(ctx context.Context, sessionID string) (SessionStatus, error)
}

type PaymentUseCase struct {
	bookingRepo interfaces.IBookingRepository
	hotelRepo   interfaces.IHotelRepository
	gateway     interfaces.IPaymentGateway
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(bookingRepo interfaces.IBookingRepository, hotelRepo interfaces.IHotelRepository, gateway interfaces.IPaymentGateway) *PaymentUseCase {
	return &PaymentUseCase{bookingRepo: bookingRepo, hotelRepo: hotelRepo, gateway: gateway}
}

// InitiateCheckout opens a Stripe checkout session for a PENDING booking.
// The total is the hotel's nightly price times the stay length (minimum one
// night), converted to cents. The read-compute-create sequence is not atomic
// against concurrent hotel price edits; that window is accepted.
func (u *PaymentUseCase) InitiateCheckout(ctx context.Context, bookingID, frontendURL string) (interfaces.CheckoutSession, error) {
	bookingID = strings.TrimSpace(bookingID)
	if uuid.Validate(bookingID) != nil {
		log.Printf("[payment][usecase] checkout invalid booking id %q", bookingID)
		return interfaces.CheckoutSession{}, ErrInvalidBookingID
	}
	if u.gateway == nil {
		return interfaces.CheckoutSession{}, errors.New("payment gateway not configured")
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		log.Printf("[payment][usecase] checkout booking lookup failed booking_id=%s err=%v", bookingID, err)
		return interfaces.CheckoutSession{}, err
	}
	if booking.ID == "" {
		return interfaces.CheckoutSession{}, ErrBookingNotFound
	}
	if booking.PaymentStatus == entities.PaymentStatusPaid {
		return interfaces.CheckoutSession{}, ErrBookingAlreadyPaid
	}

	hotel, err := u.hotelRepo.GetByID(ctx, booking.HotelID)
	if err != nil {
		log.Printf("[payment][usecase] checkout hotel lookup failed booking_id=%s hotel_id=%s err=%v", bookingID, booking.HotelID, err)
		return interfaces.CheckoutSession{}, err
	}
	if hotel.ID == "" {
		return interfaces.CheckoutSession{}, ErrHotelNotFound
	}

	nights := NightsBetween(booking.CheckIn, booking.CheckOut)
	totalCents := TotalPriceCents(hotel.Price, nights)
	log.Printf("[payment][usecase] checkout start booking_id=%s hotel_id=%s nights=%d total_cents=%d", booking.ID, hotel.ID, nights, totalCents)

	frontendURL = strings.TrimRight(frontendURL, "/")
	// {CHECKOUT_SESSION_ID} is substituted by Stripe on redirect.
	successURL := fmt.Sprintf("%s/verify-payment?session_id={CHECKOUT_SESSION_ID}&bookingId=%s", frontendURL, booking.ID)
	cancelURL := fmt.Sprintf("%s/hotels/%s?paymentCancelled=true&bookingId=%s", frontendURL, hotel.ID, booking.ID)

	session, err := u.gateway.CreateCheckoutSession(ctx, interfaces.CreateCheckoutSessionInput{
		AmountMinorUnits: totalCents,
		ProductName:      fmt.Sprintf("Booking for %s", hotel.Name),
		Description: fmt.Sprintf("Check-in: %s - Check-out: %s",
			booking.CheckIn.Format("Jan 2, 2006"), booking.CheckOut.Format("Jan 2, 2006")),
		Metadata: map[string]string{
			metadataBookingID: booking.ID,
			metadataHotelID:   hotel.ID,
			metadataUserID:    booking.UserID,
		},
		SuccessURL: successURL,
		CancelURL:  cancelURL,
	})
	if err != nil {
		log.Printf("[payment][usecase] checkout session create failed booking_id=%s err=%v", booking.ID, err)
		return interfaces.CheckoutSession{}, err
	}

	log.Printf("[payment][usecase] checkout session created booking_id=%s session_id=%s", booking.ID, session.ID)
	return session, nil
}

// ProcessWebhook verifies and dispatches a provider event. A signature
// mismatch returns ErrWebhookSignature with no state touched. After a valid
// signature, only a failing booking update propagates an error (so the
// provider redelivers); an unknown or missing bookingId is logged and
// accepted, since redelivery cannot fix it.
func (u *PaymentUseCase) ProcessWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := u.gateway.ConstructWebhookEvent(payload, signature)
	if err != nil {
		log.Printf("[payment][usecase] webhook signature verification failed err=%v", err)
		return ErrWebhookSignature
	}
	log.Printf("[payment][usecase] webhook event type=%s", event.Type)

	switch event.Type {
	case eventCheckoutSessionCompleted:
		bookingID := event.Session.Metadata[metadataBookingID]
		if bookingID == "" {
			log.Printf("[payment][usecase] webhook session %s has no bookingId metadata", event.Session.ID)
			return nil
		}

		updated, err := u.bookingRepo.UpdatePaymentStatus(ctx, bookingID, entities.PaymentStatusPaid, entities.PaymentMethodCard)
		if err != nil {
			log.Printf("[payment][usecase] webhook booking update failed booking_id=%s err=%v", bookingID, err)
			return err
		}
		if updated.ID == "" {
			log.Printf("[payment][usecase] webhook booking not found booking_id=%s", bookingID)
			return nil
		}
		log.Printf("[payment][usecase] webhook booking marked paid booking_id=%s", updated.ID)

	case eventPaymentIntentSucceeded:
		// Duplicate of the session-completed signal for checkout payments.
		log.Printf("[payment][usecase] webhook payment intent succeeded")

	default:
		log.Printf("[payment][usecase] webhook unhandled event type=%s", event.Type)
	}

	return nil
}

// GetPaymentStatus is a pure local read; it may lag provider truth until the
// webhook or a session poll lands.
func (u *PaymentUseCase) GetPaymentStatus(ctx context.Context, bookingID string) (entities.Booking, error) {
	bookingID = strings.TrimSpace(bookingID)
	if uuid.Validate(bookingID) != nil {
		return entities.Booking{}, ErrInvalidBookingID
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return entities.Booking{}, err
	}
	if booking.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return booking, nil
}

// CheckSessionStatus asks Stripe for the live session and opportunistically
// reconciles the local booking. This closes the race where the client comes
// back from the hosted page before the webhook has been delivered.
func (u *PaymentUseCase) CheckSessionStatus(ctx context.Context, sessionID string) (SessionStatus, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return SessionStatus{}, ErrInvalidSessionID
	}
	if u.gateway == nil {
		return SessionStatus{}, errors.New("payment gateway not configured")
	}

	session, err := u.gateway.RetrieveCheckoutSession(ctx, sessionID)
	if err != nil {
		log.Printf("[payment][usecase] session retrieve failed session_id=%s err=%v", sessionID, err)
		return SessionStatus{}, err
	}
	log.Printf("[payment][usecase] session retrieved session_id=%s status=%s payment_status=%s", session.ID, session.Status, session.PaymentStatus)

	result := SessionStatus{
		SessionStatus:        session.Status,
		SessionPaymentStatus: session.PaymentStatus,
	}

	bookingID := session.Metadata[metadataBookingID]
	if bookingID == "" {
		return result, nil
	}
	result.BookingID = bookingID

	if session.PaymentStatus == sessionPaymentStatusPaid {
		if _, err := u.bookingRepo.UpdatePaymentStatus(ctx, bookingID, entities.PaymentStatusPaid, entities.PaymentMethodCard); err != nil {
			log.Printf("[payment][usecase] session reconcile failed booking_id=%s err=%v", bookingID, err)
			return SessionStatus{}, err
		}
		log.Printf("[payment][usecase] session reconciled booking_id=%s", bookingID)
	}

	booking, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return SessionStatus{}, err
	}
	if booking.ID == "" {
		return result, nil
	}
	result.Booking = &booking

	result.HotelName = "Hotel Booking"
	hotel, err := u.hotelRepo.GetByID(ctx, booking.HotelID)
	if err != nil {
		log.Printf("[payment][usecase] session hotel lookup failed hotel_id=%s err=%v", booking.HotelID, err)
		return SessionStatus{}, err
	}
	if hotel.ID != "" {
		result.HotelName = hotel.Name
	}
	return result, nil
}

// NightsBetween returns the stay length in whole days, never less than one:
// a same-day checkout is still billed as one night.
func NightsBetween(checkIn, checkOut time.Time) int {
	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// TotalPriceCents converts a nightly major-unit price into the total in
// Stripe's minor units.
func TotalPriceCents(nightlyPrice float64, nights int) int64 {
	return int64(math.Round(nightlyPrice * float64(nights) * 100))
}
