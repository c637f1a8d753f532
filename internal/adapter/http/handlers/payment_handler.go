package handlers

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	response "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/dto/response"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/pkg"
)

const stripeSignatureHeader = "Stripe-Signature"

// PaymentHandler handles HTTP requests for the checkout and webhook flow.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// CreateCheckout opens a hosted checkout session for a pending booking.
func (h *PaymentHandler) CreateCheckout(c *gin.Context) {
	bookingID := c.Param("bookingId")
	frontendURL := pkg.FrontendURL(c.Request)
	log.Printf("[payment][handler] checkout start booking_id=%s frontend_url=%s", bookingID, frontendURL)

	session, err := h.usecase.InitiateCheckout(c.Request.Context(), bookingID, frontendURL)
	if err != nil {
		log.Printf("[payment][handler] checkout failed booking_id=%s err=%v", bookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] checkout success booking_id=%s session_id=%s", bookingID, session.ID)

	c.JSON(http.StatusOK, response.CheckoutSessionResponse{
		SessionID:  session.ID,
		SessionURL: session.URL,
	})
}

// Webhook accepts provider callbacks. The raw body is needed for signature
// verification, so no binding happens here.
func (h *PaymentHandler) Webhook(c *gin.Context) {
	signature := c.GetHeader(stripeSignatureHeader)
	if signature == "" {
		log.Printf("[payment][handler] webhook missing signature header")
		appErr := pkg.NewDomainErrorSimple("MISSING_SIGNATURE", "Missing Stripe-Signature header", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	payload, err := c.GetRawData()
	if err != nil {
		log.Printf("[payment][handler] webhook body read failed err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	if err := h.usecase.ProcessWebhook(c.Request.Context(), payload, signature); err != nil {
		log.Printf("[payment][handler] webhook failed err=%v", err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.WebhookAckResponse{Received: true})
}

// GetStatus returns the payment state of a booking.
func (h *PaymentHandler) GetStatus(c *gin.Context) {
	bookingID := c.Param("bookingId")

	booking, err := h.usecase.GetPaymentStatus(c.Request.Context(), bookingID)
	if err != nil {
		log.Printf("[payment][handler] status failed booking_id=%s err=%v", bookingID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PaymentStatusResponse{
		PaymentStatus: string(booking.PaymentStatus),
		BookingID:     booking.ID,
		CheckIn:       booking.CheckIn.Format(time.RFC3339),
		CheckOut:      booking.CheckOut.Format(time.RFC3339),
		FirstName:     booking.FirstName,
		LastName:      booking.LastName,
	})
}

// CheckSession verifies a checkout session against the provider and
// reconciles the booking when the session is already paid.
func (h *PaymentHandler) CheckSession(c *gin.Context) {
	sessionID := c.Param("sessionId")
	log.Printf("[payment][handler] check-session start session_id=%s", sessionID)

	status, err := h.usecase.CheckSessionStatus(c.Request.Context(), sessionID)
	if err != nil {
		log.Printf("[payment][handler] check-session failed session_id=%s err=%v", sessionID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSessionStatus(status))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidBookingID), errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingAlreadyPaid):
		return pkg.NewDomainErrorSimple("BOOKING_ALREADY_PAID", "Booking is already paid", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrWebhookSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Webhook signature verification failed", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrBookingNotFound):
		return pkg.NewDomainErrorSimple("BOOKING_NOT_FOUND", "Booking not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrHotelNotFound):
		return pkg.NewDomainErrorSimple("HOTEL_NOT_FOUND", "Hotel not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
