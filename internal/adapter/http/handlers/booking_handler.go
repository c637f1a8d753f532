package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/dto/request"
	response "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/dto/response"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/middlewares"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/pkg"
)

// BookingHandler handles HTTP requests for bookings. All routes run behind
// the auth middleware, so a principal is always present on the context.

type BookingHandler struct {
	usecase usecase.IBookingUseCase
}

func NewBookingHandler(uc usecase.IBookingUseCase) *BookingHandler {
	return &BookingHandler{usecase: uc}
}

// Create registers a booking for the authenticated user.
func (h *BookingHandler) Create(c *gin.Context) {
	userID := middlewares.PrincipalID(c)
	log.Printf("[booking][handler] create start user_id=%s", userID)

	var req request.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[booking][handler] create invalid payload user_id=%s err=%v", userID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	checkIn, checkOut, err := req.Dates()
	if err != nil {
		log.Printf("[booking][handler] create invalid dates user_id=%s err=%v", userID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid check-in or check-out date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	cmd := usecase.CreateBookingCommand{
		HotelID:     req.HotelID,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		RoomNumber:  req.RoomNumber,
	}

	created, err := h.usecase.CreateBooking(c.Request.Context(), userID, cmd)
	if err != nil {
		log.Printf("[booking][handler] create failed user_id=%s err=%v", userID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[booking][handler] create success booking_id=%s hotel_id=%s user_id=%s", created.ID, created.HotelID, userID)

	c.Status(http.StatusCreated)
}

// List returns every booking. Admin only.
func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.usecase.ListBookings(c.Request.Context())
	if err != nil {
		log.Printf("[booking][handler] list failed err=%v", err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookings(bookings))
}

// ListForHotel returns the bookings of one hotel with guest records. Admin
// only.
func (h *BookingHandler) ListForHotel(c *gin.Context) {
	hotelID := c.Param("hotelId")

	bookings, err := h.usecase.ListBookingsForHotel(c.Request.Context(), hotelID)
	if err != nil {
		log.Printf("[booking][handler] list-for-hotel failed hotel_id=%s err=%v", hotelID, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingsWithGuest(bookings))
}

// ListForUser returns the caller's bookings. An explicit userId path param is
// honored only for the caller's own id or for admins.
func (h *BookingHandler) ListForUser(c *gin.Context) {
	principal := middlewares.PrincipalID(c)
	target := c.Param("userId")
	if target == "" {
		target = principal
	}
	if target != principal && !middlewares.IsAdmin(c) {
		log.Printf("[booking][handler] list-for-user forbidden principal=%s target=%s", principal, target)
		appErr := pkg.NewDomainErrorSimple("FORBIDDEN", "Cannot read another user's bookings", http.StatusForbidden)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	bookings, err := h.usecase.ListBookingsForUser(c.Request.Context(), target)
	if err != nil {
		log.Printf("[booking][handler] list-for-user failed user_id=%s err=%v", target, err)
		appErr := mapBookingError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromBookingsWithHotel(bookings))
}

func mapBookingError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHotelID),
		errors.Is(err, usecase.ErrInvalidBookingDates),
		errors.Is(err, usecase.ErrInvalidRoomNumber),
		errors.Is(err, usecase.ErrInvalidGuestContact):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingPrincipal):
		return pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrHotelNotFound):
		return pkg.NewDomainErrorSimple("HOTEL_NOT_FOUND", "Hotel not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
