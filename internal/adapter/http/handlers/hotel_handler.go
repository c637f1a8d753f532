package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	request "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/dto/request"
	response "github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/dto/response"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/pkg"
)

// HotelHandler handles HTTP requests for hotels.

type HotelHandler struct {
	usecase usecase.IHotelUseCase
}

func NewHotelHandler(uc usecase.IHotelUseCase) *HotelHandler {
	return &HotelHandler{usecase: uc}
}

// Create registers a new hotel.
func (h *HotelHandler) Create(c *gin.Context) {
	var req request.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[hotel][handler] create invalid payload err=%v", err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.CreateHotel(c.Request.Context(), req.ToEntity())
	if err != nil {
		log.Printf("[hotel][handler] create failed err=%v", err)
		appErr := mapHotelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hotel][handler] create success hotel_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromHotel(created))
}

// List returns all hotels.
func (h *HotelHandler) List(c *gin.Context) {
	hotels, err := h.usecase.ListHotels(c.Request.Context())
	if err != nil {
		log.Printf("[hotel][handler] list failed err=%v", err)
		appErr := mapHotelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHotels(hotels))
}

// Filter returns hotels narrowed by location and ordered by price.
func (h *HotelHandler) Filter(c *gin.Context) {
	filter := usecase.HotelFilter{
		Location:  c.Query("location"),
		SortBy:    c.Query("sortBy"),
		SortOrder: c.Query("sortOrder"),
	}
	log.Printf("[hotel][handler] filter start location=%q sort_by=%q sort_order=%q", filter.Location, filter.SortBy, filter.SortOrder)

	hotels, err := h.usecase.FilterHotels(c.Request.Context(), filter)
	if err != nil {
		log.Printf("[hotel][handler] filter failed err=%v", err)
		appErr := mapHotelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHotels(hotels))
}

// GetByID returns a single hotel.
func (h *HotelHandler) GetByID(c *gin.Context) {
	id := c.Param("id")

	hotel, err := h.usecase.GetHotelByID(c.Request.Context(), id)
	if err != nil {
		log.Printf("[hotel][handler] get failed hotel_id=%s err=%v", id, err)
		appErr := mapHotelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromHotel(hotel))
}

// Update replaces the mutable fields of a hotel.
func (h *HotelHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req request.HotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[hotel][handler] update invalid payload hotel_id=%s err=%v", id, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	updated, err := h.usecase.UpdateHotel(c.Request.Context(), id, req.ToEntity())
	if err != nil {
		log.Printf("[hotel][handler] update failed hotel_id=%s err=%v", id, err)
		appErr := mapHotelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hotel][handler] update success hotel_id=%s", id)

	c.JSON(http.StatusOK, response.FromHotel(updated))
}

// Delete removes a hotel.
func (h *HotelHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.usecase.DeleteHotel(c.Request.Context(), id); err != nil {
		log.Printf("[hotel][handler] delete failed hotel_id=%s err=%v", id, err)
		appErr := mapHotelError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[hotel][handler] delete success hotel_id=%s", id)

	c.Status(http.StatusNoContent)
}

func mapHotelError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidHotelID), errors.Is(err, usecase.ErrInvalidHotelInput):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHotelNotFound):
		return pkg.NewDomainErrorSimple("HOTEL_NOT_FOUND", "Hotel not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
