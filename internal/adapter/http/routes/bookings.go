package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/handlers"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/middlewares"
)

const PathBookings = "/bookings"

func addBookingRoutes(rg *gin.RouterGroup, auth *middlewares.AuthMiddleware, bookingHandler *handlers.BookingHandler) {
	bookings := rg.Group(PathBookings, auth.RequireAuth())
	{
		bookings.POST("", bookingHandler.Create)
		bookings.GET("/user", bookingHandler.ListForUser)
		bookings.GET("/user/:userId", bookingHandler.ListForUser)

		bookings.GET("", auth.RequireAdmin(), bookingHandler.List)
		bookings.GET("/hotels/:hotelId", auth.RequireAdmin(), bookingHandler.ListForHotel)
	}
}
