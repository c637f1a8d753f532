package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/handlers"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/middlewares"
)

const PathHotels = "/hotels"

func addHotelRoutes(rg *gin.RouterGroup, auth *middlewares.AuthMiddleware, hotelHandler *handlers.HotelHandler, searchHandler *handlers.SearchHandler) {
	hotels := rg.Group(PathHotels)
	{
		hotels.GET("", hotelHandler.List)
		hotels.GET("/filter", hotelHandler.Filter)
		hotels.GET("/search/retrieve", searchHandler.Retrieve)
		hotels.POST("/llm", searchHandler.Respond)
		hotels.GET("/:id", hotelHandler.GetByID)

		hotels.POST("", auth.RequireAuth(), auth.RequireAdmin(), hotelHandler.Create)
		hotels.POST("/embeddings/create", auth.RequireAuth(), auth.RequireAdmin(), searchHandler.CreateEmbeddings)
		hotels.PUT("/:id", auth.RequireAuth(), auth.RequireAdmin(), hotelHandler.Update)
		hotels.DELETE("/:id", auth.RequireAuth(), auth.RequireAdmin(), hotelHandler.Delete)
	}
}
