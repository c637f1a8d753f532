package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/handlers"
)

const PathUsers = "/users"

func addUserRoutes(rg *gin.RouterGroup, userHandler *handlers.UserHandler) {
	users := rg.Group(PathUsers)
	{
		users.POST("", userHandler.Create)
	}
}
