package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/handlers"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/middlewares"
)

const PathPayments = "/payment"

func addPaymentRoutes(rg *gin.RouterGroup, auth *middlewares.AuthMiddleware, paymentHandler *handlers.PaymentHandler) {
	payment := rg.Group(PathPayments)
	{
		payment.POST("/checkout/:bookingId", auth.RequireAuth(), paymentHandler.CreateCheckout)

		// The webhook is signed, the status endpoints carry no secrets.
		payment.POST("/webhook", paymentHandler.Webhook)
		payment.GET("/status/:bookingId", paymentHandler.GetStatus)
		payment.GET("/session/:sessionId", paymentHandler.CheckSession)
	}
}
