package routes

import (
	"log"
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/DelwoA/Horizone-Hotel-Application-Back-End/docs" // This will be auto-generated
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/handlers"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/http/middlewares"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/adapter/persistence/repository"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/infrastructure/ai"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/infrastructure/database"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/infrastructure/payments"
	"github.com/DelwoA/Horizone-Hotel-Application-Back-End/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	hotelRepo := repository.NewHotelDynamoRepository(ddb)
	bookingRepo := repository.NewBookingDynamoRepository(ddb)
	userRepo := repository.NewUserDynamoRepository(ddb)
	vectorRepo := repository.NewHotelVectorDynamoRepository(ddb)

	gateway, err := payments.NewStripeGateway(os.Getenv("STRIPE_SECRET_KEY"), os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Fatalf("Stripe gateway not configured: %v", err)
	}

	aiClient, err := ai.NewOpenAIClient(os.Getenv("OPENAI_API_KEY"))
	if err != nil {
		log.Fatalf("OpenAI client not configured: %v", err)
	}

	hotelUseCase := usecase.NewHotelUseCase(hotelRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, hotelRepo, userRepo)
	paymentUseCase := usecase.NewPaymentUseCase(bookingRepo, hotelRepo, gateway)
	userUseCase := usecase.NewUserUseCase(userRepo)
	searchUseCase := usecase.NewSearchUseCase(hotelRepo, vectorRepo, aiClient)

	hotelHandler := handlers.NewHotelHandler(hotelUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	paymentHandler := handlers.NewPaymentHandler(paymentUseCase)
	userHandler := handlers.NewUserHandler(userUseCase)
	searchHandler := handlers.NewSearchHandler(searchUseCase)

	auth, err := middlewares.NewAuthMiddleware(os.Getenv("JWT_SECRET"))
	if err != nil {
		log.Fatalf("Auth middleware not configured: %v", err)
	}

	api := router.Group("/api")
	addPingRoutes(api)
	addHotelRoutes(api, auth, hotelHandler, searchHandler)
	addBookingRoutes(api, auth, bookingHandler)
	addPaymentRoutes(api, auth, paymentHandler)
	addUserRoutes(api, userHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.New(corsConfig()))
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization", "Stripe-Signature")
	return cfg
}
