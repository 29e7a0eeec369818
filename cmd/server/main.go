package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"patients-api/internal/auth"
	"patients-api/internal/config"
	"patients-api/internal/database"
	"patients-api/internal/handler"
	"patients-api/internal/middleware"
	"patients-api/internal/repository"
	"patients-api/internal/service"
	"patients-api/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Build the token store from the configured secret
	tokenStore, err := auth.NewTokenStore(cfg.APIToken)
	if err != nil {
		log.Fatalf("Failed to initialize token store: %v", err)
	}

	// 3. Initialize database connection
	db := database.Connect(cfg)

	// 4. Initialize repository
	patientRepo := repository.NewPatientRepo(db)

	// Ensure the PATIENTS table exists so a fresh deployment can serve
	// before an explicit recreate is requested
	if err := patientRepo.Migrate(); err != nil {
		log.Printf("Warning: Failed to migrate PATIENTS table: %v", err)
	}

	// 5. Initialize service
	patientService := service.NewPatientService(patientRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	r.Use(middleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "API_TOKEN", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// 8. Register handlers
	patientHandler := handler.NewPatientHandler(patientService)
	databaseHandler := handler.NewDatabaseHandler(patientService)

	// 9. Define routes
	// Default route, also used as health check by the hosting platform
	r.GET("/", func(c *gin.Context) {
		utils.MessageResponse(c, "This is the patients API server")
	})

	// Patient routes (token protected)
	patients := r.Group("/patients")
	patients.Use(middleware.TokenAuth(tokenStore))
	{
		patients.GET("", patientHandler.ListPatients)          // Paginated list
		patients.POST("", patientHandler.CreatePatient)        // Create record
		patients.GET("/eid/:eid", patientHandler.GetPatientByEid)
		patients.GET("/name/:fname", patientHandler.GetPatientByName)
	}

	// Database admin routes (token protected, destructive)
	admin := r.Group("/database")
	admin.Use(middleware.TokenAuth(tokenStore))
	{
		admin.POST("/recreate", databaseHandler.RecreateDatabase)
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
