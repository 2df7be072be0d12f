package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"asset-tracker/internal/config"
	"asset-tracker/internal/delivery/http/handler"
	"asset-tracker/internal/infrastructure/database/postgres"
	"asset-tracker/internal/logger"
	"asset-tracker/internal/middleware"
	"asset-tracker/internal/usecase/asset"
	"asset-tracker/internal/usecase/qr"
	"asset-tracker/internal/usecase/verification"
)

func SetupRoutes(cfg *config.Config, db *postgres.DB) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.SecurityHeadersMiddleware())
	router.Use(middleware.CORSMiddleware(&cfg.CORS))
	router.Use(middleware.RequestSizeLimitMiddleware(middleware.DefaultMaxRequestSize))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit.GeneralRPS, cfg.RateLimit.GeneralBurst))

	router.GET("/health", func(c *gin.Context) {
		if err := db.Health(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unhealthy",
				"message": "Database connection failed",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"message": "Service is running",
		})
	})

	assetRepository := postgres.NewAssetRepository(db)
	qrRepository := postgres.NewQrCodeRepository(db)
	userRepository := postgres.NewUserRepository(db)
	verificationRepository := postgres.NewVerificationRepository(db)
	complaintRepository := postgres.NewComplaintRepository(db)

	qrService := qr.NewService(qrRepository, assetRepository, db)
	assetService := asset.NewService(assetRepository, qrRepository, db)
	verificationService := verification.NewService(assetRepository, userRepository, verificationRepository, complaintRepository)

	qrHandler := handler.NewQrHandler(qrService)
	assetHandler := handler.NewAssetHandler(assetService)
	verificationHandler := handler.NewVerificationHandler(verificationService)

	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(cfg))
		{
			staff := protected.Group("/staff")
			staff.Use(middleware.StaffOnly())
			{
				qrHandler.RegisterStaffRoutes(staff)
				verificationHandler.RegisterStaffRoutes(staff)
			}

			admin := protected.Group("/admin")
			admin.Use(middleware.AdminOnly())
			{
				qrHandler.RegisterAdminRoutes(admin)
				assetHandler.RegisterAdminRoutes(admin)
				verificationHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	logger.Info("All routes initialized")
	return router
}
