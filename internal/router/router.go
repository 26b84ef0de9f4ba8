package router

import (
	"github.com/gin-gonic/gin"
	"github.com/mehedihb/kagojghor-backend/config"
	"github.com/mehedihb/kagojghor-backend/internal/app/controller"
	"github.com/mehedihb/kagojghor-backend/internal/middleware"
)

type Router struct {
	authController        *controller.AuthController
	clientController      *controller.ClientController
	institutionController *controller.InstitutionController
	documentController    *controller.DocumentController
	extractionController  *controller.ExtractionController
	dashboardController   *controller.DashboardController
	reportController      *controller.ReportController
	uploadController      *controller.UploadController
	authMiddleware        *middleware.AuthMiddleware
	config                *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	clientController *controller.ClientController,
	institutionController *controller.InstitutionController,
	documentController *controller.DocumentController,
	extractionController *controller.ExtractionController,
	dashboardController *controller.DashboardController,
	reportController *controller.ReportController,
	uploadController *controller.UploadController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:        authController,
		clientController:      clientController,
		institutionController: institutionController,
		documentController:    documentController,
		extractionController:  extractionController,
		dashboardController:   dashboardController,
		reportController:      reportController,
		uploadController:      uploadController,
		authMiddleware:        authMiddleware,
		config:                cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "KAGOJGHOR API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register",
				r.authMiddleware.Authenticate(),
				r.authMiddleware.RequireRole("admin"),
				r.authController.Register,
			)
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.POST("/forgot-password", r.authController.ForgotPassword)
			auth.POST("/reset-password", r.authController.ResetPassword)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
			auth.PUT("/me", r.authMiddleware.Authenticate(), r.authController.UpdateMe)
			auth.PUT("/password", r.authMiddleware.Authenticate(), r.authController.ChangePassword)
		}

		clients := v1.Group("/clients")
		clients.Use(r.authMiddleware.Authenticate())
		{
			clients.GET("", r.clientController.List)
			clients.POST("", r.clientController.Create)
			clients.GET("/:id", r.clientController.Get)
			clients.PUT("/:id", r.clientController.Update)
			clients.DELETE("/:id", r.clientController.Delete)
		}

		institutions := v1.Group("/institutions")
		institutions.Use(r.authMiddleware.Authenticate())
		{
			institutions.GET("", r.institutionController.List)
			institutions.POST("", r.institutionController.Create)
			institutions.GET("/:id", r.institutionController.Get)
			institutions.PUT("/:id", r.institutionController.Update)
			institutions.DELETE("/:id", r.institutionController.Delete)
		}

		documents := v1.Group("/documents")
		documents.Use(r.authMiddleware.Authenticate())
		{
			documents.GET("", r.documentController.List)
			documents.POST("", r.documentController.Create)
			// Static routes before :id so gin doesn't shadow them
			documents.GET("/print", r.documentController.Print)
			documents.PUT("/print-status", r.documentController.PrintStatus)
			documents.POST("/bulk-delete", r.documentController.BulkDelete)
			documents.GET("/:id", r.documentController.Get)
			documents.PUT("/:id", r.documentController.Update)
			documents.DELETE("/:id", r.documentController.Delete)
			documents.POST("/:id/bill/recharges/regenerate", r.documentController.RegenerateRecharges)
		}

		maintenance := v1.Group("/maintenance")
		maintenance.Use(r.authMiddleware.Authenticate(), r.authMiddleware.RequireRole("admin"))
		{
			maintenance.POST("/recompute-certificates", r.documentController.RecomputeCertificates)
		}

		extractions := v1.Group("/extractions")
		extractions.Use(r.authMiddleware.Authenticate())
		{
			extractions.POST("", r.extractionController.Extract)
			extractions.POST("/stored", r.extractionController.ExtractStored)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(r.authMiddleware.Authenticate())
		{
			dashboard.GET("/stats", r.dashboardController.Stats)
		}

		reports := v1.Group("/reports")
		reports.Use(r.authMiddleware.Authenticate())
		{
			reports.GET("/documents.xlsx", r.reportController.DocumentsXLSX)
		}

		upload := v1.Group("/upload")
		upload.Use(r.authMiddleware.Authenticate())
		{
			upload.POST("/presigned-url", r.uploadController.GeneratePresignedURL)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
