package routes

import (
	"net/http"
	"time"

	"realty-backend/handlers"
	"realty-backend/middleware"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	authHandler := &handlers.AuthHandler{DB: db}
	listingHandler := &handlers.ListingHandler{DB: db}
	masterHandler := &handlers.MasterDataHandler{DB: db}
	importHandler := &handlers.ImportHandler{DB: db}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", loginLimiter.Middleware(), authHandler.Login)
			auth.POST("/refresh", loginLimiter.Middleware(), authHandler.Refresh)
			auth.GET("/profile", middleware.AuthMiddleware(), authHandler.GetProfile)
		}

		api.GET("/listings", listingHandler.GetListings)
		api.GET("/listings/:id", listingHandler.GetListing)
		api.GET("/master/:kind", masterHandler.GetMasterData)

		admin := api.Group("/admin", middleware.AuthMiddleware(), middleware.AdminMiddleware())
		{
			admin.POST("/listings/bulk-upload", importHandler.BulkUpload)
			admin.DELETE("/listings/:id", listingHandler.DeleteListing)

			admin.POST("/master/:kind", masterHandler.CreateMasterData)
			admin.DELETE("/master/:kind/:id", masterHandler.DeleteMasterData)

			admin.GET("/import-jobs", importHandler.GetImportJobs)
			admin.GET("/import-jobs/:id", importHandler.GetImportJob)
		}
	}
}
