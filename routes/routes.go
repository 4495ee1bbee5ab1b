package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/techspace-club/community-backend/config"
	"github.com/techspace-club/community-backend/controllers"
	"github.com/techspace-club/community-backend/middlewares"
	"github.com/techspace-club/community-backend/services"
)

func SetupRoutes(r *gin.Engine, cfg *config.Config, winners *services.WinnerStore, announcements *services.AnnouncementStore) {
	wc := controllers.NewWinnerController(winners)
	ac := controllers.NewAnnouncementController(announcements)

	api := r.Group("/api")

	// ----------------------
	// Public routes
	// ----------------------
	api.GET("/winners", wc.ListPublic)             // Winner list, codes stripped
	api.POST("/certificate", wc.VerifyCertificate) // Certificate verification
	api.GET("/announcement", ac.Get)               // Current announcement
	api.POST("/announcement", ac.Set)              // Update announcement

	// ----------------------
	// Admin routes
	// ----------------------
	admin := api.Group("/admin", middlewares.AdminAuth(cfg.AdminUser, cfg.AdminPassword))
	admin.GET("/winners", wc.ListAdmin) // Full list with codes and files
	admin.POST("/winners", wc.Add)      // Add a winner
}
