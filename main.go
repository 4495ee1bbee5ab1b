package main

import (
	"log"
	"net/http"
	"path/filepath"
	"time"

	"github.com/techspace-club/community-backend/config"
	"github.com/techspace-club/community-backend/controllers"
	"github.com/techspace-club/community-backend/middlewares"
	"github.com/techspace-club/community-backend/routes"
	"github.com/techspace-club/community-backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// setupRouter initializes Gin routes and middleware
func setupRouter(cfg *config.Config, winners *services.WinnerStore, announcements *services.AnnouncementStore, chat *services.ChatHub) *gin.Engine {
	r := gin.Default()

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup REST routes
	routes.SetupRoutes(r, cfg, winners, announcements)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	// Chat relay endpoint
	r.GET("/ws", chat.HandleWebSocket)

	// Admin page behind the gate
	adminAuth := middlewares.AdminAuth(cfg.AdminUser, cfg.AdminPassword)
	r.GET("/admin", adminAuth, func(c *gin.Context) {
		c.File(filepath.Join(cfg.PublicDir, "admin.html"))
	})

	// Static assets: site frontend at the root, certificates under their
	// download prefix
	r.StaticFile("/", filepath.Join(cfg.PublicDir, "index.html"))
	r.Static(controllers.CertificatePrefix, cfg.CertificatesDir)
	r.NoRoute(func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.File(filepath.Join(cfg.PublicDir, filepath.Clean(c.Request.URL.Path)))
			return
		}
		c.Status(http.StatusNotFound)
	})

	return r
}

func main() {
	// Load env variables
	cfg := config.Load()

	// Initialize the file-backed stores and the chat hub
	winners := services.NewWinnerStore(cfg.WinnersFile)
	announcements := services.NewAnnouncementStore(cfg.AnnouncementFile)
	chat := services.NewChatHub()

	// Setup Gin router
	router := setupRouter(cfg, winners, announcements, chat)

	// Start server
	log.Printf("🚀 TechSpace backend starting on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("[FATAL] Failed to start server: %v", err)
	}
}
