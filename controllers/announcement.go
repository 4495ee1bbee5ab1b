package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techspace-club/community-backend/services"
)

type AnnouncementController struct {
	store *services.AnnouncementStore
}

func NewAnnouncementController(store *services.AnnouncementStore) *AnnouncementController {
	return &AnnouncementController{store: store}
}

// Get returns the current announcement.
func (ac *AnnouncementController) Get(c *gin.Context) {
	c.JSON(http.StatusOK, ac.store.Get())
}

// Set replaces the announcement text.
func (ac *AnnouncementController) Set(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Announcement cannot be empty."})
		return
	}

	ann, err := ac.store.Set(req.Text)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to update announcement."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "announcement": ann})
}
