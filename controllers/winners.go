package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/techspace-club/community-backend/models"
	"github.com/techspace-club/community-backend/services"
)

// CertificatePrefix is the URL prefix the certificates directory is mounted
// under; download URLs resolve beneath it.
const CertificatePrefix = "/certificates"

type WinnerController struct {
	store *services.WinnerStore
}

func NewWinnerController(store *services.WinnerStore) *WinnerController {
	return &WinnerController{store: store}
}

// ListPublic returns all winners with certificate fields stripped.
func (wc *WinnerController) ListPublic(c *gin.Context) {
	c.JSON(http.StatusOK, wc.store.ListPublic())
}

// ListAdmin returns the full winner list, codes and files included.
func (wc *WinnerController) ListAdmin(c *gin.Context) {
	c.JSON(http.StatusOK, wc.store.ListAll())
}

// Add creates a winner from the admin panel payload.
func (wc *WinnerController) Add(c *gin.Context) {
	var input models.WinnerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body."})
		return
	}

	winner, err := wc.store.Add(input)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to add winner."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "winner": winner})
}

// VerifyCertificate checks a (regNo, code) pair and hands back the
// download URL for the matching certificate.
func (wc *WinnerController) VerifyCertificate(c *gin.Context) {
	var req struct {
		RegNo           string `json:"regNo"`
		CertificateCode string `json:"certificateCode"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Registration number and certificate code are required."})
		return
	}

	file, err := wc.store.VerifyCertificate(req.RegNo, req.CertificateCode)
	if err != nil {
		var verr *services.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": verr.Message})
			return
		}
		if errors.Is(err, services.ErrNoMatch) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No matching certificate found. Check your details."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Verification failed."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "downloadUrl": CertificatePrefix + "/" + file})
}
