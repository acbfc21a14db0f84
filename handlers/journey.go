package handlers

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type WeaveJourneyRequest struct {
	SoulThread string `json:"soulThread"`
}

// TestHandler is a simple health check for the frontend.
func (h *Handler) TestHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "Backend API is working!",
		"timestamp": time.Now().Unix(),
	})
}

// WeaveJourneyHandler is the JSON entry point for itinerary generation.
func (h *Handler) WeaveJourneyHandler(c *gin.Context) {
	var req WeaveJourneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error generating journey: " + err.Error(),
		})
		return
	}

	if req.SoulThread == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Soul thread cannot be empty"})
		return
	}

	log.Printf("🌟 Weaving journey for input: %.100s", req.SoulThread)

	itinerary, err := h.weaveItinerary(req.SoulThread)
	if err != nil {
		log.Printf("❌ Journey weaving failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Error generating journey: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"itinerary":     itinerary,
		"journey_title": JourneyTitle,
		"user_input":    req.SoulThread,
	})
}
