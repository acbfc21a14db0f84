package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

// IndexHandler serves the main page.
func (h *Handler) IndexHandler(c *gin.Context) {
	c.HTML(http.StatusOK, "frontend_index.html", gin.H{})
}

// TripHandler renders the classic form-based flow. GET shows the empty
// form; POST runs the pipeline on the "preferences" field. Empty input is
// accepted here and simply yields no entities.
func (h *Handler) TripHandler(c *gin.Context) {
	itinerary := ""
	errMsg := ""
	userText := ""

	if c.Request.Method == http.MethodPost {
		userText = c.PostForm("preferences")

		woven, err := h.weaveItinerary(userText)
		if err != nil {
			log.Printf("❌ Trip pipeline failed: %v", err)
			errMsg = "Error: " + err.Error()
		} else {
			itinerary = woven
		}
	}

	c.HTML(http.StatusOK, "trip.html", gin.H{
		"itinerary":   itinerary,
		"error":       errMsg,
		"preferences": userText,
	})
}
