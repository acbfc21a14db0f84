package handlers

import (
	"log"
	"net/http"

	"rihla/services"

	"github.com/gin-gonic/gin"
)

type ExportPDFRequest struct {
	Itinerary    string `json:"itinerary"`
	JourneyTitle string `json:"journey_title"`
	TravelerName string `json:"traveler_name"`
}

// ExportPDFHandler renders a previously generated itinerary into a PDF
// and streams it back. Stateless: the itinerary arrives in the request
// body, nothing is looked up or stored.
func (h *Handler) ExportPDFHandler(c *gin.Context) {
	var req ExportPDFRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if req.Itinerary == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing itinerary text"})
		return
	}

	pdfBytes, err := services.GeneratePDFBytes(services.PDFData{
		JourneyTitle: req.JourneyTitle,
		TravelerName: req.TravelerName,
		Itinerary:    req.Itinerary,
	})
	if err != nil {
		log.Printf("❌ PDF generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate PDF"})
		return
	}

	log.Printf("✅ PDF generated (%d bytes)", len(pdfBytes))

	c.Header("Content-Disposition", "attachment; filename=rihla-itinerary.pdf")
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
