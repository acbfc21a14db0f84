package handlers

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportPDFReturnsDocument(t *testing.T) {
	h := New(&stubCulture{}, &stubGenerator{}, &stubExtractor{})
	r := newTestRouter(t, h)

	w := postJSON(t, r, "/api/export-pdf", map[string]string{
		"itinerary":     "Day 1: Marrakech\nDay 2: Fes",
		"journey_title": "Your Mystical Rihla Through Morocco",
		"traveler_name": "Amina",
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "rihla-itinerary.pdf")
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestExportPDFRejectsEmptyItinerary(t *testing.T) {
	h := New(&stubCulture{}, &stubGenerator{}, &stubExtractor{})
	r := newTestRouter(t, h)

	w := postJSON(t, r, "/api/export-pdf", map[string]string{"itinerary": ""})

	require.Equal(t, http.StatusBadRequest, w.Code)
}
