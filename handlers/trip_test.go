package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTripRouter(t *testing.T, h *Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.LoadHTMLGlob("../templates/*")
	r.GET("/", h.IndexHandler)
	r.GET("/trip", h.TripHandler)
	r.POST("/trip", h.TripHandler)
	return r
}

func postForm(t *testing.T, r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIndexRendersMainPage(t *testing.T) {
	h := New(&stubCulture{}, &stubGenerator{}, &stubExtractor{})
	r := newTripRouter(t, h)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rihla")
}

func TestTripGetShowsEmptyForm(t *testing.T) {
	h := New(&stubCulture{}, &stubGenerator{}, &stubExtractor{})
	r := newTripRouter(t, h)

	req := httptest.NewRequest("GET", "/trip", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, `name="preferences"`)
	assert.NotContains(t, page, "Error:")
}

func TestTripPostRendersItinerary(t *testing.T) {
	gen := &stubGenerator{text: "Five days of wonder."}
	h := New(&stubCulture{}, gen, &stubExtractor{entities: []string{"Fes"}})
	r := newTripRouter(t, h)

	w := postForm(t, r, "/trip", url.Values{"preferences": {"I love Fes"}})

	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, "Five days of wonder.")
	assert.Contains(t, page, "I love Fes", "submitted preferences are echoed back")
}

func TestTripPostEmptyPreferencesStillProceeds(t *testing.T) {
	gen := &stubGenerator{text: "A journey from a blank page."}
	h := New(&stubCulture{}, gen, &stubExtractor{})
	r := newTripRouter(t, h)

	w := postForm(t, r, "/trip", url.Values{"preferences": {""}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "A journey from a blank page.")
}

func TestTripPostPipelineErrorRendersMessage(t *testing.T) {
	h := New(&stubCulture{}, &stubGenerator{}, &stubExtractor{err: errors.New("tagger exploded")})
	r := newTripRouter(t, h)

	w := postForm(t, r, "/trip", url.Values{"preferences": {"anything"}})

	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, "Error:")
	assert.Contains(t, page, "tagger exploded")
}

func TestTripPostGenerationFailureFallsBack(t *testing.T) {
	gen := &stubGenerator{err: errors.New("quota exceeded")}
	h := New(&stubCulture{}, gen, &stubExtractor{entities: []string{"Gnawa"}})
	r := newTripRouter(t, h)

	w := postForm(t, r, "/trip", url.Values{"preferences": {"Gnawa rhythms"}})

	require.Equal(t, http.StatusOK, w.Code)
	page := w.Body.String()
	assert.Contains(t, page, "Gnawa music performances")
	assert.NotContains(t, page, "Error:")
}
