package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"rihla/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// ─── Service stubs ────────────────────────────────────────────────────────────

type stubCulture struct {
	searchResults map[string]map[string][]services.QlooItem // query -> cat -> items
	searched      []string
	recommendIn   map[string][]string
	recommendOut  map[string][]services.QlooItem
}

func (s *stubCulture) Search(query string) map[string][]services.QlooItem {
	s.searched = append(s.searched, query)
	res := make(map[string][]services.QlooItem)
	for _, cat := range services.Categories {
		res[cat] = []services.QlooItem{}
	}
	for cat, items := range s.searchResults[query] {
		res[cat] = items
	}
	return res
}

func (s *stubCulture) Recommend(idsByCat map[string][]string) map[string][]services.QlooItem {
	s.recommendIn = idsByCat
	if s.recommendOut != nil {
		return s.recommendOut
	}
	return map[string][]services.QlooItem{}
}

type stubGenerator struct {
	text       string
	err        error
	lastPrompt string
}

func (s *stubGenerator) GenerateItinerary(prompt string) (string, error) {
	s.lastPrompt = prompt
	return s.text, s.err
}

type stubExtractor struct {
	entities []string
	err      error
}

func (s *stubExtractor) Extract(text string) ([]string, error) {
	return s.entities, s.err
}

// ─── Router helpers ───────────────────────────────────────────────────────────

func newTestRouter(t *testing.T, h *Handler) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/auth/login", h.LoginHandler)
	r.POST("/auth/register", h.RegisterHandler)
	r.GET("/api/test", h.TestHandler)
	r.POST("/api/weave-journey", h.WeaveJourneyHandler)
	r.POST("/api/export-pdf", h.ExportPDFHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
