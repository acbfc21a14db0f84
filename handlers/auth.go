package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Mock authentication for frontend compatibility. Credentials are never
// verified or stored; any non-empty pair gets a synthetic user and a
// timestamp token.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type MockUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func mockToken() string {
	return fmt.Sprintf("mock_token_%d", time.Now().Unix())
}

// LoginHandler accepts any non-empty email/password pair.
func (h *Handler) LoginHandler(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   mockToken(),
		"user": MockUser{
			ID:    uuid.New().String(),
			Name:  displayNameFromEmail(req.Email),
			Email: req.Email,
		},
	})
}

// RegisterHandler accepts any request with name, email, and password set.
func (h *Handler) RegisterHandler(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" || req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid data"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   mockToken(),
		"user": MockUser{
			ID:    uuid.New().String(),
			Name:  req.Name,
			Email: req.Email,
		},
	})
}

// displayNameFromEmail title-cases the local part of an email address:
// "amina.k@example.com" becomes "Amina.K".
func displayNameFromEmail(email string) string {
	local := email
	if at := strings.Index(email, "@"); at >= 0 {
		local = email[:at]
	}
	return titleWords(local)
}

// titleWords capitalizes the first letter of every word, lowercasing the
// rest, with non-letters treated as word boundaries.
func titleWords(s string) string {
	var sb strings.Builder
	startWord := true
	for _, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		switch {
		case !isLetter:
			sb.WriteRune(r)
			startWord = true
		case startWord:
			sb.WriteString(strings.ToUpper(string(r)))
			startWord = false
		default:
			sb.WriteString(strings.ToLower(string(r)))
		}
	}
	return sb.String()
}
