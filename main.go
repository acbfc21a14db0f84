package main

import (
	"log"
	"os"
	"strings"
	"time"

	"rihla/handlers"
	"rihla/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file (ignored in production where env vars are set directly)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found — using environment variables")
	}

	// Construct service clients once; handlers receive them explicitly.
	qloo := services.NewQlooClient(os.Getenv("QLOO_API_KEY"))
	gemini := services.NewGeminiClient(os.Getenv("GEMINI_API_KEY"))
	extractor := services.NewExtractor(services.ProseTagger{})

	h := handlers.New(qloo, gemini, extractor)

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.SetTrustedProxies([]string{"0.0.0.0/0"})

	// CORS — allow configured frontend origins
	frontendURLs := os.Getenv("FRONTEND_URL")
	allowedOrigins := []string{"http://localhost:5173", "http://localhost:3000"}
	if frontendURLs != "" {
		for _, u := range strings.Split(frontendURLs, ",") {
			u = strings.TrimSpace(u)
			if u != "" {
				allowedOrigins = append(allowedOrigins, u)
			}
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("templates/*")
	r.Static("/static", "./static")

	// Routes
	r.GET("/", h.IndexHandler)
	r.POST("/", h.IndexHandler)
	r.POST("/auth/login", h.LoginHandler)
	r.POST("/auth/register", h.RegisterHandler)
	r.GET("/trip", h.TripHandler)
	r.POST("/trip", h.TripHandler)

	api := r.Group("/api")
	{
		api.GET("/test", h.TestHandler)
		api.POST("/weave-journey", h.WeaveJourneyHandler)
		api.POST("/export-pdf", h.ExportPDFHandler)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("🚀 Rihla backend starting on port %s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
