package main

import (
	"html/template"
	"log"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Liyana-shirin/hospital-management-system-frontent/config"
	"github.com/Liyana-shirin/hospital-management-system-frontent/middleware"
	"github.com/Liyana-shirin/hospital-management-system-frontent/routes"
	"github.com/Liyana-shirin/hospital-management-system-frontent/services"
	"github.com/Liyana-shirin/hospital-management-system-frontent/session"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := config.NewConfig()
	if cfg.SessionSecret == "" {
		log.Fatal("SESSION_SECRET environment variable is required")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	api := services.NewClient(cfg.APIBaseURL)
	store := session.NewCookieStore(cfg.SessionSecret, cfg.SessionCookieName, cfg.Environment == "production")

	monitor := services.NewMonitor(api)
	if cfg.UpstreamMonitorEnabled {
		monitor.Start()
		defer monitor.Stop()
	}

	router := gin.Default()
	router.Use(config.CORSMiddleware(cfg))
	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.RequestID())
	router.Use(middleware.Observe())

	router.SetFuncMap(template.FuncMap{
		"add": func(a, b int) int { return a + b },
	})
	router.LoadHTMLGlob("templates/*.html")

	routes.SetupRoutes(router, api, store, monitor, cfg)

	log.Printf("Portal listening on :%s (API at %s)", cfg.Port, cfg.APIBaseURL)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
