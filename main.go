package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"prodea_gateway/api"
	"prodea_gateway/board"
	"prodea_gateway/config"
	"prodea_gateway/routes"
	"prodea_gateway/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found") // Non-fatal in production
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Open the session store
	sessions, err := session.Open(cfg.SessionDBPath)
	if err != nil {
		log.Fatalf("Error opening session store: %v", err)
	}
	defer sessions.Close()

	client := api.NewClient(cfg.APIBaseURL)
	boards := board.NewManager(client)

	// One-shot connectivity probe before serving. Failures only warn;
	// the first board fetch will succeed or fail on its own.
	probeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	result := client.Probe(probeCtx)
	cancel()
	if result.Reachable {
		log.Printf("Backend is reachable. Working endpoints: %s", strings.Join(result.Working, ", "))
		if len(result.Failed) > 0 {
			log.Printf("Warning: some endpoints failed: %s", strings.Join(result.Failed, ", "))
		}
	} else {
		log.Printf("Warning: cannot reach backend at %s: %s", cfg.APIBaseURL, strings.Join(result.Failed, ", "))
	}

	// Initialize router
	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// Setup CORS for the browser front end
	corsConfig := cors.DefaultConfig()
	if cfg.FrontendURL != "" {
		corsConfig.AllowOrigins = []string{cfg.FrontendURL}
		corsConfig.AllowCredentials = true
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = []string{
		"Origin",
		"Content-Length",
		"Content-Type",
		"Authorization",
	}
	corsConfig.AllowMethods = []string{
		"GET",
		"POST",
		"PUT",
		"DELETE",
	}
	r.Use(cors.New(corsConfig))

	// Setup routes
	routes.SetupRoutes(r, client, sessions, boards)

	// Run server
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down gateway...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}
}
