package main

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/veridian-ai/careers-portal/internal/config"
	"github.com/veridian-ai/careers-portal/internal/handlers"
	"github.com/veridian-ai/careers-portal/internal/services"
)

func main() {
	// 1. Load Environment Variables (.env is optional outside local dev)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading environment directly")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// 2. Initialize the upstream client (the only outbound dependency)
	upstream := services.NewUpstreamClient(cfg.UpstreamBaseURL, cfg.UpstreamTimeout)

	// 3. Initialize Handlers
	jobHandler := handlers.NewJobHandler(upstream)

	// 4. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))
	r.Use(handlers.RequestID())

	// 5. Define Routes
	api := r.Group("/api")
	{
		api.GET("/ping", handlers.Ping(cfg.PingMessage))

		public := api.Group("/public")
		public.GET("/jobs", jobHandler.ListJobs)
		public.GET("/jobs/:jobPostingId", jobHandler.GetJobDetails)
		public.POST("/jobs/:jobPostingId/apply", jobHandler.SubmitApplication)
	}

	// 6. Serve with explicit timeouts; a hanging upstream must never hang us
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.UpstreamTimeout + 5*time.Second,
	}

	log.Println("🚀 Server starting on port " + cfg.Port + "...")
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
