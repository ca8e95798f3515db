package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/matlynx/matlynx-api/internal/config"
	dbpkg "github.com/matlynx/matlynx-api/internal/db"
	"github.com/matlynx/matlynx-api/internal/middleware"
	"github.com/matlynx/matlynx-api/internal/routes"
	"github.com/matlynx/matlynx-api/internal/session"
)

func main() {

	_ = godotenv.Load()

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	redisClient, err := session.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect redis: %v", err)
	}
	sessions := session.NewStore(redisClient, cfg.SessionTTL)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, sessions)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
