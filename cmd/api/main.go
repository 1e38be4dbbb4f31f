package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/BruksfildServices01/estetica-agenda/internal/config"
	"github.com/BruksfildServices01/estetica-agenda/internal/middleware"
	"github.com/BruksfildServices01/estetica-agenda/internal/routes"
)

func main() {

	// .env é opcional — em produção as variáveis vêm do ambiente.
	_ = godotenv.Load()

	cfg := config.Load()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
