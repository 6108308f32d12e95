package main

import (
	"log"
	"os"

	"bookclub/internal/db"
	"bookclub/internal/router"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present, real deployments use the environment directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from environment")
	}

	db.Init()

	r := gin.Default()
	r.Use(cors.Default())

	router.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}

	log.Printf("Server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
