package main

import (
	"log"
	"time"

	"union-admin/config"
	"union-admin/database"
	routes "union-admin/internal/app/http"
	"union-admin/internal/infra/blobstore"
	"union-admin/internal/infra/docstore"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()

	db := database.InitDB()
	docs := docstore.New(db)
	blobs, err := blobstore.New(config.UPLOADS_DIR, config.PUBLIC_BASE_URL+"/uploads")
	if err != nil {
		log.Fatal("❌ Failed to init blob store:", err)
	}
	database.Seed(db, docs)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r, db, docs, blobs)

	r.Run(":" + config.PORT)
}
