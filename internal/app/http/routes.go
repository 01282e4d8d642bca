package routes

import (
	aboutapi "union-admin/internal/api/about"
	adminapi "union-admin/internal/api/admin"
	authapi "union-admin/internal/api/auth"
	contactapi "union-admin/internal/api/contact"
	dashboardapi "union-admin/internal/api/dashboard"
	eventsapi "union-admin/internal/api/events"
	messagesapi "union-admin/internal/api/messages"
	newsapi "union-admin/internal/api/news"
	"union-admin/internal/app/http/middleware"

	"union-admin/config"
	"union-admin/internal/infra/blobstore"
	"union-admin/internal/infra/docstore"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires the whole dashboard surface: a public group (login,
// contact form, uploaded assets) and the protected content routes behind the
// session guard.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, docs *docstore.Store, blobs *blobstore.Store) {
	authHandler := authapi.NewHandler(db)
	adminHandler := adminapi.NewHandler(db)
	aboutHandler := aboutapi.NewHandler(docs, blobs)
	contactHandler := contactapi.NewHandler(docs)
	eventsHandler := eventsapi.NewHandler(docs)
	newsHandler := newsapi.NewHandler(docs, blobs)
	messagesHandler := messagesapi.NewHandler(docs)
	dashboardHandler := dashboardapi.NewHandler(docs)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded images and PDFs are served straight from disk.
	r.Static("/uploads", config.UPLOADS_DIR)

	public := r.Group("/")
	public.Use(middleware.SanitizeInput())
	public.POST("/login", authHandler.Login)
	public.POST("/contact", messagesHandler.Submit)

	if config.GoogleEnabled() {
		r.GET("/auth/google", authHandler.GoogleStart)
		r.GET("/auth/google/callback", authHandler.GoogleCallback)
	}

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", authHandler.Me)
	auth.POST("/change-password", authHandler.ChangePassword)

	auth.GET("/dashboard/stats", dashboardHandler.GetStats)

	auth.GET("/about-union", aboutHandler.Get)
	auth.PUT("/about-union", aboutHandler.Update)

	auth.GET("/contact-info", contactHandler.Get)
	auth.PUT("/contact-info", contactHandler.Update)

	auth.GET("/events", eventsHandler.List)
	auth.POST("/events", eventsHandler.Create)
	auth.PUT("/events/:id", eventsHandler.Update)
	auth.DELETE("/events/:id", eventsHandler.Delete)

	auth.GET("/news", newsHandler.List)
	auth.POST("/news", newsHandler.Create)
	auth.PUT("/news/:id", newsHandler.Update)
	auth.DELETE("/news/:id", newsHandler.Delete)

	auth.GET("/messages", messagesHandler.List)
	auth.PATCH("/messages/:id/read", messagesHandler.MarkRead)
	auth.PATCH("/messages/:id/respond", messagesHandler.MarkResponded)
	auth.DELETE("/messages/:id", messagesHandler.Delete)

	// Staff management is admin-only.
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireRole("admin"))
	admin.GET("/staff", adminHandler.ListStaff)
	admin.POST("/staff", adminHandler.CreateStaff)
	admin.DELETE("/staff/:id", adminHandler.DeleteStaff)
}
