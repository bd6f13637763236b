package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nimblelabs/inquiry-api/internal/api/handlers"
)

type Deps struct {
	Contact *handlers.ContactHandler

	// UploadDir and StaticDir are served read-only.
	UploadDir string
	StaticDir string
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health-ish
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.POST("/api/contact", d.Contact.Create)

	if d.UploadDir != "" {
		r.Static("/uploads", d.UploadDir)
	}

	// Static site fallback for everything unmatched.
	if d.StaticDir != "" {
		fs := http.FileServer(http.Dir(d.StaticDir))
		r.NoRoute(gin.WrapH(fs))
	}
}
