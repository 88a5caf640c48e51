// server.go - Router construction

package server

import (
	"fruitpie-jobboard/auth"
	"fruitpie-jobboard/handlers"
	"fruitpie-jobboard/middleware"
	"fruitpie-jobboard/session"
	"fruitpie-jobboard/web"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// New returns the application's router.
func New(db *gorm.DB, tokens *auth.TokenManager, logger zerolog.Logger) *gin.Engine {
	h := handlers.NewHandler(db, tokens)
	resolver := session.NewResolver(h.Tokens, h.Users)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.RequestLogger(logger), gin.Recovery())
	r.SetHTMLTemplate(web.Templates())
	r.StaticFS("/static", web.Static())

	// Public routes
	r.GET("/", middleware.OptionalUser(resolver), h.Index)
	r.GET("/jobs", h.ListJobs)
	r.GET("/health", h.Health)
	r.POST("/token", h.Token)
	r.POST("/users/register", h.Register)

	// Protected routes
	users := r.Group("/users")
	users.Use(middleware.RequireUser(resolver))
	{
		users.GET("/me", h.Me)
	}

	return r
}
