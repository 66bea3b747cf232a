package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (s *Server) routes() *gin.Engine {
	r := gin.New()
	r.Use(s.accessLog(), s.recovery())

	r.GET("/", s.Status)

	a := r.Group("/auth")
	a.POST("/register", s.Register)
	a.POST("/login", s.Login)

	g := r.Group("/games", s.accessGate())
	g.GET("", s.ListGames)
	g.POST("", s.CreateGame)
	g.PATCH("/:id", s.UpdateGame)
	g.DELETE("/:id", s.DeleteGame)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
