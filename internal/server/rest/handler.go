package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/gamecatalog/internal/server/models"
	"github.com/gin-gonic/gin"
)

const pingTimeout = 2 * time.Second

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Status reports liveness together with store reachability.
func (s *Server) Status(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), pingTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn(ctx, "store unreachable", "error", err.Error())
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "UNAVAILABLE"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (s *Server) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	user, err := s.users.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "user_id", user.ID)
	c.JSON(http.StatusOK, user.Public())
}

func (s *Server) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequestBody(c)
		return
	}

	token, user, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "Logged in", "user_id", user.ID)
	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) ListGames(c *gin.Context) {
	games, err := s.games.List(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

func (s *Server) CreateGame(c *gin.Context) {
	var fields models.GamePatch
	if err := c.ShouldBindJSON(&fields); err != nil {
		badRequestBody(c)
		return
	}

	game, err := s.games.Create(c.Request.Context(), fields)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (s *Server) UpdateGame(c *gin.Context) {
	var patch models.GamePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		badRequestBody(c)
		return
	}

	game, err := s.games.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}

func (s *Server) DeleteGame(c *gin.Context) {
	game, err := s.games.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, game)
}
