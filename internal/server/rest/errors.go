package rest

import (
	"errors"
	"net/http"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/gin-gonic/gin"
)

// writeError maps service errors to status codes. Only validation errors
// carry their own message; everything else gets a fixed one.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, common.ErrAccountExists):
		c.JSON(http.StatusBadRequest, gin.H{"error": common.ErrAccountExists.Error()})
	case errors.Is(err, common.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": common.ErrInvalidCredentials.Error()})
	case errors.Is(err, common.ErrorNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	default:
		s.logger.Error(c.Request.Context(), err.Error(), "path", c.Request.URL.Path)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequestBody(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
