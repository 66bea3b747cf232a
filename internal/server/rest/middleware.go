package rest

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/dmitrijs2005/gamecatalog/internal/common"
	"github.com/dmitrijs2005/gamecatalog/internal/server/auth"
	"github.com/gin-gonic/gin"
)

const claimsKey = "claims"

// accessGate rejects requests without a valid token and attaches the
// verified claims to both the gin and the request context.
func (s *Server) accessGate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c.GetHeader(common.AuthorizationHeaderName))

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": common.ErrMissingCredential.Error()})
			return
		}

		claims, err := s.tokens.Verify(token)
		if err != nil {
			s.logger.Debug(c.Request.Context(), "token rejected", "error", err.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": common.ErrInvalidCredential.Error()})
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(auth.WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// extractToken returns the raw token, dropping an optional case-insensitive
// "Bearer" scheme.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	scheme := strings.TrimSpace(common.BearerPrefix)
	n := len(scheme)
	if len(header) >= n && strings.EqualFold(header[:n], scheme) && (len(header) == n || header[n] == ' ') {
		return strings.TrimSpace(header[n:])
	}
	return header
}

func (s *Server) accessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		args := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
			"client_ip", c.ClientIP(),
		}
		if claims, ok := auth.ClaimsFromContext(c.Request.Context()); ok {
			args = append(args, "user_id", claims.UserID())
		}
		s.logger.Info(c.Request.Context(), "request", args...)
	}
}

func (s *Server) recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		s.logger.Error(c.Request.Context(), "panic recovered", "error", fmt.Sprint(recovered))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	})
}
