package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// currentUserKey is the gin context key under which the session guard stores
// the authenticated *models.UserSummary.
const currentUserKey = "current_user"

const (
	msgNoToken     = "not authorized, no token"
	msgTokenFailed = "not authorized, token failed"
)

// authRequired is the session guard: it extracts the bearer token, resolves
// it to a live user, and aborts with 401 otherwise. The response body never
// says which check failed; the log does.
func (s *Server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			respondError(c, http.StatusUnauthorized, msgNoToken)
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		user, err := s.users.VerifySession(c.Request.Context(), token)
		if err != nil {
			s.logger.Warn(c.Request.Context(), "session verification failed", "error", err)
			respondError(c, http.StatusUnauthorized, msgTokenFailed)
			c.Abort()
			return
		}

		c.Set(currentUserKey, user)
		c.Next()
	}
}

// corsMiddleware reflects allowed origins and answers preflight requests.
func (s *Server) corsMiddleware() gin.HandlerFunc {
	allowed := map[string]struct{}{}
	for _, o := range s.cfg.AllowedOrigins {
		allowed[strings.ToLower(o)] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := allowed[strings.ToLower(origin)]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		c.Next()
	}
}
