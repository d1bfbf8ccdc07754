package handler

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/devlink/backend/internal/model"
)

const (
	authUserKey     = "auth_user"
	authTokenHeader = "x-auth-token"
)

// TokenParser verifies an opaque bearer token into an identity.
type TokenParser interface {
	Parse(token string) (*model.AuthUser, error)
}

// AuthMiddleware guards protected routes. The token travels in the
// x-auth-token header; a missing header rejects the request without
// touching the parser. Decode failures all map to one response so the
// boundary leaks nothing about why a token was rejected.
func AuthMiddleware(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.Next()
			return
		}

		token := c.GetHeader(authTokenHeader)
		if token == "" {
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse("No token, authorization denied."))
			c.Abort()
			return
		}

		user, err := parser.Parse(token)
		if err != nil {
			log.Printf("[Auth] token rejected: %v", err)
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse("Token is not valid"))
			c.Abort()
			return
		}

		c.Set(authUserKey, user)
		c.Next()
	}
}

func GetAuthUser(c *gin.Context) *model.AuthUser {
	if value, ok := c.Get(authUserKey); ok {
		if user, ok := value.(*model.AuthUser); ok {
			return user
		}
	}
	return nil
}

func CORSMiddleware(allowedOrigins []string) gin.HandlerFunc {
	originMap := make(map[string]struct{}, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		trimmed := strings.TrimSpace(origin)
		if trimmed == "" {
			continue
		}
		originMap[trimmed] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if _, ok := originMap[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
				c.Header("Access-Control-Allow-Headers", "Content-Type, x-auth-token")
				c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.Status(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
