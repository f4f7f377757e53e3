package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/entity"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/internal/domain/repository"
	"github.com/RizbiAhmmad/E-Learning-Website-Server/pkg/helpers"
)

// Context keys populated by Auth.
const (
	CtxClaimsKey = "claims"
	CtxEmailKey  = "userEmail"
)

// Every authentication failure gets the same body regardless of which
// check failed; 403 is reserved for role and self-match denials.
const (
	msgUnauthorized = "unauthorized access"
	msgForbidden    = "forbidden access"
)

// Auth extracts the bearer token from the Authorization header, verifies
// it and attaches the decoded claims to the request context. A missing
// header, malformed value, bad signature and expired token all abort
// with the same 401.
func Auth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgUnauthorized})
			return
		}
		claims, err := jwt.Verify(bearerToken(header))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": msgUnauthorized})
			return
		}
		c.Set(CtxClaimsKey, claims)
		if email, ok := claims["email"].(string); ok {
			c.Set(CtxEmailKey, email)
		}
		c.Next()
	}
}

// AuthAdmin returns the authenticated guard chained with the admin
// check. The admin check is not exported on its own: it reads the email
// Auth put in context, so the only way to register it is behind Auth.
func AuthAdmin(jwt *helpers.JWTManager, users repository.UserRepository) gin.HandlersChain {
	return gin.HandlersChain{Auth(jwt), adminOnly(users)}
}

func adminOnly(users repository.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(CtxEmailKey)
		u, err := users.FindByEmail(c.Request.Context(), email)
		if err != nil || u.Role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": msgForbidden})
			return
		}
		c.Next()
	}
}

// AuthedEmail returns the authenticated caller's email from context.
func AuthedEmail(c *gin.Context) string {
	return c.GetString(CtxEmailKey)
}

// AuthedClaims returns the decoded claims Auth stored in context.
func AuthedClaims(c *gin.Context) jwt.MapClaims {
	v, ok := c.Get(CtxClaimsKey)
	if !ok {
		return nil
	}
	claims, _ := v.(jwt.MapClaims)
	return claims
}

func bearerToken(header string) string {
	parts := strings.Fields(header)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
