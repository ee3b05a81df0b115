package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"jobboard_backend/internal/api"
)

// Context keys under which the verified identity is attached for downstream handlers.
const (
	ContextUserID  = "userID"
	ContextIsAdmin = "isAdmin"
)

// AdminRequired returns a Gin middleware that verifies the bearer token and
// restricts access to admin users. A missing Authorization header yields 401;
// a token that is invalid, expired, or lacks the admin claim yields 403.
func AdminRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if auth == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.Failure("Missing token"))
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
			// Only HMAC is accepted; anything else is a forged token.
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusForbidden, api.Failure("Unauthorized"))
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusForbidden, api.Failure("Unauthorized"))
			return
		}
		isAdmin, _ := claims["isAdmin"].(bool)
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, api.Failure("Unauthorized"))
			return
		}

		if sub, ok := claims["sub"].(float64); ok { // JWT numbers are decoded as float64
			c.Set(ContextUserID, uint(sub))
		}
		c.Set(ContextIsAdmin, true)

		c.Next()
	}
}
