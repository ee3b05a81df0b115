// Package handler provides transport-agnostic platform HTTP handlers.
package handler

import "github.com/gin-gonic/gin"

// Health is the liveness endpoint.
func Health(c *gin.Context) {
	// Never cached: load balancers poll this.
	c.Header("Cache-Control", "no-store")

	switch c.Request.Method {
	case "HEAD":
		c.Status(200)
	case "OPTIONS":
		c.Status(204)
	default:
		c.JSON(200, gin.H{"status": "ok"})
	}
}
