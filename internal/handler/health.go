package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Root is the public health check.
func Root(c *gin.Context) {
	c.String(http.StatusOK, "API Running")
}
