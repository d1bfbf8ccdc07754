package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlink/backend/internal/model"
)

// serverError hides internal failure detail from the client; the raw
// error goes to the server log only.
func serverError(c *gin.Context, err error) {
	log.Printf("[HTTP] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, model.NewErrorResponse("Server error"))
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, model.NewErrorResponse(msg))
}

func fieldErrors(c *gin.Context, errs []model.FieldError) {
	c.JSON(http.StatusBadRequest, model.ErrorResponse{Errors: errs})
}
