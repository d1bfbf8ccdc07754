package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlink/backend/internal/model"
	"github.com/devlink/backend/internal/service"
	"github.com/devlink/backend/internal/validate"
)

type UserHandler struct {
	svc *service.AuthService
}

func NewUserHandler(svc *service.AuthService) *UserHandler {
	return &UserHandler{svc: svc}
}

var registerChecks = []validate.Check{
	{Field: "name", Message: "Name is required", Kind: validate.NotEmpty},
	{Field: "email", Message: "Please include a valid email", Kind: validate.Email},
	{Field: "password", Message: "Please enter a password with 6 or more characters", Kind: validate.MinLength, Min: 6},
}

// Register godoc
// @Summary Register a new user
// @Tags user
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Name, email and password"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/user [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	fields := map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
	}
	if errs := validate.Run(fields, registerChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	token, err := h.svc.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			badRequest(c, "User already exists")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}
