package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlink/backend/internal/model"
	"github.com/devlink/backend/internal/service"
	"github.com/devlink/backend/internal/validate"
)

type AuthHandler struct {
	svc *service.AuthService
}

func NewAuthHandler(svc *service.AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

var loginChecks = []validate.Check{
	{Field: "email", Message: "Please include a valid email", Kind: validate.Email},
	{Field: "password", Message: "Password is required", Kind: validate.NotEmpty},
}

// Login godoc
// @Summary Authenticate user and get token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Email and password"
// @Success 200 {object} model.TokenResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	fields := map[string]string{"email": req.Email, "password": req.Password}
	if errs := validate.Run(fields, loginChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	token, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			badRequest(c, "Invalid credentials")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.TokenResponse{Token: token})
}

// Me godoc
// @Summary Get the authenticated user
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.User
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/auth [get]
func (h *AuthHandler) Me(c *gin.Context) {
	user := GetAuthUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, model.NewErrorResponse("No token, authorization denied."))
		return
	}

	current, err := h.svc.CurrentUser(c.Request.Context(), user.ID)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, current)
}
