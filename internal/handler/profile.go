package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/devlink/backend/internal/model"
	"github.com/devlink/backend/internal/service"
	"github.com/devlink/backend/internal/validate"
)

type ProfileHandler struct {
	svc *service.ProfileService
}

func NewProfileHandler(svc *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

var profileChecks = []validate.Check{
	{Field: "status", Message: "Status is required", Kind: validate.NotEmpty},
	{Field: "skills", Message: "Skills are required", Kind: validate.NotEmpty},
}

var experienceChecks = []validate.Check{
	{Field: "title", Message: "Title is required", Kind: validate.NotEmpty},
	{Field: "company", Message: "Company is required", Kind: validate.NotEmpty},
	{Field: "from", Message: "From date is required", Kind: validate.NotEmpty},
}

var educationChecks = []validate.Check{
	{Field: "school", Message: "School is required", Kind: validate.NotEmpty},
	{Field: "degree", Message: "Degree is required", Kind: validate.NotEmpty},
	{Field: "from", Message: "From date is required", Kind: validate.NotEmpty},
	{Field: "fieldofstudy", Message: "Field of study is required", Kind: validate.NotEmpty},
}

// Me godoc
// @Summary Get the caller's profile
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.Profile
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile/me [get]
func (h *ProfileHandler) Me(c *gin.Context) {
	user := GetAuthUser(c)

	profile, err := h.svc.Me(c.Request.Context(), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			badRequest(c, "There is no profile for this user")
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// All godoc
// @Summary List all profiles
// @Tags profile
// @Produce json
// @Success 200 {array} model.Profile
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile/all [get]
func (h *ProfileHandler) All(c *gin.Context) {
	profiles, err := h.svc.All(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, profiles)
}

// ByUserID godoc
// @Summary Get a profile by user id
// @Tags profile
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile/user/{id} [get]
func (h *ProfileHandler) ByUserID(c *gin.Context) {
	profile, err := h.svc.ByUserID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, model.NewErrorResponse("Profile not found"))
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Upsert godoc
// @Summary Create or update the caller's profile
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.ProfileRequest true "Profile fields"
// @Success 200 {object} model.Profile
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile [post]
func (h *ProfileHandler) Upsert(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.ProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	fields := map[string]string{"status": req.Status, "skills": req.Skills}
	if errs := validate.Run(fields, profileChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	profile, err := h.svc.Upsert(c.Request.Context(), user.ID, req)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// Delete godoc
// @Summary Delete the caller's profile, user and posts
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} model.DeleteResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile [delete]
func (h *ProfileHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)

	if err := h.svc.Delete(c.Request.Context(), user.ID); err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.DeleteResponse{
		Success: true,
		Msg:     "Profile sucessfully deleted.",
	})
}

// AddExperience godoc
// @Summary Add an experience entry
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.ExperienceRequest true "Experience entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile/experience [put]
func (h *ProfileHandler) AddExperience(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	fields := map[string]string{
		"title":   req.Title,
		"company": req.Company,
		"from":    timeField(req.From),
	}
	if errs := validate.Run(fields, experienceChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	profile, err := h.svc.AddExperience(c.Request.Context(), user.ID, req)
	if err != nil {
		writeProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveExperience godoc
// @Summary Remove an experience entry
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param exp_id path string true "Experience entry ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile/experience/{exp_id} [put]
func (h *ProfileHandler) RemoveExperience(c *gin.Context) {
	user := GetAuthUser(c)

	profile, err := h.svc.RemoveExperience(c.Request.Context(), user.ID, c.Param("exp_id"))
	if err != nil {
		writeProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// AddEducation godoc
// @Summary Add an education entry
// @Tags profile
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.EducationRequest true "Education entry"
// @Success 200 {object} model.Profile
// @Failure 400 {object} model.ErrorResponse
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile/education [put]
func (h *ProfileHandler) AddEducation(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	fields := map[string]string{
		"school":       req.School,
		"degree":       req.Degree,
		"from":         timeField(req.From),
		"fieldofstudy": req.FieldOfStudy,
	}
	if errs := validate.Run(fields, educationChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	profile, err := h.svc.AddEducation(c.Request.Context(), user.ID, req)
	if err != nil {
		writeProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RemoveEducation godoc
// @Summary Remove an education entry
// @Tags profile
// @Produce json
// @Security ApiKeyAuth
// @Param edu_id path string true "Education entry ID"
// @Success 200 {object} model.Profile
// @Failure 404 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/profile/education/{edu_id} [put]
func (h *ProfileHandler) RemoveEducation(c *gin.Context) {
	user := GetAuthUser(c)

	profile, err := h.svc.RemoveEducation(c.Request.Context(), user.ID, c.Param("edu_id"))
	if err != nil {
		writeProfileError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func writeProfileError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrProfileNotFound) {
		c.JSON(http.StatusNotFound, model.NewErrorResponse("Profile not found"))
		return
	}
	serverError(c, err)
}

func timeField(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
