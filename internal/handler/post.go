package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devlink/backend/internal/model"
	"github.com/devlink/backend/internal/service"
	"github.com/devlink/backend/internal/validate"
)

type PostHandler struct {
	svc *service.PostService
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

var postChecks = []validate.Check{
	{Field: "text", Message: "Text is required", Kind: validate.NotEmpty},
}

// Create godoc
// @Summary Create a post
// @Tags post
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body model.PostRequest true "Post text"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post [post]
func (h *PostHandler) Create(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if errs := validate.Run(map[string]string{"text": req.Text}, postChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	post, err := h.svc.Create(c.Request.Context(), user.ID, req.Text)
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, post)
}

// All godoc
// @Summary List posts, newest first
// @Tags post
// @Produce json
// @Param user query string false "Filter by author user ID"
// @Success 200 {array} model.Post
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post [get]
func (h *PostHandler) All(c *gin.Context) {
	var (
		posts []model.Post
		err   error
	)
	if userID := c.Query("user"); userID != "" {
		posts, err = h.svc.AllByUser(c.Request.Context(), userID)
	} else {
		posts, err = h.svc.All(c.Request.Context())
	}
	if err != nil {
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, posts)
}

// ByID godoc
// @Summary Get a post by id
// @Tags post
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post/{post_id} [get]
func (h *PostHandler) ByID(c *gin.Context) {
	post, err := h.svc.ByID(c.Request.Context(), c.Param("post_id"))
	if err != nil {
		writePostError(c, err, "Post not found!")
		return
	}
	c.JSON(http.StatusOK, post)
}

// Update godoc
// @Summary Update the caller's own post
// @Tags post
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Param request body model.PostRequest true "Post text"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post/{post_id} [put]
func (h *PostHandler) Update(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.PostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if errs := validate.Run(map[string]string{"text": req.Text}, postChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	post, err := h.svc.Update(c.Request.Context(), c.Param("post_id"), user.ID, req.Text)
	if err != nil {
		writePostError(c, err, "Could not update post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// Delete godoc
// @Summary Delete the caller's own post
// @Tags post
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post/{post_id} [delete]
func (h *PostHandler) Delete(c *gin.Context) {
	user := GetAuthUser(c)

	post, err := h.svc.Delete(c.Request.Context(), c.Param("post_id"), user.ID)
	if err != nil {
		writePostError(c, err, "Could not delete post")
		return
	}

	c.JSON(http.StatusOK, post)
}

// Like godoc
// @Summary Like a post
// @Tags post
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post/{post_id}/like [put]
func (h *PostHandler) Like(c *gin.Context) {
	user := GetAuthUser(c)

	post, err := h.svc.Like(c.Request.Context(), c.Param("post_id"), user.ID)
	if err != nil {
		writePostError(c, err, "No post found!")
		return
	}

	c.JSON(http.StatusOK, post)
}

// Unlike godoc
// @Summary Remove a like from a post
// @Tags post
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post/{post_id}/like [delete]
func (h *PostHandler) Unlike(c *gin.Context) {
	user := GetAuthUser(c)

	post, err := h.svc.Unlike(c.Request.Context(), c.Param("post_id"), user.ID)
	if err != nil {
		writePostError(c, err, "No post found!")
		return
	}

	c.JSON(http.StatusOK, post)
}

// AddComment godoc
// @Summary Comment on a post
// @Tags post
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Param request body model.CommentRequest true "Comment text"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post/{post_id}/comment [post]
func (h *PostHandler) AddComment(c *gin.Context) {
	user := GetAuthUser(c)

	var req model.CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body")
		return
	}

	if errs := validate.Run(map[string]string{"text": req.Text}, postChecks); errs != nil {
		fieldErrors(c, errs)
		return
	}

	post, err := h.svc.AddComment(c.Request.Context(), c.Param("post_id"), user.ID, req.Text)
	if err != nil {
		writePostError(c, err, "Post not found!")
		return
	}

	c.JSON(http.StatusOK, post)
}

// RemoveComment godoc
// @Summary Remove the caller's own comment
// @Tags post
// @Produce json
// @Security ApiKeyAuth
// @Param post_id path string true "Post ID"
// @Param comment_id path string true "Comment ID"
// @Success 200 {object} model.Post
// @Failure 400 {object} model.ErrorResponse
// @Failure 401 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /api/post/{post_id}/comment/{comment_id} [delete]
func (h *PostHandler) RemoveComment(c *gin.Context) {
	user := GetAuthUser(c)

	post, err := h.svc.RemoveComment(c.Request.Context(), c.Param("post_id"), c.Param("comment_id"), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			badRequest(c, "Comment not found")
		case errors.Is(err, service.ErrNotAuthorized):
			c.JSON(http.StatusUnauthorized, model.NewErrorResponse("User not authorized"))
		default:
			writePostError(c, err, "Post not found!")
		}
		return
	}

	c.JSON(http.StatusOK, post)
}

func writePostError(c *gin.Context, err error, notFoundMsg string) {
	if errors.Is(err, service.ErrPostNotFound) {
		badRequest(c, notFoundMsg)
		return
	}
	serverError(c, err)
}
