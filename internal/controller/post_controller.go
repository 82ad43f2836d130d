package controller

import (
	"studyshare_backend/internal/model"
	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PostController struct {
	PostService *service.PostService
}

func NewPostController(postService *service.PostService) *PostController {
	return &PostController{PostService: postService}
}

// List godoc
// @Summary List active posts
// @Description Pinned posts come first, then newest
// @Tags posts
// @Produce  json
// @Param   post_type   query string false "Filter by post type"
// @Param   category_id query string false "Filter by category"
// @Param   limit       query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.PostView}
// @Router /api/posts [get]
func (c *PostController) List(ctx *gin.Context) {
	posts, err := c.PostService.List(ctx.Query("post_type"), ctx.Query("category_id"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}

// ByAuthor godoc
// @Summary List a user's posts, including inactive ones
// @Tags posts
// @Produce  json
// @Security ApiKeyAuth
// @Param   id    path  string true  "Author ID"
// @Param   limit query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.PostView}
// @Router /api/posts/author/{id} [get]
func (c *PostController) ByAuthor(ctx *gin.Context) {
	posts, err := c.PostService.ListByAuthor(ctx.Param("id"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, posts)
}

// Get godoc
// @Summary Get a post
// @Tags posts
// @Produce  json
// @Param   id path string true "Post ID"
// @Success 200 {object} util.Response{data=service.PostView}
// @Failure 404 {object} util.Response
// @Router /api/posts/{id} [get]
func (c *PostController) Get(ctx *gin.Context) {
	post, err := c.PostService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "post")
		return
	}
	util.Success(ctx, post)
}

// swagger:model CreatePostRequest
type CreatePostRequest struct {
	Title          string   `json:"title" binding:"required,min=5,max=200"`
	Description    string   `json:"description" binding:"required,min=20,max=5000"`
	PostType       string   `json:"post_type" binding:"required,posttype"`
	CategoryID     *string  `json:"category_id"`
	AttachmentURLs []string `json:"attachment_urls" binding:"omitempty,max=10,dive,httpurl"`
}

// Create godoc
// @Summary Create a post
// @Tags posts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreatePostRequest true "Post details"
// @Success 201 {object} util.Response{data=service.PostView}
// @Failure 400 {object} util.Response "Unknown category"
// @Router /api/posts [post]
func (c *PostController) Create(ctx *gin.Context) {
	var req CreatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	post, err := c.PostService.Create(service.PostCreate{
		Title:          req.Title,
		Description:    req.Description,
		PostType:       model.PostType(req.PostType),
		CategoryID:     req.CategoryID,
		AttachmentURLs: req.AttachmentURLs,
	}, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err, "post")
		return
	}

	util.Created(ctx, post)
}

// swagger:model UpdatePostRequest
type UpdatePostRequest struct {
	Title          *string  `json:"title" binding:"omitempty,min=5,max=200"`
	Description    *string  `json:"description" binding:"omitempty,min=20,max=5000"`
	AttachmentURLs []string `json:"attachment_urls" binding:"omitempty,max=10,dive,httpurl"`
	IsActive       *bool    `json:"is_active"`
}

// Update godoc
// @Summary Update a post
// @Description Only the author or an admin may update
// @Tags posts
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string            true "Post ID"
// @Param   body body UpdatePostRequest true "Fields to change"
// @Success 200 {object} util.Response{data=service.PostView}
// @Failure 403 {object} util.Response
// @Router /api/posts/{id} [patch]
func (c *PostController) Update(ctx *gin.Context) {
	var req UpdatePostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	post, err := c.PostService.Update(ctx.Param("id"), service.PostUpdate{
		Title:          req.Title,
		Description:    req.Description,
		AttachmentURLs: req.AttachmentURLs,
		IsActive:       req.IsActive,
	}, claims)
	if err != nil {
		respondServiceError(ctx, err, "post")
		return
	}

	util.Success(ctx, post)
}

// Delete godoc
// @Summary Delete a post
// @Description Only the author or an admin may delete
// @Tags posts
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Post ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/posts/{id} [delete]
func (c *PostController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.PostService.Delete(ctx.Param("id"), claims); err != nil {
		respondServiceError(ctx, err, "post")
		return
	}
	util.SuccessMessage(ctx, "post deleted")
}
