package controller

import (
	"fmt"
	"path/filepath"

	"studyshare_backend/internal/model"
	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ResourceController struct {
	ResourceService *service.ResourceService
	StorageService  *service.StorageService
}

func NewResourceController(
	resourceService *service.ResourceService,
	storageService *service.StorageService,
) *ResourceController {
	return &ResourceController{
		ResourceService: resourceService,
		StorageService:  storageService,
	}
}

// List godoc
// @Summary List resources
// @Tags resources
// @Produce  json
// @Param   limit query int false "Max results"
// @Success 200 {object} util.Response{data=[]service.ResourceView}
// @Router /api/resources [get]
func (c *ResourceController) List(ctx *gin.Context) {
	resources, err := c.ResourceService.List(queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// Search godoc
// @Summary Search resources
// @Description Case-insensitive title search; a zero-result search suggests
// @Description submitting a resource request instead
// @Tags resources
// @Produce  json
// @Param   q        query string false "Title or description query"
// @Param   category query string false "Filter by category"
// @Param   type     query string false "Filter by file type"
// @Param   limit    query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.ResourceView}
// @Router /api/resources/search [get]
func (c *ResourceController) Search(ctx *gin.Context) {
	q := ctx.Query("q")
	resources, err := c.ResourceService.Search(q, ctx.Query("category"), ctx.Query("type"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if len(resources) == 0 {
		message := "No resources matched"
		if q != "" {
			message = fmt.Sprintf("No resources found for %q", q)
		}
		util.SuccessWithSuggestion(ctx, resources, message,
			gin.H{
				"action": "create_request",
				"hint":   "Request this resource and other students or tutors can fulfil it",
				"url":    "/api/requests",
			})
		return
	}

	util.Success(ctx, resources)
}

// ListByCategory godoc
// @Summary List resources in a category
// @Tags resources
// @Produce  json
// @Param   id    path  string true  "Category ID"
// @Param   limit query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.ResourceView}
// @Router /api/resources/category/{id} [get]
func (c *ResourceController) ListByCategory(ctx *gin.Context) {
	resources, err := c.ResourceService.ListByCategory(ctx.Param("id"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, resources)
}

// Get godoc
// @Summary Get a resource
// @Description Counts a view, deduplicated per user/IP over a short window
// @Tags resources
// @Produce  json
// @Param   id path string true "Resource ID"
// @Success 200 {object} util.Response{data=service.ResourceView}
// @Failure 404 {object} util.Response
// @Router /api/resources/{id} [get]
func (c *ResourceController) Get(ctx *gin.Context) {
	viewerID := ""
	if claims := util.GetUserFromContext(ctx); claims != nil {
		viewerID = claims.UserID
	}

	resource, err := c.ResourceService.Get(ctx.Request.Context(), ctx.Param("id"), viewerID, ctx.ClientIP())
	if err != nil {
		respondServiceError(ctx, err, "resource")
		return
	}
	util.Success(ctx, resource)
}

// swagger:model CreateResourceRequest
type CreateResourceRequest struct {
	Title       string   `json:"title" binding:"required,min=3,max=200"`
	Description string   `json:"description" binding:"max=2000"`
	CategoryID  string   `json:"category_id" binding:"required"`
	FileURL     string   `json:"file_url" binding:"omitempty,httpurl,max=500"`
	FileType    string   `json:"file_type" binding:"omitempty,filetype"`
	Tags        []string `json:"tags" binding:"omitempty,max=10"`
}

// Create godoc
// @Summary Create a resource
// @Tags resources
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateResourceRequest true "Resource details"
// @Success 201 {object} util.Response{data=service.ResourceView}
// @Failure 400 {object} util.Response "Unknown category"
// @Router /api/resources [post]
func (c *ResourceController) Create(ctx *gin.Context) {
	var req CreateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	resource, err := c.ResourceService.Create(service.ResourceCreate{
		Title:       req.Title,
		Description: req.Description,
		CategoryID:  req.CategoryID,
		FileURL:     req.FileURL,
		FileType:    model.FileType(req.FileType),
		Tags:        req.Tags,
	}, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err, "resource")
		return
	}

	util.Created(ctx, resource)
}

// Upload godoc
// @Summary Upload a resource file
// @Description Stores the file and returns its URL and detected file type
// @Tags resources
// @Accept  multipart/form-data
// @Produce  json
// @Security ApiKeyAuth
// @Param   file formData file true "File to upload"
// @Success 200 {object} util.Response{data=object}
// @Router /api/resources/upload [post]
func (c *ResourceController) Upload(ctx *gin.Context) {
	header, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := header.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := model.GenerateUUID() + filepath.Ext(header.Filename)
	url, err := c.StorageService.Upload(ctx.Request.Context(), filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"file_url":  url,
		"file_type": service.FileTypeForName(header.Filename),
	})
}

// swagger:model UpdateResourceRequest
type UpdateResourceRequest struct {
	Title       *string  `json:"title" binding:"omitempty,min=3,max=200"`
	Description *string  `json:"description" binding:"omitempty,max=2000"`
	FileURL     *string  `json:"file_url" binding:"omitempty,httpurl,max=500"`
	Tags        []string `json:"tags" binding:"omitempty,max=10"`
}

// Update godoc
// @Summary Update a resource
// @Description Only the author or an admin may update
// @Tags resources
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string                true "Resource ID"
// @Param   body body UpdateResourceRequest true "Fields to change"
// @Success 200 {object} util.Response{data=service.ResourceView}
// @Failure 403 {object} util.Response
// @Router /api/resources/{id} [patch]
func (c *ResourceController) Update(ctx *gin.Context) {
	var req UpdateResourceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	resource, err := c.ResourceService.Update(ctx.Param("id"), service.ResourceUpdate{
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		Tags:        req.Tags,
	}, claims)
	if err != nil {
		respondServiceError(ctx, err, "resource")
		return
	}

	util.Success(ctx, resource)
}

// Delete godoc
// @Summary Delete a resource
// @Description Only the author or an admin may delete
// @Tags resources
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Resource ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/resources/{id} [delete]
func (c *ResourceController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.ResourceService.Delete(ctx.Param("id"), claims); err != nil {
		respondServiceError(ctx, err, "resource")
		return
	}
	util.SuccessMessage(ctx, "resource deleted")
}

// TrackDownload godoc
// @Summary Record a download
// @Tags resources
// @Produce  json
// @Param   id path string true "Resource ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/resources/{id}/download [post]
func (c *ResourceController) TrackDownload(ctx *gin.Context) {
	if err := c.ResourceService.TrackDownload(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "resource")
		return
	}
	util.SuccessMessage(ctx, "download recorded")
}
