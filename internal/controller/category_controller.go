package controller

import (
	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CategoryController struct {
	CategoryService *service.CategoryService
}

func NewCategoryController(categoryService *service.CategoryService) *CategoryController {
	return &CategoryController{CategoryService: categoryService}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Category}
// @Router /api/categories [get]
func (c *CategoryController) List(ctx *gin.Context) {
	categories, err := c.CategoryService.List()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// ListWithCounts godoc
// @Summary List categories with per-category resource counts
// @Tags categories
// @Produce  json
// @Success 200 {object} util.Response{data=[]repository.CategoryWithCount}
// @Router /api/categories/with-counts [get]
func (c *CategoryController) ListWithCounts(ctx *gin.Context) {
	categories, err := c.CategoryService.ListWithCounts()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// Get godoc
// @Summary Get a category by ID
// @Tags categories
// @Produce  json
// @Param   id path string true "Category ID"
// @Success 200 {object} util.Response{data=model.Category}
// @Failure 404 {object} util.Response
// @Router /api/categories/{id} [get]
func (c *CategoryController) Get(ctx *gin.Context) {
	category, err := c.CategoryService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "category")
		return
	}
	util.Success(ctx, category)
}

// swagger:model CreateCategoryRequest
type CreateCategoryRequest struct {
	Name        string `json:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" binding:"max=500"`
	Icon        string `json:"icon" binding:"max=50"`
}

// Create godoc
// @Summary Create a category
// @Description Admin only
// @Tags categories
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateCategoryRequest true "Category details"
// @Success 201 {object} util.Response{data=model.Category}
// @Failure 409 {object} util.Response "Name already taken"
// @Router /api/categories [post]
func (c *CategoryController) Create(ctx *gin.Context) {
	var req CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	category, err := c.CategoryService.Create(req.Name, req.Description, req.Icon)
	if err != nil {
		respondServiceError(ctx, err, "category")
		return
	}

	util.Created(ctx, category)
}

// Delete godoc
// @Summary Delete a category and its resources
// @Description Admin only; resources under the category are removed with it
// @Tags categories
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Category ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/categories/{id} [delete]
func (c *CategoryController) Delete(ctx *gin.Context) {
	if err := c.CategoryService.Delete(ctx.Param("id")); err != nil {
		respondServiceError(ctx, err, "category")
		return
	}
	util.SuccessMessage(ctx, "category deleted")
}
