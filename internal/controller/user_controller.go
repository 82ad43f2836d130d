package controller

import (
	"studyshare_backend/internal/model"
	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// List godoc
// @Summary List users
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Param   role  query string false "Filter by role"
// @Param   limit query int    false "Max results"
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/users [get]
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.UserService.List(ctx.Query("role"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// Get godoc
// @Summary Get a user by ID
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "User ID"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [get]
func (c *UserController) Get(ctx *gin.Context) {
	user, err := c.UserService.GetByID(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "user")
		return
	}
	util.Success(ctx, user)
}

// GetByEmail godoc
// @Summary Look up a user by email
// @Tags users
// @Produce  json
// @Security ApiKeyAuth
// @Param   email path string true "Email address"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 404 {object} util.Response
// @Router /api/users/email/{email} [get]
func (c *UserController) GetByEmail(ctx *gin.Context) {
	user, err := c.UserService.GetByEmail(ctx.Param("email"))
	if err != nil {
		respondServiceError(ctx, err, "user")
		return
	}
	util.Success(ctx, user)
}

// swagger:model CreateUserRequest
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email,max=254"`
	Password string `json:"password" binding:"required,password"`
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Role     string `json:"role" binding:"required,userrole"`
}

// Create godoc
// @Summary Create a user directly
// @Description Admin only; unlike registration, any role may be assigned
// @Tags users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateUserRequest true "Account details"
// @Success 201 {object} util.Response{data=model.User}
// @Failure 409 {object} util.Response "Email already registered"
// @Router /api/users [post]
func (c *UserController) Create(ctx *gin.Context) {
	var req CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.Create(req.Email, req.Password, req.Name, model.UserRole(req.Role))
	if err != nil {
		respondServiceError(ctx, err, "user")
		return
	}

	util.Created(ctx, user)
}

// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,httpurl,max=500"`
}

// Update godoc
// @Summary Update a user's profile
// @Description Only the profile owner or an admin may update
// @Tags users
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string               true "User ID"
// @Param   body body UpdateProfileRequest true "Fields to change"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 403 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/users/{id} [patch]
func (c *UserController) Update(ctx *gin.Context) {
	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	user, err := c.UserService.UpdateProfile(ctx.Param("id"), service.UserUpdate{
		Name:      req.Name,
		AvatarURL: req.AvatarURL,
	}, claims)
	if err != nil {
		respondServiceError(ctx, err, "user")
		return
	}

	util.Success(ctx, user)
}
