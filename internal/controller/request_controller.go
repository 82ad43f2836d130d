package controller

import (
	"studyshare_backend/internal/model"
	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type RequestController struct {
	RequestService *service.RequestService
}

func NewRequestController(requestService *service.RequestService) *RequestController {
	return &RequestController{RequestService: requestService}
}

// List godoc
// @Summary List resource requests
// @Tags requests
// @Produce  json
// @Param   status query string false "Filter by status"
// @Param   limit  query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.RequestView}
// @Router /api/requests [get]
func (c *RequestController) List(ctx *gin.Context) {
	requests, err := c.RequestService.List(ctx.Query("status"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, requests)
}

// ByUser godoc
// @Summary List a user's requests
// @Tags requests
// @Produce  json
// @Security ApiKeyAuth
// @Param   id    path  string true  "User ID"
// @Param   limit query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.RequestView}
// @Router /api/requests/user/{id} [get]
func (c *RequestController) ByUser(ctx *gin.Context) {
	requests, err := c.RequestService.ListByUser(ctx.Param("id"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, requests)
}

// Get godoc
// @Summary Get a resource request
// @Tags requests
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 200 {object} util.Response{data=service.RequestView}
// @Failure 404 {object} util.Response
// @Router /api/requests/{id} [get]
func (c *RequestController) Get(ctx *gin.Context) {
	request, err := c.RequestService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "request")
		return
	}
	util.Success(ctx, request)
}

// swagger:model CreateRequestRequest
type CreateRequestRequest struct {
	Topic           string  `json:"topic" binding:"required,min=3,max=200"`
	Description     string  `json:"description" binding:"required,min=10,max=2000"`
	CategoryID      *string `json:"category_id"`
	PreferredFormat string  `json:"preferred_format" binding:"omitempty,preferredformat"`
}

// Create godoc
// @Summary Submit a resource request
// @Tags requests
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateRequestRequest true "Request details"
// @Success 201 {object} util.Response{data=service.RequestView}
// @Failure 400 {object} util.Response "Unknown category"
// @Router /api/requests [post]
func (c *RequestController) Create(ctx *gin.Context) {
	var req CreateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	request, err := c.RequestService.Create(service.RequestCreate{
		Topic:           req.Topic,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		PreferredFormat: model.PreferredFormat(req.PreferredFormat),
	}, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err, "request")
		return
	}

	util.Created(ctx, request)
}

// swagger:model UpdateRequestRequest
type UpdateRequestRequest struct {
	Topic           *string `json:"topic" binding:"omitempty,min=3,max=200"`
	Description     *string `json:"description" binding:"omitempty,min=10,max=2000"`
	PreferredFormat *string `json:"preferred_format" binding:"omitempty,preferredformat"`
}

// Update godoc
// @Summary Update a resource request
// @Description Only the requester or an admin may update
// @Tags requests
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string               true "Request ID"
// @Param   body body UpdateRequestRequest true "Fields to change"
// @Success 200 {object} util.Response{data=service.RequestView}
// @Failure 403 {object} util.Response
// @Router /api/requests/{id} [patch]
func (c *RequestController) Update(ctx *gin.Context) {
	var req UpdateRequestRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var format *model.PreferredFormat
	if req.PreferredFormat != nil {
		f := model.PreferredFormat(*req.PreferredFormat)
		format = &f
	}

	claims := util.GetUserFromContext(ctx)
	request, err := c.RequestService.Update(ctx.Param("id"), service.RequestUpdate{
		Topic:           req.Topic,
		Description:     req.Description,
		PreferredFormat: format,
	}, claims)
	if err != nil {
		respondServiceError(ctx, err, "request")
		return
	}

	util.Success(ctx, request)
}

// swagger:model UpdateRequestStatusRequest
type UpdateRequestStatusRequest struct {
	Status              string  `json:"status" binding:"required,reqstatus"`
	FulfilledBy         *string `json:"fulfilled_by"`
	FulfilledResourceID *string `json:"fulfilled_resource_id"`
}

// UpdateStatus godoc
// @Summary Change a request's status
// @Description Only the requester or an admin; fulfilment fields are optional
// @Tags requests
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string                     true "Request ID"
// @Param   body body UpdateRequestStatusRequest true "New status"
// @Success 200 {object} util.Response{data=service.RequestView}
// @Failure 403 {object} util.Response
// @Router /api/requests/{id}/status [patch]
func (c *RequestController) UpdateStatus(ctx *gin.Context) {
	var req UpdateRequestStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	request, err := c.RequestService.UpdateStatus(
		ctx.Param("id"),
		model.RequestStatus(req.Status),
		req.FulfilledBy,
		req.FulfilledResourceID,
		claims,
	)
	if err != nil {
		respondServiceError(ctx, err, "request")
		return
	}

	util.Success(ctx, request)
}

// Delete godoc
// @Summary Delete a resource request
// @Description Only the requester or an admin may delete
// @Tags requests
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Request ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/requests/{id} [delete]
func (c *RequestController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.RequestService.Delete(ctx.Param("id"), claims); err != nil {
		respondServiceError(ctx, err, "request")
		return
	}
	util.SuccessMessage(ctx, "request deleted")
}
