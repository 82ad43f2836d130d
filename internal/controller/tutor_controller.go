package controller

import (
	"fmt"

	"studyshare_backend/internal/service"
	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TutorController struct {
	TutorService *service.TutorService
}

func NewTutorController(tutorService *service.TutorService) *TutorController {
	return &TutorController{TutorService: tutorService}
}

// List godoc
// @Summary List tutors
// @Tags tutors
// @Produce  json
// @Param   available query bool false "Filter by availability"
// @Param   limit     query int  false "Max results"
// @Success 200 {object} util.Response{data=[]service.TutorView}
// @Router /api/tutors [get]
func (c *TutorController) List(ctx *gin.Context) {
	var available *bool
	switch ctx.Query("available") {
	case "true":
		v := true
		available = &v
	case "false":
		v := false
		available = &v
	}

	tutors, err := c.TutorService.List(available, queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, tutors)
}

// Subjects godoc
// @Summary List all subjects on offer
// @Tags tutors
// @Produce  json
// @Success 200 {object} util.Response{data=[]string}
// @Router /api/tutors/subjects/list [get]
func (c *TutorController) Subjects(ctx *gin.Context) {
	subjects, err := c.TutorService.ListSubjects(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, subjects)
}

// BySubject godoc
// @Summary Find tutors by subject
// @Description Case-insensitive match; a zero-result search lists the
// @Description subjects that are actually available
// @Tags tutors
// @Produce  json
// @Param   subject path  string true  "Subject to match"
// @Param   limit   query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.TutorView}
// @Router /api/tutors/subject/{subject} [get]
func (c *TutorController) BySubject(ctx *gin.Context) {
	subject := ctx.Param("subject")
	tutors, allSubjects, err := c.TutorService.SearchBySubject(subject, queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	if len(tutors) == 0 {
		util.SuccessWithSuggestion(ctx, tutors,
			fmt.Sprintf("No tutors found for %q", subject),
			gin.H{
				"action":             "request_tutor",
				"hint":               "Request a tutor for this subject or browse what is on offer",
				"url":                "/api/tutors/requests",
				"available_subjects": allSubjects,
			})
		return
	}

	util.Success(ctx, tutors)
}

// Get godoc
// @Summary Get a tutor profile
// @Tags tutors
// @Produce  json
// @Param   id path string true "Tutor ID"
// @Success 200 {object} util.Response{data=service.TutorView}
// @Failure 404 {object} util.Response
// @Router /api/tutors/{id} [get]
func (c *TutorController) Get(ctx *gin.Context) {
	tutor, err := c.TutorService.Get(ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err, "tutor")
		return
	}
	util.Success(ctx, tutor)
}

// swagger:model CreateTutorRequest
type CreateTutorRequest struct {
	Subjects     []string            `json:"subjects" binding:"required,min=1,max=20,dive,min=2,max=100"`
	Bio          string              `json:"bio" binding:"max=2000"`
	HourlyRate   *float64            `json:"hourly_rate" binding:"omitempty,gte=0"`
	Availability map[string][]string `json:"availability"`
	ContactEmail string              `json:"contact_email" binding:"omitempty,email,max=254"`
	BookingLink  string              `json:"booking_link" binding:"omitempty,httpurl,max=500"`
}

// Create godoc
// @Summary Create a tutor profile
// @Description One profile per user
// @Tags tutors
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateTutorRequest true "Profile details"
// @Success 201 {object} util.Response{data=service.TutorView}
// @Failure 409 {object} util.Response "Profile already exists"
// @Router /api/tutors [post]
func (c *TutorController) Create(ctx *gin.Context) {
	var req CreateTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	tutor, err := c.TutorService.Create(service.TutorCreate{
		Subjects:     req.Subjects,
		Bio:          req.Bio,
		HourlyRate:   req.HourlyRate,
		Availability: req.Availability,
		ContactEmail: req.ContactEmail,
		BookingLink:  req.BookingLink,
	}, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err, "tutor")
		return
	}

	util.Created(ctx, tutor)
}

// swagger:model UpdateTutorRequest
type UpdateTutorRequest struct {
	Subjects     []string            `json:"subjects" binding:"omitempty,min=1,max=20,dive,min=2,max=100"`
	Bio          *string             `json:"bio" binding:"omitempty,max=2000"`
	HourlyRate   *float64            `json:"hourly_rate" binding:"omitempty,gte=0"`
	Availability map[string][]string `json:"availability"`
	ContactEmail *string             `json:"contact_email" binding:"omitempty,email,max=254"`
	BookingLink  *string             `json:"booking_link" binding:"omitempty,httpurl,max=500"`
	IsAvailable  *bool               `json:"is_available"`
}

// Update godoc
// @Summary Update a tutor profile
// @Description Only the profile owner or an admin may update
// @Tags tutors
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string             true "Tutor ID"
// @Param   body body UpdateTutorRequest true "Fields to change"
// @Success 200 {object} util.Response{data=service.TutorView}
// @Failure 403 {object} util.Response
// @Router /api/tutors/{id} [patch]
func (c *TutorController) Update(ctx *gin.Context) {
	var req UpdateTutorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	tutor, err := c.TutorService.Update(ctx.Param("id"), service.TutorUpdate{
		Subjects:     req.Subjects,
		Bio:          req.Bio,
		HourlyRate:   req.HourlyRate,
		Availability: req.Availability,
		ContactEmail: req.ContactEmail,
		BookingLink:  req.BookingLink,
		IsAvailable:  req.IsAvailable,
	}, claims)
	if err != nil {
		respondServiceError(ctx, err, "tutor")
		return
	}

	util.Success(ctx, tutor)
}

// swagger:model SetAvailabilityRequest
type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"is_available" binding:"required"`
}

// SetAvailability godoc
// @Summary Toggle a tutor's availability
// @Tags tutors
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id   path string                 true "Tutor ID"
// @Param   body body SetAvailabilityRequest true "Availability flag"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/tutors/{id}/availability [patch]
func (c *TutorController) SetAvailability(ctx *gin.Context) {
	var req SetAvailabilityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if err := c.TutorService.SetAvailability(ctx.Param("id"), *req.IsAvailable, claims); err != nil {
		respondServiceError(ctx, err, "tutor")
		return
	}
	util.SuccessMessage(ctx, "availability updated")
}

// Delete godoc
// @Summary Delete a tutor profile
// @Description Only the profile owner or an admin may delete
// @Tags tutors
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Tutor ID"
// @Success 200 {object} util.Response
// @Failure 403 {object} util.Response
// @Router /api/tutors/{id} [delete]
func (c *TutorController) Delete(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if err := c.TutorService.Delete(ctx.Param("id"), claims); err != nil {
		respondServiceError(ctx, err, "tutor")
		return
	}
	util.SuccessMessage(ctx, "tutor profile deleted")
}

// ListRequests godoc
// @Summary List tutoring requests
// @Tags tutors
// @Produce  json
// @Security ApiKeyAuth
// @Param   status query string false "Filter by status"
// @Param   limit  query int    false "Max results"
// @Success 200 {object} util.Response{data=[]service.TutorRequestView}
// @Router /api/tutors/requests/all [get]
func (c *TutorController) ListRequests(ctx *gin.Context) {
	requests, err := c.TutorService.ListRequests(ctx.Query("status"), queryLimit(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, requests)
}

// swagger:model CreateTutoringRequest
type CreateTutoringRequest struct {
	Subject           string `json:"subject" binding:"required,min=2,max=100"`
	Description       string `json:"description" binding:"max=2000"`
	PreferredSchedule string `json:"preferred_schedule" binding:"max=200"`
}

// CreateRequest godoc
// @Summary Request a tutor
// @Tags tutors
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateTutoringRequest true "Request details"
// @Success 201 {object} util.Response{data=service.TutorRequestView}
// @Router /api/tutors/requests [post]
func (c *TutorController) CreateRequest(ctx *gin.Context) {
	var req CreateTutoringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	request, err := c.TutorService.CreateRequest(service.TutorRequestCreate{
		Subject:           req.Subject,
		Description:       req.Description,
		PreferredSchedule: req.PreferredSchedule,
	}, claims.UserID)
	if err != nil {
		respondServiceError(ctx, err, "tutor request")
		return
	}

	util.Created(ctx, request)
}
