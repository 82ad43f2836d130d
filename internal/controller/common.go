package controller

import (
	"errors"
	"strconv"

	"studyshare_backend/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// respondServiceError translates service-layer sentinels into HTTP responses.
// `what` names the entity for 404 messages.
func respondServiceError(ctx *gin.Context, err error, what string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound),
		errors.Is(err, util.ErrUserNotFound):
		util.NotFound(ctx, what)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrInvalidCredentials):
		util.Error(ctx, 401, "invalid email or password")
	case errors.Is(err, util.ErrEmailRegistered),
		errors.Is(err, util.ErrCategoryExists),
		errors.Is(err, util.ErrTutorProfileExists):
		util.Conflict(ctx, err.Error())
	case errors.Is(err, util.ErrInvalidCategory),
		errors.Is(err, util.ErrNoFieldsToUpdate),
		errors.Is(err, util.ErrWeakPassword):
		util.BadRequest(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}

func queryLimit(ctx *gin.Context) int {
	limit, _ := strconv.Atoi(ctx.Query("limit"))
	return limit
}
