package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/pagination"
	"studioledger/internal/services"
)

// ActivityHandler handles activity log requests.
type ActivityHandler struct {
	auditService services.AuditServicer
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(auditService services.AuditServicer) *ActivityHandler {
	return &ActivityHandler{auditService: auditService}
}

// GetActivityLogs handles the paginated retrieval of activity log entries
// @Summary     List activity logs
// @Description List activity log entries, newest first
// @Tags        activity-logs
// @Produce     json
// @Param       page      query int false "Page number" default(1)
// @Param       page_size query int false "Page size" default(20)
// @Success     200 {object} pagination.PageResponse[models.ActivityLog] "Activity log page"
// @Failure     400 {object} ErrorResponse "Invalid pagination parameters"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /activity-logs [get]
func (h *ActivityHandler) GetActivityLogs(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	logs, err := h.auditService.GetActivityLogs(page)
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
