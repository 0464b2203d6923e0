package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/services"
)

// StudioHandler handles studio-related requests.
type StudioHandler struct {
	studioService services.StudioServicer
	auditService  services.AuditServicer
}

// NewStudioHandler creates a new StudioHandler.
func NewStudioHandler(studioService services.StudioServicer, auditService services.AuditServicer) *StudioHandler {
	return &StudioHandler{studioService: studioService, auditService: auditService}
}

// CreateStudioRequest represents the request payload for creating a studio
type CreateStudioRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Address string `json:"address" binding:"max=500"`
	Color   string `json:"color" binding:"omitempty,hex_color"`
}

// UpdateStudioRequest represents the request payload for updating a studio
type UpdateStudioRequest struct {
	Name    *string `json:"name" binding:"omitempty,max=255"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	Color   *string `json:"color" binding:"omitempty,hex_color"`
}

// GetStudios handles the retrieval of all studios
// @Summary     List studios
// @Tags        studios
// @Produce     json
// @Success     200 {array} models.Studio "Studios"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /studios [get]
func (h *StudioHandler) GetStudios(c *gin.Context) {
	studios, err := h.studioService.GetStudios()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, studios)
}

// CreateStudio handles the creation of a new studio
// @Summary     Create a studio
// @Tags        studios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateStudioRequest true "Studio details"
// @Success     201 {object} models.Studio "Studio created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /studios [post]
func (h *StudioHandler) CreateStudio(c *gin.Context) {
	var req CreateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	studio, err := h.studioService.CreateStudio(req.Name, req.Address, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "create", "studio", studio.ID, "Created studio "+studio.Name)
	c.JSON(http.StatusCreated, studio)
}

// UpdateStudio handles updating an existing studio
// @Summary     Update a studio
// @Tags        studios
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                 true "Studio ID"
// @Param       request body UpdateStudioRequest true "Fields to update"
// @Success     200 {object} models.Studio "Studio updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Studio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /studios/{id} [put]
func (h *StudioHandler) UpdateStudio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateStudioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	studio, err := h.studioService.UpdateStudio(id, req.Name, req.Address, req.Color)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "update", "studio", studio.ID, "Updated studio "+studio.Name)
	c.JSON(http.StatusOK, studio)
}

// DeleteStudio handles deleting a studio
// @Summary     Delete a studio
// @Description Delete a studio; account and transaction references are cleared
// @Tags        studios
// @Security    BearerAuth
// @Param       id path int true "Studio ID"
// @Success     204 "Studio deleted"
// @Failure     404 {object} ErrorResponse "Studio not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /studios/{id} [delete]
func (h *StudioHandler) DeleteStudio(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.studioService.DeleteStudio(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "delete", "studio", id, "Deleted studio")
	c.Status(http.StatusNoContent)
}
