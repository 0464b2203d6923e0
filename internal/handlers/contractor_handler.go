package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/services"
)

// ContractorHandler handles contractor-related requests.
type ContractorHandler struct {
	contractorService services.ContractorServicer
	auditService      services.AuditServicer
}

// NewContractorHandler creates a new ContractorHandler.
func NewContractorHandler(contractorService services.ContractorServicer, auditService services.AuditServicer) *ContractorHandler {
	return &ContractorHandler{contractorService: contractorService, auditService: auditService}
}

// CreateContractorRequest represents the request payload for creating a contractor
type CreateContractorRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	INN         string `json:"inn" binding:"max=20"`
	Description string `json:"description" binding:"max=500"`
}

// UpdateContractorRequest represents the request payload for updating a contractor
type UpdateContractorRequest struct {
	Name        *string `json:"name" binding:"omitempty,max=255"`
	INN         *string `json:"inn" binding:"omitempty,max=20"`
	Description *string `json:"description" binding:"omitempty,max=500"`
}

// GetContractors handles the retrieval of all contractors
// @Summary     List contractors
// @Tags        contractors
// @Produce     json
// @Success     200 {array} models.Contractor "Contractors"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /contractors [get]
func (h *ContractorHandler) GetContractors(c *gin.Context) {
	contractors, err := h.contractorService.GetContractors()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, contractors)
}

// CreateContractor handles the creation of a new contractor
// @Summary     Create a contractor
// @Tags        contractors
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateContractorRequest true "Contractor details"
// @Success     201 {object} models.Contractor "Contractor created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /contractors [post]
func (h *ContractorHandler) CreateContractor(c *gin.Context) {
	var req CreateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contractor, err := h.contractorService.CreateContractor(req.Name, req.INN, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "create", "contractor", contractor.ID, "Created contractor "+contractor.Name)
	c.JSON(http.StatusCreated, contractor)
}

// UpdateContractor handles updating an existing contractor
// @Summary     Update a contractor
// @Tags        contractors
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path int                     true "Contractor ID"
// @Param       request body UpdateContractorRequest true "Fields to update"
// @Success     200 {object} models.Contractor "Contractor updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Contractor not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /contractors/{id} [put]
func (h *ContractorHandler) UpdateContractor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateContractorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	contractor, err := h.contractorService.UpdateContractor(id, req.Name, req.INN, req.Description)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "update", "contractor", contractor.ID, "Updated contractor "+contractor.Name)
	c.JSON(http.StatusOK, contractor)
}

// DeleteContractor handles deleting a contractor
// @Summary     Delete a contractor
// @Description Delete a contractor; transaction references are cleared
// @Tags        contractors
// @Security    BearerAuth
// @Param       id path int true "Contractor ID"
// @Success     204 "Contractor deleted"
// @Failure     404 {object} ErrorResponse "Contractor not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /contractors/{id} [delete]
func (h *ContractorHandler) DeleteContractor(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.contractorService.DeleteContractor(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "delete", "contractor", id, "Deleted contractor")
	c.Status(http.StatusNoContent)
}
