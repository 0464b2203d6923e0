package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
	"studioledger/internal/services"
)

// CategoryHandler handles category-related requests.
type CategoryHandler struct {
	categoryService services.CategoryServicer
	auditService    services.AuditServicer
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(categoryService services.CategoryServicer, auditService services.AuditServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService, auditService: auditService}
}

// CreateCategoryRequest represents the request payload for creating a category
type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Type     string `json:"type" binding:"required,category_type"`
	ParentID *uint  `json:"parent_id"`
	IsSystem bool   `json:"is_system"`
}

// GetCategories handles the retrieval of all categories
// @Summary     List categories
// @Tags        categories
// @Produce     json
// @Success     200 {array} models.Category "Categories"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		respondWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// CreateCategory handles the creation of a new category
// @Summary     Create a category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateCategoryRequest true "Category details"
// @Success     201 {object} models.Category "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     404 {object} ErrorResponse "Parent category not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, models.CategoryType(req.Type), req.ParentID, req.IsSystem)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "create", "category", category.ID, "Created category "+category.Name)
	c.JSON(http.StatusCreated, category)
}

// DeleteCategory handles deleting a category
// @Summary     Delete a category
// @Description Delete a category; system categories and categories in use are protected
// @Tags        categories
// @Security    BearerAuth
// @Param       id path int true "Category ID"
// @Success     204 "Category deleted"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Category is protected or in use"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log(actorID(c), "delete", "category", id, "Deleted category")
	c.Status(http.StatusNoContent)
}
