package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// GetCategories retrieves all categories ordered by name.
func (s *categoryService) GetCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID.
func (s *categoryService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// CreateCategory creates a new category. A parent, when given, must
// exist and carry the same type as the child.
func (s *categoryService) CreateCategory(name string, categoryType models.CategoryType, parentID *uint, isSystem bool) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	// Check if a category with the same name already exists
	var count int64
	if err := s.db.Model(&models.Category{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category with this name already exists")
	}

	if parentID != nil {
		parent, err := s.GetCategoryByID(*parentID)
		if err != nil {
			if errors.Is(err, apperrors.ErrCategoryNotFound) {
				return nil, apperrors.WithMessage(apperrors.ErrCategoryNotFound, "parent category not found")
			}
			return nil, err
		}
		if parent.Type != categoryType {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "parent category type must match")
		}
	}

	category := &models.Category{
		Name:     name,
		Type:     categoryType,
		ParentID: parentID,
		IsSystem: isSystem,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// DeleteCategory removes a category. The guard is server-side: system
// categories, categories with children, and categories referenced by
// transactions are all protected.
func (s *categoryService) DeleteCategory(id uint) error {
	category, err := s.GetCategoryByID(id)
	if err != nil {
		return err
	}

	if category.IsSystem {
		return apperrors.ErrCategoryIsSystem
	}

	var childCount int64
	if err := s.db.Model(&models.Category{}).Where("parent_id = ?", id).Count(&childCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if childCount > 0 {
		return apperrors.ErrCategoryHasChildren
	}

	var txCount int64
	if err := s.db.Model(&models.Transaction{}).Where("category_id = ?", id).Count(&txCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txCount > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
