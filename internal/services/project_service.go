package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
)

// projectService handles project-related business logic.
type projectService struct {
	db *gorm.DB
}

// NewProjectService creates a new ProjectServicer.
func NewProjectService(db *gorm.DB) ProjectServicer {
	return &projectService{db: db}
}

// GetProjects retrieves all projects ordered by name.
func (s *projectService) GetProjects() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("name").Find(&projects).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return projects, nil
}

// CreateProject creates a new project.
func (s *projectService) CreateProject(name, description string) (*models.Project, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "project name is required")
	}

	project := &models.Project{
		Name:        name,
		Description: description,
	}

	if err := s.db.Create(project).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return project, nil
}

// UpdateProject updates an existing project. Only provided fields are changed.
func (s *projectService) UpdateProject(id uint, name, description *string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&project).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &project, nil
}

// DeleteProject removes a project and clears transaction references.
func (s *projectService) DeleteProject(id uint) error {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrProjectNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).Where("project_id = ?", id).Update("project_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&project).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
