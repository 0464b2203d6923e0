package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
)

// studioService handles studio-related business logic.
type studioService struct {
	db *gorm.DB
}

// NewStudioService creates a new StudioServicer.
func NewStudioService(db *gorm.DB) StudioServicer {
	return &studioService{db: db}
}

// GetStudios retrieves all studios ordered by name.
func (s *studioService) GetStudios() ([]models.Studio, error) {
	var studios []models.Studio
	if err := s.db.Order("name").Find(&studios).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return studios, nil
}

// GetStudioByID retrieves a studio by ID.
func (s *studioService) GetStudioByID(id uint) (*models.Studio, error) {
	var studio models.Studio
	if err := s.db.First(&studio, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrStudioNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &studio, nil
}

// CreateStudio creates a new studio.
func (s *studioService) CreateStudio(name, address, color string) (*models.Studio, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "studio name is required")
	}

	studio := &models.Studio{
		Name:    name,
		Address: address,
		Color:   color,
	}

	if err := s.db.Create(studio).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return studio, nil
}

// UpdateStudio updates an existing studio. Only provided fields are changed.
func (s *studioService) UpdateStudio(id uint, name, address, color *string) (*models.Studio, error) {
	studio, err := s.GetStudioByID(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if address != nil {
		updates["address"] = *address
	}
	if color != nil {
		updates["color"] = *color
	}

	if len(updates) > 0 {
		if err := s.db.Model(studio).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return studio, nil
}

// DeleteStudio removes a studio. References from accounts and
// transactions are set to NULL by the schema, so history survives with
// the segmentation dropped.
func (s *studioService) DeleteStudio(id uint) error {
	studio, err := s.GetStudioByID(id)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		// Clear references first so no FK ever dangles.
		if err := tx.Model(&models.Account{}).Where("studio_id = ?", id).Update("studio_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Model(&models.Transaction{}).Where("studio_id = ?", id).Update("studio_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(studio).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
