package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/models"
)

// contractorService handles contractor-related business logic.
type contractorService struct {
	db *gorm.DB
}

// NewContractorService creates a new ContractorServicer.
func NewContractorService(db *gorm.DB) ContractorServicer {
	return &contractorService{db: db}
}

// GetContractors retrieves all contractors ordered by name.
func (s *contractorService) GetContractors() ([]models.Contractor, error) {
	var contractors []models.Contractor
	if err := s.db.Order("name").Find(&contractors).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return contractors, nil
}

// CreateContractor creates a new contractor.
func (s *contractorService) CreateContractor(name, inn, description string) (*models.Contractor, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "contractor name is required")
	}

	contractor := &models.Contractor{
		Name:        name,
		INN:         inn,
		Description: description,
	}

	if err := s.db.Create(contractor).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return contractor, nil
}

// UpdateContractor updates an existing contractor. Only provided fields are changed.
func (s *contractorService) UpdateContractor(id uint, name, inn, description *string) (*models.Contractor, error) {
	var contractor models.Contractor
	if err := s.db.First(&contractor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrContractorNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	updates := make(map[string]interface{})
	if name != nil && *name != "" {
		updates["name"] = *name
	}
	if inn != nil {
		updates["inn"] = *inn
	}
	if description != nil {
		updates["description"] = *description
	}

	if len(updates) > 0 {
		if err := s.db.Model(&contractor).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return &contractor, nil
}

// DeleteContractor removes a contractor and clears transaction references.
func (s *contractorService) DeleteContractor(id uint) error {
	var contractor models.Contractor
	if err := s.db.First(&contractor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrContractorNotFound
		}
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Transaction{}).Where("contractor_id = ?", id).Update("contractor_id", nil).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		if err := tx.Delete(&contractor).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}
