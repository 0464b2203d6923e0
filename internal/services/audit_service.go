package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	apperrors "studioledger/internal/errors"
	"studioledger/internal/logger"
	"studioledger/internal/models"
	"studioledger/internal/pagination"
)

// auditService handles activity log recording.
type auditService struct {
	db *gorm.DB
}

// NewAuditService creates a new AuditServicer.
func NewAuditService(db *gorm.DB) AuditServicer {
	return &auditService{db: db}
}

// Log records an activity event with the actor's username denormalized
// for display. Errors are logged but never propagate, so a failing audit
// write cannot disrupt the mutation it observes.
func (s *auditService) Log(userID *uint, action, entityType string, entityID uint, details string) {
	username := "Unknown"
	if userID != nil {
		var user models.User
		if err := s.db.First(&user, *userID).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				logger.Get().Errorw("failed to resolve audit actor", "error", err, "user_id", *userID)
			}
		} else {
			username = user.Username
		}
	}

	entry := &models.ActivityLog{
		UserID:     userID,
		Username:   username,
		Action:     action,
		EntityType: entityType,
		EntityID:   strconv.FormatUint(uint64(entityID), 10),
		Details:    details,
	}

	if err := s.db.Create(entry).Error; err != nil {
		logger.Get().Errorw("failed to create activity log entry",
			"error", err,
			"action", action,
			"entity_type", entityType,
			"entity_id", entityID,
		)
	}
}

// GetActivityLogs retrieves a paginated list of activity entries, newest first.
func (s *auditService) GetActivityLogs(page pagination.PageRequest) (*pagination.PageResponse[models.ActivityLog], error) {
	page.Defaults()

	var totalItems int64
	if err := s.db.Model(&models.ActivityLog{}).Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.ActivityLog
	if err := s.db.Model(&models.ActivityLog{}).
		Scopes(pagination.Paginate(page)).
		Order("id DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(entries, page.Page, page.PageSize, totalItems)
	return &result, nil
}
