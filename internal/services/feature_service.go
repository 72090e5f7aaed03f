package services

import (
	"errors"
	"fmt"

	"github.com/ppandov/trail-service/internal/dto"
	"github.com/ppandov/trail-service/internal/models"
	"gorm.io/gorm"
)

var ErrMissingFeatureName = errors.New("feature_name is required")

type FeatureService struct {
	db *gorm.DB
}

func NewFeatureService(db *gorm.DB) *FeatureService {
	return &FeatureService{db: db}
}

func (s *FeatureService) List() ([]models.TrailFeature, error) {
	var features []models.TrailFeature
	if err := s.db.Order("feature_id").Find(&features).Error; err != nil {
		return nil, fmt.Errorf("failed to list features: %w", err)
	}
	return features, nil
}

func (s *FeatureService) Create(req *dto.CreateFeatureRequest) (*models.TrailFeature, error) {
	if req.FeatureName == "" {
		return nil, ErrMissingFeatureName
	}

	feature := models.TrailFeature{
		Name:        req.FeatureName,
		Description: req.FeatureDescription,
	}
	if err := s.db.Create(&feature).Error; err != nil {
		return nil, fmt.Errorf("failed to create feature: %w", err)
	}
	return &feature, nil
}

// Delete removes a catalog feature and every mapping that references it.
func (s *FeatureService) Delete(id uint) error {
	var feature models.TrailFeature
	if err := s.db.First(&feature, "feature_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeatureNotFound
		}
		return fmt.Errorf("failed to fetch feature: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("feature_id = ?", id).Delete(&models.TrailFeatureMapping{}).Error; err != nil {
			return err
		}
		return tx.Delete(&feature).Error
	})
}
