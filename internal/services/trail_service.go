package services

import (
	"errors"
	"fmt"

	"github.com/ppandov/trail-service/internal/dto"
	"github.com/ppandov/trail-service/internal/models"
	"gorm.io/gorm"
)

var (
	ErrMissingTrailFields     = errors.New("trail_name, trail_summary and user_id are required")
	ErrTrailOwnerNotFound     = errors.New("user_id does not reference an existing user")
	ErrTrailNotFound          = errors.New("trail not found")
	ErrFeatureNotFound        = errors.New("feature not found")
	ErrFeatureAlreadyAttached = errors.New("feature already attached to trail")
	ErrFeatureNotAttached     = errors.New("feature not attached to trail")
)

// trailUpdatableColumns are the columns a PUT may touch. Keys present in the
// payload overwrite, keys absent keep their prior value; user_id is
// immutable after creation.
var trailUpdatableColumns = map[string]bool{
	"trail_name":        true,
	"trail_summary":     true,
	"trail_description": true,
	"difficulty":        true,
	"location":          true,
	"length":            true,
	"elevation_gain":    true,
	"route_type":        true,
}

type TrailService struct {
	db *gorm.DB
}

func NewTrailService(db *gorm.DB) *TrailService {
	return &TrailService{db: db}
}

func withTrailAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Points", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence, point_id")
		}).
		Preload("Features")
}

func (s *TrailService) List() ([]models.Trail, error) {
	var trails []models.Trail
	if err := withTrailAssociations(s.db).Order("trail_id").Find(&trails).Error; err != nil {
		return nil, fmt.Errorf("failed to list trails: %w", err)
	}
	return trails, nil
}

func (s *TrailService) Get(id uint) (*models.Trail, error) {
	var trail models.Trail
	if err := withTrailAssociations(s.db).First(&trail, "trail_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTrailNotFound
		}
		return nil, fmt.Errorf("failed to fetch trail: %w", err)
	}
	return &trail, nil
}

// Create inserts a trail and any nested points in a single transaction.
// A dangling user_id surfaces as a validation error, not an internal fault.
func (s *TrailService) Create(req *dto.CreateTrailRequest) (*models.Trail, error) {
	if req.TrailName == "" || req.TrailSummary == "" || req.UserID == 0 {
		return nil, ErrMissingTrailFields
	}

	trail := models.Trail{
		Name:          req.TrailName,
		Summary:       req.TrailSummary,
		Description:   req.TrailDescription,
		Difficulty:    req.Difficulty,
		Location:      req.Location,
		Length:        req.Length,
		ElevationGain: req.ElevationGain,
		RouteType:     req.RouteType,
		UserID:        req.UserID,
	}
	for i, p := range req.TrailPoints {
		seq := i
		if p.Sequence != nil {
			seq = *p.Sequence
		}
		trail.Points = append(trail.Points, models.TrailPoint{
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Sequence:  seq,
		})
	}

	if err := s.db.Create(&trail).Error; err != nil {
		if pgErrCode(err) == pgForeignKeyViolation {
			return nil, ErrTrailOwnerNotFound
		}
		return nil, fmt.Errorf("failed to create trail: %w", err)
	}

	return &trail, nil
}

// Update applies a partial update from the raw request body. Working from the
// decoded map rather than a struct keeps "key absent" distinguishable from
// "key present with null".
func (s *TrailService) Update(id uint, patch map[string]interface{}) (*models.Trail, error) {
	trail, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	for key, val := range patch {
		if trailUpdatableColumns[key] {
			updates[key] = val
		}
	}

	if name, ok := updates["trail_name"]; ok && isBlank(name) {
		return nil, ErrMissingTrailFields
	}
	if summary, ok := updates["trail_summary"]; ok && isBlank(summary) {
		return nil, ErrMissingTrailFields
	}

	if len(updates) > 0 {
		if err := s.db.Model(trail).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update trail: %w", err)
		}
	}

	return s.Get(id)
}

// Delete removes the trail together with its points and feature mappings in
// one transaction, so a partial cascade can never be observed.
func (s *TrailService) Delete(id uint) error {
	var trail models.Trail
	if err := s.db.First(&trail, "trail_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrailNotFound
		}
		return fmt.Errorf("failed to fetch trail: %w", err)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("trail_id = ?", id).Delete(&models.TrailPoint{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trail_id = ?", id).Delete(&models.TrailFeatureMapping{}).Error; err != nil {
			return err
		}
		return tx.Delete(&trail).Error
	})
}

func (s *TrailService) AttachFeature(trailID, featureID uint) error {
	if err := s.db.First(&models.Trail{}, "trail_id = ?", trailID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrTrailNotFound
		}
		return fmt.Errorf("failed to fetch trail: %w", err)
	}
	if err := s.db.First(&models.TrailFeature{}, "feature_id = ?", featureID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrFeatureNotFound
		}
		return fmt.Errorf("failed to fetch feature: %w", err)
	}

	mapping := models.TrailFeatureMapping{TrailID: trailID, FeatureID: featureID}
	if err := s.db.Create(&mapping).Error; err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return ErrFeatureAlreadyAttached
		}
		return fmt.Errorf("failed to attach feature: %w", err)
	}
	return nil
}

func (s *TrailService) DetachFeature(trailID, featureID uint) error {
	result := s.db.Where("trail_id = ? AND feature_id = ?", trailID, featureID).
		Delete(&models.TrailFeatureMapping{})
	if result.Error != nil {
		return fmt.Errorf("failed to detach feature: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFeatureNotAttached
	}
	return nil
}

func isBlank(v interface{}) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == ""
}
