package models

// TrailFeature is an independent catalog entry ("waterfall", "steep climb").
type TrailFeature struct {
	ID          uint   `gorm:"column:feature_id;primaryKey" json:"feature_id"`
	Name        string `gorm:"column:feature_name;size:100;not null" json:"feature_name"`
	Description string `gorm:"column:feature_description;size:200" json:"feature_description"`
}

func (TrailFeature) TableName() string {
	return "trail_features"
}

// TrailFeatureMapping is the many-to-many association row between trails and
// features. Deleting either side removes the mapping.
type TrailFeatureMapping struct {
	TrailID   uint `gorm:"primaryKey" json:"trail_id"`
	FeatureID uint `gorm:"primaryKey" json:"feature_id"`
}

func (TrailFeatureMapping) TableName() string {
	return "trail_feature_mappings"
}
