package models

// Trail is a walking route owned by exactly one user.
type Trail struct {
	ID            uint     `gorm:"column:trail_id;primaryKey" json:"trail_id"`
	Name          string   `gorm:"column:trail_name;size:100;not null" json:"trail_name"`
	Summary       string   `gorm:"column:trail_summary;size:200;not null" json:"trail_summary"`
	Description   string   `gorm:"column:trail_description;size:500" json:"trail_description"`
	Difficulty    string   `gorm:"size:50" json:"difficulty"`
	Location      string   `gorm:"size:200" json:"location"`
	Length        *float64 `json:"length"`
	ElevationGain *float64 `json:"elevation_gain"`
	RouteType     string   `gorm:"size:50" json:"route_type"`

	UserID uint `gorm:"not null;index" json:"user_id"`
	Owner  User `gorm:"foreignKey:UserID" json:"-"`

	Points   []TrailPoint   `gorm:"foreignKey:TrailID;constraint:OnDelete:CASCADE" json:"trail_points,omitempty"`
	Features []TrailFeature `gorm:"many2many:trail_feature_mappings;joinForeignKey:TrailID;joinReferences:FeatureID" json:"features,omitempty"`
}

func (Trail) TableName() string {
	return "trails"
}

// TrailPoint is one waypoint on a trail's path. Sequence gives the explicit
// path order; points with equal sequence fall back to insertion order.
type TrailPoint struct {
	ID        uint    `gorm:"column:point_id;primaryKey" json:"point_id"`
	Latitude  float64 `gorm:"not null" json:"latitude"`
	Longitude float64 `gorm:"not null" json:"longitude"`
	Sequence  int     `gorm:"not null" json:"sequence"`
	TrailID   uint    `gorm:"not null;index" json:"trail_id"`
}

func (TrailPoint) TableName() string {
	return "trail_points"
}
