package dto

type CreateTrailPointRequest struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Sequence  *int    `json:"sequence"`
}

type CreateTrailRequest struct {
	TrailName        string                    `json:"trail_name"`
	TrailSummary     string                    `json:"trail_summary"`
	TrailDescription string                    `json:"trail_description"`
	Difficulty       string                    `json:"difficulty"`
	Location         string                    `json:"location"`
	Length           *float64                  `json:"length"`
	ElevationGain    *float64                  `json:"elevation_gain"`
	RouteType        string                    `json:"route_type"`
	UserID           uint                      `json:"user_id"`
	TrailPoints      []CreateTrailPointRequest `json:"trail_points"`
}

type TrailPointResponse struct {
	PointID   uint    `json:"point_id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Sequence  int     `json:"sequence"`
}

type TrailFeatureResponse struct {
	FeatureID          uint   `json:"feature_id"`
	FeatureName        string `json:"feature_name"`
	FeatureDescription string `json:"feature_description,omitempty"`
}

// TrailResponse is the role-dependent projection of a trail. The pointer
// fields are set only for admin callers; non-admin payloads never carry
// trail_description or user_id.
type TrailResponse struct {
	TrailID       uint     `json:"trail_id"`
	TrailName     string   `json:"trail_name"`
	TrailSummary  string   `json:"trail_summary"`
	Difficulty    string   `json:"difficulty"`
	Location      string   `json:"location"`
	Length        *float64 `json:"length"`
	ElevationGain *float64 `json:"elevation_gain"`
	RouteType     string   `json:"route_type"`

	TrailDescription *string                `json:"trail_description,omitempty"`
	UserID           *uint                  `json:"user_id,omitempty"`
	TrailPoints      []TrailPointResponse   `json:"trail_points,omitempty"`
	Features         []TrailFeatureResponse `json:"features,omitempty"`
}

type CreateFeatureRequest struct {
	FeatureName        string `json:"feature_name"`
	FeatureDescription string `json:"feature_description"`
}
