package policy

import (
	"github.com/ppandov/trail-service/internal/claims"
	"github.com/ppandov/trail-service/internal/dto"
	"github.com/ppandov/trail-service/internal/models"
)

// Operation is a coarse-grained action a caller may attempt. The auth
// middleware has already rejected unauthenticated callers before these
// checks run.
type Operation int

const (
	ReadTrailList Operation = iota
	ReadTrailDetail
	WriteTrail
	ReadUser
	WriteUser
	ReadFeature
	WriteFeature
)

// Authorize decides whether the caller may perform op. Writes and user reads
// are admin-only; trail and feature reads are open to any authenticated role.
func Authorize(cl claims.Claims, op Operation) bool {
	switch op {
	case ReadTrailList, ReadTrailDetail, ReadFeature:
		return models.ValidRole(cl.Role)
	case WriteTrail, ReadUser, WriteUser, WriteFeature:
		return cl.IsAdmin()
	}
	return false
}

// ProjectTrail maps a trail to its role-dependent external representation.
// Admin callers see every field plus the owner reference, ordered points and
// features; everyone else gets the limited view.
func ProjectTrail(t *models.Trail, cl claims.Claims) dto.TrailResponse {
	resp := dto.TrailResponse{
		TrailID:       t.ID,
		TrailName:     t.Name,
		TrailSummary:  t.Summary,
		Difficulty:    t.Difficulty,
		Location:      t.Location,
		Length:        t.Length,
		ElevationGain: t.ElevationGain,
		RouteType:     t.RouteType,
	}

	if !cl.IsAdmin() {
		return resp
	}

	desc := t.Description
	userID := t.UserID
	resp.TrailDescription = &desc
	resp.UserID = &userID

	for _, p := range t.Points {
		resp.TrailPoints = append(resp.TrailPoints, dto.TrailPointResponse{
			PointID:   p.ID,
			Latitude:  p.Latitude,
			Longitude: p.Longitude,
			Sequence:  p.Sequence,
		})
	}
	for _, f := range t.Features {
		resp.Features = append(resp.Features, dto.TrailFeatureResponse{
			FeatureID:          f.ID,
			FeatureName:        f.Name,
			FeatureDescription: f.Description,
		})
	}

	return resp
}

// ProjectTrails applies ProjectTrail to each trail in order.
func ProjectTrails(trails []models.Trail, cl claims.Claims) []dto.TrailResponse {
	out := make([]dto.TrailResponse, 0, len(trails))
	for i := range trails {
		out = append(out, ProjectTrail(&trails[i], cl))
	}
	return out
}
