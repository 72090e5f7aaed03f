package policy

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/ppandov/trail-service/internal/claims"
	"github.com/ppandov/trail-service/internal/models"
)

func TestAuthorize(t *testing.T) {
	admin := claims.Claims{UserID: 1, Role: models.RoleAdmin}
	user := claims.Claims{UserID: 2, Role: models.RoleUser}

	cases := []struct {
		name string
		cl   claims.Claims
		op   Operation
		want bool
	}{
		{"admin reads trail list", admin, ReadTrailList, true},
		{"user reads trail list", user, ReadTrailList, true},
		{"user reads trail detail", user, ReadTrailDetail, true},
		{"user reads features", user, ReadFeature, true},
		{"admin writes trail", admin, WriteTrail, true},
		{"user writes trail", user, WriteTrail, false},
		{"admin reads users", admin, ReadUser, true},
		{"user reads users", user, ReadUser, false},
		{"user writes users", user, WriteUser, false},
		{"user writes features", user, WriteFeature, false},
		{"unknown role reads trails", claims.Claims{Role: "root"}, ReadTrailList, false},
		{"unknown role writes trails", claims.Claims{Role: "root"}, WriteTrail, false},
	}

	for _, tc := range cases {
		if got := Authorize(tc.cl, tc.op); got != tc.want {
			t.Errorf("%s: Authorize = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func sampleTrail() *models.Trail {
	length := 12.5
	gain := 340.0
	return &models.Trail{
		ID:            7,
		Name:          "Coast Path",
		Summary:       "Scenic",
		Description:   "Full route notes",
		Difficulty:    "Hard",
		Location:      "Plymouth",
		Length:        &length,
		ElevationGain: &gain,
		RouteType:     "Loop",
		UserID:        1,
		Points: []models.TrailPoint{
			{ID: 1, Latitude: 50.37, Longitude: -4.14, Sequence: 1, TrailID: 7},
			{ID: 2, Latitude: 50.38, Longitude: -4.15, Sequence: 2, TrailID: 7},
		},
		Features: []models.TrailFeature{
			{ID: 3, Name: "waterfall"},
		},
	}
}

func TestProjectTrailNonAdminOmitsRestrictedFields(t *testing.T) {
	resp := ProjectTrail(sampleTrail(), claims.Claims{UserID: 2, Role: models.RoleUser})

	if resp.TrailDescription != nil {
		t.Errorf("non-admin projection carries trail_description")
	}
	if resp.UserID != nil {
		t.Errorf("non-admin projection carries user_id")
	}
	if len(resp.TrailPoints) != 0 || len(resp.Features) != 0 {
		t.Errorf("non-admin projection carries associations")
	}

	// The wire payload must not even contain the keys.
	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	payload := string(b)
	for _, key := range []string{"trail_description", "user_id"} {
		if strings.Contains(payload, key) {
			t.Errorf("non-admin payload contains %q: %s", key, payload)
		}
	}
	if !strings.Contains(payload, `"trail_name":"Coast Path"`) {
		t.Errorf("shared fields missing from payload: %s", payload)
	}
}

func TestProjectTrailAdminSeesEverything(t *testing.T) {
	resp := ProjectTrail(sampleTrail(), claims.Claims{UserID: 1, Role: models.RoleAdmin})

	if resp.TrailDescription == nil || *resp.TrailDescription != "Full route notes" {
		t.Fatalf("admin projection missing trail_description")
	}
	if resp.UserID == nil || *resp.UserID != 1 {
		t.Fatalf("admin projection missing user_id")
	}
	if len(resp.TrailPoints) != 2 {
		t.Fatalf("admin projection missing points: %d", len(resp.TrailPoints))
	}
	if resp.TrailPoints[0].Sequence != 1 || resp.TrailPoints[1].Sequence != 2 {
		t.Errorf("points out of order")
	}
	if len(resp.Features) != 1 || resp.Features[0].FeatureName != "waterfall" {
		t.Errorf("admin projection missing features")
	}
}

func TestProjectTrailAdminEmptyDescriptionStillPresent(t *testing.T) {
	trail := sampleTrail()
	trail.Description = ""

	resp := ProjectTrail(trail, claims.Claims{UserID: 1, Role: models.RoleAdmin})
	if resp.TrailDescription == nil {
		t.Fatalf("admin projection must carry trail_description even when empty")
	}

	b, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(b), `"trail_description":""`) {
		t.Errorf("empty trail_description dropped from admin payload: %s", b)
	}
}

func TestProjectTrails(t *testing.T) {
	trails := []models.Trail{*sampleTrail(), *sampleTrail()}
	out := ProjectTrails(trails, claims.Claims{UserID: 2, Role: models.RoleUser})
	if len(out) != 2 {
		t.Fatalf("expected 2 projections, got %d", len(out))
	}
}
