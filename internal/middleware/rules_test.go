package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eventexplorer/internal/models"
)

func TestMatchPattern(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/api/auth/register", "/api/auth/register", true},
		{"/api/auth/register", "/api/auth/me", false},
		{"/events/**", "/events", true},
		{"/events/**", "/events/5", true},
		{"/events/**", "/events/5/participation", true},
		{"/events/**", "/api/events", false},
		{"/events/*/participation", "/events/5/participation", true},
		{"/events/*/participation", "/events/5", false},
		{"/events/*/participation", "/events/5/participation/extra", false},
		{"/events/*/participation", "/events/participation", false},
		{"/api/upload/**", "/api/upload/image", true},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, matchPattern(tt.pattern, tt.path))
		})
	}
}

func TestResolveRule(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		wantAccess access
		wantRoles  []models.Role
	}{
		{"register is public", "POST", "/api/auth/register", accessPublic, nil},
		{"me requires auth", "GET", "/api/auth/me", accessAuthenticated, nil},
		{"event reads are public", "GET", "/events/5", accessPublic, nil},
		{"event list is public", "GET", "/events", accessPublic, nil},
		{"upload is admin only", "POST", "/api/upload/image", accessRoles, []models.Role{models.RoleAdmin}},
		{"mark participation allows users", "POST", "/events/5/participation", accessRoles, []models.Role{models.RoleUser, models.RoleAdmin}},
		{"remove participation allows users", "DELETE", "/events/5/participation", accessRoles, []models.Role{models.RoleUser, models.RoleAdmin}},
		{"event create is admin only", "POST", "/events", accessRoles, []models.Role{models.RoleAdmin}},
		{"event update is admin only", "PUT", "/events/5", accessRoles, []models.Role{models.RoleAdmin}},
		{"event delete is admin only", "DELETE", "/events/5", accessRoles, []models.Role{models.RoleAdmin}},
		{"anything else requires auth", "GET", "/api/images/banner.png", accessAuthenticated, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := resolveRule(tt.method, tt.path)
			assert.Equal(t, tt.wantAccess, r.access)
			assert.Equal(t, tt.wantRoles, r.roles)
		})
	}
}

// The participation rules must sit above the generic event mutation rules:
// first match wins, and /events/*/participation is also a POST /events/** path.
func TestRuleOrdering_SpecificBeforeGeneral(t *testing.T) {
	r := resolveRule("POST", "/events/5/participation")
	assert.True(t, r.allows(models.RoleUser))

	r = resolveRule("POST", "/events")
	assert.False(t, r.allows(models.RoleUser))
	assert.True(t, r.allows(models.RoleAdmin))
}
