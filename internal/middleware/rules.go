package middleware

import (
	"strings"

	"eventexplorer/internal/models"
)

type access int

const (
	accessPublic access = iota
	accessAuthenticated
	accessRoles
)

type rule struct {
	methods []string
	pattern string
	access  access
	roles   []models.Role
}

// The table is evaluated top to bottom and the first matching rule wins, so
// the participation rules must stay above the generic /events/** mutations.
var rules = []rule{
	{methods: []string{"POST"}, pattern: "/api/auth/register", access: accessPublic},
	{methods: []string{"GET"}, pattern: "/api/auth/me", access: accessAuthenticated},
	{methods: []string{"GET"}, pattern: "/events/**", access: accessPublic},
	{methods: []string{"POST"}, pattern: "/api/upload/**", access: accessRoles, roles: []models.Role{models.RoleAdmin}},
	{methods: []string{"POST", "DELETE"}, pattern: "/events/*/participation", access: accessRoles, roles: []models.Role{models.RoleUser, models.RoleAdmin}},
	{methods: []string{"POST", "PUT", "DELETE"}, pattern: "/events/**", access: accessRoles, roles: []models.Role{models.RoleAdmin}},
}

// Anything the table does not cover requires an authenticated identity.
var defaultRule = rule{access: accessAuthenticated}

func resolveRule(method, path string) rule {
	for _, r := range rules {
		if !matchMethod(r.methods, method) {
			continue
		}
		if matchPattern(r.pattern, path) {
			return r
		}
	}
	return defaultRule
}

func matchMethod(methods []string, method string) bool {
	for _, m := range methods {
		if m == method {
			return true
		}
	}
	return false
}

// matchPattern matches a path against a pattern where "*" stands for exactly
// one segment and a trailing "**" for any remainder, including none.
func matchPattern(pattern, path string) bool {
	patternSegs := splitPath(pattern)
	pathSegs := splitPath(path)

	for i, seg := range patternSegs {
		if seg == "**" {
			return true
		}
		if i >= len(pathSegs) {
			return false
		}
		if seg != "*" && seg != pathSegs[i] {
			return false
		}
	}
	return len(pathSegs) == len(patternSegs)
}

func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}

func (r rule) allows(role models.Role) bool {
	for _, allowed := range r.roles {
		if allowed == role {
			return true
		}
	}
	return false
}
