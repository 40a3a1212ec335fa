package routeguard

import (
	"strings"

	domainauth "github.com/Mohamed-Esmat/fms-upskilling-guide/internal/domain/auth"
)

// Admin and user screen paths under the dashboard.
const (
	PathRecipes        = "/dashboard/recipes"
	PathRecipeAdd      = "/dashboard/recipes/add"
	PathRecipeEdit     = "/dashboard/recipes/{id}/edit"
	PathCategories     = "/dashboard/categories"
	PathUsers          = "/dashboard/users"
	PathFavorites      = "/dashboard/favorites"
	PathChangePassword = "/dashboard/change-password"
)

// guardKind tags how a route is protected. The concrete guard for a
// navigation is assembled in Resolve because the public-only guard
// depends on the captured pre-login target.
type guardKind int

const (
	guardPublicOnly guardKind = iota
	guardAuthenticated
	guardAdmin
	guardUser
)

type route struct {
	pattern string
	kind    guardKind
}

// Table is the declarative route-authorization table mirroring the
// application's screen tree. Unmatched paths redirect to login.
type Table struct {
	routes []route
}

// NewTable builds the application route table.
func NewTable() *Table {
	return &Table{routes: []route{
		// Public-only screens.
		{PathLogin, guardPublicOnly},
		{PathRegister, guardPublicOnly},
		{PathForgotPassword, guardPublicOnly},
		{PathResetPassword, guardPublicOnly},
		{PathVerifyAccount, guardPublicOnly},

		// Authenticated screens.
		{PathDashboard, guardAuthenticated},
		{PathRecipes, guardAuthenticated},
		{PathChangePassword, guardAuthenticated},

		// Admin-only screens.
		{PathRecipeAdd, guardAdmin},
		{PathRecipeEdit, guardAdmin},
		{PathCategories, guardAdmin},
		{PathUsers, guardAdmin},

		// Standard-user-only screens.
		{PathFavorites, guardUser},
	}}
}

// Resolve evaluates the guard chain for path against the session.
// capturedTarget is the pre-login path recorded by the navigator, used
// by public-only screens to resume where the user was headed. Paths
// with no matching route (including "/") redirect to login.
func (t *Table) Resolve(path string, sess domainauth.Session, capturedTarget string) Decision {
	r, ok := t.match(path)
	if !ok {
		return Redirect(PathLogin)
	}

	switch r.kind {
	case guardPublicOnly:
		return RequireUnauthenticated(capturedTarget).Evaluate(sess)
	case guardAuthenticated:
		return RequireAuthenticated().Evaluate(sess)
	case guardAdmin:
		return Chain(RequireAuthenticated(), RequireRole(domainauth.RoleAdmin)).Evaluate(sess)
	case guardUser:
		return Chain(RequireAuthenticated(), RequireRole(domainauth.RoleUser)).Evaluate(sess)
	default:
		return Redirect(PathLogin)
	}
}

// Known reports whether path matches a declared route.
func (t *Table) Known(path string) bool {
	_, ok := t.match(path)
	return ok
}

// Protected reports whether path matches a declared route that
// requires authentication.
func (t *Table) Protected(path string) bool {
	r, ok := t.match(path)
	return ok && r.kind != guardPublicOnly
}

func (t *Table) match(path string) (route, bool) {
	for _, r := range t.routes {
		if matchPattern(r.pattern, path) {
			return r, true
		}
	}
	return route{}, false
}

// matchPattern matches a concrete path against a pattern whose
// segments may be parameters in {braces}.
func matchPattern(pattern, path string) bool {
	if pattern == path {
		return true
	}
	pp := strings.Split(strings.Trim(pattern, "/"), "/")
	sp := strings.Split(strings.Trim(path, "/"), "/")
	if len(pp) != len(sp) {
		return false
	}
	for i, seg := range pp {
		if strings.HasPrefix(seg, "{") && strings.HasSuffix(seg, "}") {
			if sp[i] == "" {
				return false
			}
			continue
		}
		if seg != sp[i] {
			return false
		}
	}
	return true
}
