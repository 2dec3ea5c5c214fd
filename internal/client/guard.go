package client

import "github.com/BruksfildServices01/recipe-nest/internal/domain/user"

const (
	LoginPath = "/login"
	HomePath  = "/"
)

// Route is a client page restricted to one role.
type Route struct {
	Path string
	Role user.Role
}

var (
	ChefDashboardRoute      = Route{Path: "/chef-dashboard", Role: user.RoleChef}
	FoodLoverDashboardRoute = Route{Path: "/foodlover-dashboard", Role: user.RoleFoodLover}
	AdminDashboardRoute     = Route{Path: "/admin-dashboard", Role: user.RoleAdmin}
)

// DashboardPath is where a freshly signed-in user lands.
func DashboardPath(role user.Role) string {
	switch role {
	case user.RoleChef:
		return ChefDashboardRoute.Path
	case user.RoleFoodLover:
		return FoodLoverDashboardRoute.Path
	case user.RoleAdmin:
		return AdminDashboardRoute.Path
	default:
		return HomePath
	}
}

// Decision is the outcome of a guard check. When Allow is false the caller
// navigates to Redirect; From is the page to return to after login.
type Decision struct {
	Allow    bool
	Redirect string
	From     string
}

// Guard never redirects a signed-in user back to login or to the same
// route, so a role mismatch cannot loop.
func Guard(s *Session, route Route) Decision {
	if !s.Authenticated() {
		return Decision{Redirect: LoginPath, From: route.Path}
	}
	if s.Role() != route.Role {
		return Decision{Redirect: HomePath}
	}
	return Decision{Allow: true}
}
