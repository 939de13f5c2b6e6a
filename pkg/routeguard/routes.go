package routeguard

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/navigation"
	"github.com/Adnan7389/Compliance-Tracker-client/pkg/session"
)

// ErrInvalidRouteTable indicates the route table could not be parsed.
var ErrInvalidRouteTable = errors.New("routeguard.invalid_route_table")

// Requirement declares who may visit a route. A zero Requirement means any
// authenticated user.
type Requirement struct {
	// Roles restricts the route to the listed roles. Empty allows any
	// authenticated user.
	Roles []session.Role `yaml:"roles,omitempty"`

	// Public marks a public-only route: authenticated users are redirected
	// away instead of rendering it.
	Public bool `yaml:"public,omitempty"`
}

// allows reports whether the given role satisfies the requirement.
func (r Requirement) allows(role session.Role) bool {
	if len(r.Roles) == 0 {
		return true
	}
	for _, allowed := range r.Roles {
		if allowed == role {
			return true
		}
	}
	return false
}

// RouteTable maps route paths to their requirements. Paths not present are
// treated as requiring authentication with no role restriction.
type RouteTable map[string]Requirement

// DefaultRouteTable mirrors the application's routing: staff management is
// owner-only, the auth screens are public-only, everything else needs a
// session.
func DefaultRouteTable() RouteTable {
	return RouteTable{
		navigation.RouteLogin:     {Public: true},
		navigation.RouteRegister:  {Public: true},
		navigation.RouteDashboard: {},
		"/tasks":                  {},
		"/profile":                {},
		"/staff":                  {Roles: []session.Role{session.RoleOwner}},
	}
}

// LoadRouteTable parses a YAML route table of the form:
//
//	/staff:
//	  roles: [owner]
//	/login:
//	  public: true
func LoadRouteTable(r io.Reader) (RouteTable, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRouteTable, err)
	}

	var table RouteTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidRouteTable, err)
	}
	if table == nil {
		table = make(RouteTable)
	}
	return table, nil
}
