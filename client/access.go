package client

import (
	"github.com/fahrizal89/angkutin/internal/pkg/models"
)

// Decision is the outcome of a route-access check.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirectTo,omitempty"`
}

// rolePaths maps each role to its home area.
var rolePaths = map[models.Role]string{
	models.RoleAdmin:    "/admin",
	models.RoleCustomer: "/customer",
	models.RoleDriver:   "/driver",
}

// Decide checks whether the identity may enter an area restricted to the
// given roles. Denied callers are redirected to their own area; anonymous
// or unknown identities go to the login page.
func Decide(identity *Identity, allowed ...models.Role) Decision {
	if identity == nil {
		return Decision{RedirectTo: "/login"}
	}

	home, known := rolePaths[identity.Role]
	if !known {
		return Decision{RedirectTo: "/login"}
	}

	for _, role := range allowed {
		if identity.Role == role {
			return Decision{Allow: true}
		}
	}

	return Decision{RedirectTo: home}
}

// HomePath returns the landing area for an identity, or the login page for
// an anonymous caller.
func HomePath(identity *Identity) string {
	if identity == nil {
		return "/login"
	}
	if home, ok := rolePaths[identity.Role]; ok {
		return home
	}
	return "/login"
}
