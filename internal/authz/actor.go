package authz

import "github.com/taskflow-dev/taskflow-api/internal/models"

// Actor is the authenticated principal behind a request. It is built once
// from the verified token and passed explicitly down the call chain.
type Actor struct {
	ID       uint64
	Username string
	Role     models.UserRole
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return IsAdmin(a.Role)
}
