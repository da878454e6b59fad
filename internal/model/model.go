package model

// Environment is the deployment environment name.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentProduction  Environment = "production"
)

// Role is a user role.
type Role string

const (
	RoleUser      Role = "user"
	RoleGuide     Role = "guide"
	RoleLeadGuide Role = "lead-guide"
	RoleAdmin     Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleGuide, RoleLeadGuide, RoleAdmin:
		return true
	}
	return false
}

// Scope identifies the authenticated caller of a request.
type Scope struct {
	UserID string
	Name   string
	Email  string
	Role   Role
}

// Allowed reports whether the scope may act with one of roles.
// Admins are always allowed.
func (sc Scope) Allowed(roles ...Role) bool {
	if sc.Role == RoleAdmin {
		return true
	}
	for _, r := range roles {
		if sc.Role == r {
			return true
		}
	}
	return false
}
