package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // Account ID of the creator
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// Role identifies which portal an authenticated principal belongs to.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// Actor is the authenticated principal performing an operation.
type Actor struct {
	ID   string
	Role Role
}

// IsAdmin reports whether the actor authenticated through the admin portal.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}
