package models

import (
	"github.com/google/uuid"
)

// DefaultRoleName identifies one of the roles provisioned for every organization.
type DefaultRoleName string

const (
	DefaultRoleAdmin   DefaultRoleName = "admin"
	DefaultRoleManager DefaultRoleName = "manager"
	DefaultRoleUser    DefaultRoleName = "user"
)

// DefaultRoleNames returns the default role names in provisioning order.
func DefaultRoleNames() []DefaultRoleName {
	return []DefaultRoleName{DefaultRoleAdmin, DefaultRoleManager, DefaultRoleUser}
}

// Role represents a named permission set owned by an organization.
// The unique index on (organization_id, name) backs the insert-if-absent
// semantics of default-role provisioning.
type Role struct {
	BaseModel
	OrganizationID uuid.UUID      `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_roles_org_name" validate:"required"`
	Name           string         `json:"name" gorm:"not null;size:100;uniqueIndex:idx_roles_org_name" validate:"required,min=1,max=100"`
	Description    string         `json:"description" gorm:"type:text"`
	Permissions    PermissionList `json:"permissions" gorm:"type:jsonb"`
}

// TableName returns the table name for Role
func (Role) TableName() string {
	return "roles"
}
