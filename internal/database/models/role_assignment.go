package models

import (
	"github.com/google/uuid"
)

// RoleAssignment binds a role to a principal within an organization.
// The unique index on (to_id, organization_id, role_id) makes re-assignment
// a database-level no-op rather than a duplicate row.
type RoleAssignment struct {
	BaseModel
	ToID           uuid.UUID `json:"to_id" gorm:"type:uuid;not null;uniqueIndex:idx_role_assignments_triple;index" validate:"required"`
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_role_assignments_triple" validate:"required"`
	RoleID         uuid.UUID `json:"role_id" gorm:"type:uuid;not null;uniqueIndex:idx_role_assignments_triple;index" validate:"required"`
}

// TableName returns the table name for RoleAssignment
func (RoleAssignment) TableName() string {
	return "role_assignments"
}
