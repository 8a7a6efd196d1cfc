package models

import (
	"github.com/google/uuid"
)

// Membership records that a principal may see and act on an organization.
// It is the sole path from a principal to its visible organizations; listing
// queries resolve membership rows first and fetch organizations by id.
type Membership struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_member" validate:"required"`
	OwnerID        uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
	MemberID       uuid.UUID `json:"member_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_member;index" validate:"required"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
