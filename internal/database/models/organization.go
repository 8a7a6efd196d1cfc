package models

import (
	"github.com/google/uuid"
)

// Organization represents the root entity for multi-tenancy. Ownership is
// fixed at creation; visibility is derived from Membership rows, never from
// the organization record itself.
type Organization struct {
	BaseModel
	Name        string    `json:"name" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description string    `json:"description" gorm:"type:text"`
	OwnerID     uuid.UUID `json:"owner_id" gorm:"type:uuid;not null;index" validate:"required"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
