package testutils

import (
	"time"

	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "Test Organization",
		Description: "A test organization for testing purposes",
		OwnerID:     uuid.New(),
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	return org
}

// WithOwner sets a custom owner for the organization
func (f *OrganizationFactory) WithOwner(ownerID uuid.UUID) *models.Organization {
	org := f.Create()
	org.OwnerID = ownerID
	return org
}

// MembershipFactory provides methods to create test Membership data
type MembershipFactory struct{}

// NewMembershipFactory creates a new MembershipFactory
func NewMembershipFactory() *MembershipFactory {
	return &MembershipFactory{}
}

// Create creates a test Membership with default values
func (f *MembershipFactory) Create() *models.Membership {
	ownerID := uuid.New()
	return &models.Membership{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		MemberID:       ownerID,
		OwnerID:        ownerID,
	}
}

// ForOrganization creates a membership of the given member in the given organization
func (f *MembershipFactory) ForOrganization(org *models.Organization, memberID uuid.UUID) *models.Membership {
	m := f.Create()
	m.OrganizationID = org.ID
	m.MemberID = memberID
	m.OwnerID = org.OwnerID
	return m
}

// RoleFactory provides methods to create test Role data
type RoleFactory struct{}

// NewRoleFactory creates a new RoleFactory
func NewRoleFactory() *RoleFactory {
	return &RoleFactory{}
}

// Create creates a test Role with default values
func (f *RoleFactory) Create() *models.Role {
	return &models.Role{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: uuid.New(),
		Name:           "Test Role",
		Description:    "A test role for testing purposes",
		Permissions:    models.PermissionList{models.PermissionReadOwn, models.PermissionWriteOwn},
	}
}

// ForOrganization creates a role inside the given organization
func (f *RoleFactory) ForOrganization(orgID uuid.UUID, name string) *models.Role {
	role := f.Create()
	role.OrganizationID = orgID
	role.Name = name
	return role
}

// WithPermissions sets a custom permission set for the role
func (f *RoleFactory) WithPermissions(permissions []models.Permission) *models.Role {
	role := f.Create()
	role.Permissions = permissions
	return role
}

// RoleAssignmentFactory provides methods to create test RoleAssignment data
type RoleAssignmentFactory struct{}

// NewRoleAssignmentFactory creates a new RoleAssignmentFactory
func NewRoleAssignmentFactory() *RoleAssignmentFactory {
	return &RoleAssignmentFactory{}
}

// Create creates a test RoleAssignment with default values
func (f *RoleAssignmentFactory) Create() *models.RoleAssignment {
	return &models.RoleAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ToID:           uuid.New(),
		OrganizationID: uuid.New(),
		RoleID:         uuid.New(),
	}
}

// ForRole creates an assignment of the given role to the given principal
func (f *RoleAssignmentFactory) ForRole(role *models.Role, toID uuid.UUID) *models.RoleAssignment {
	a := f.Create()
	a.ToID = toID
	a.OrganizationID = role.OrganizationID
	a.RoleID = role.ID
	return a
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization   *OrganizationFactory
	Membership     *MembershipFactory
	Role           *RoleFactory
	RoleAssignment *RoleAssignmentFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:   NewOrganizationFactory(),
		Membership:     NewMembershipFactory(),
		Role:           NewRoleFactory(),
		RoleAssignment: NewRoleAssignmentFactory(),
	}
}
