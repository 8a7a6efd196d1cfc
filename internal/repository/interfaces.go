package repository

import (
	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations.
// Reads are scoped by membership and mutations by ownership inside the query
// itself, so a principal can never observe or alter an organization it is not
// associated with.
type OrganizationRepositoryInterface interface {
	WithTx(tx *gorm.DB) OrganizationRepositoryInterface
	Create(org *models.Organization) error
	GetByIDForMember(memberID, orgID uuid.UUID) (*models.Organization, error)
	GetByIDs(ids []uuid.UUID) ([]models.Organization, error)
	UpdateOwned(ownerID, orgID uuid.UUID, updates map[string]interface{}) (int64, error)
	DeleteOwned(ownerID, orgID uuid.UUID) (int64, error)
}

// MembershipRepositoryInterface defines the interface for membership repository operations
type MembershipRepositoryInterface interface {
	WithTx(tx *gorm.DB) MembershipRepositoryInterface
	Create(membership *models.Membership) error
	GetByOrganizationAndMember(orgID, memberID uuid.UUID) (*models.Membership, error)
	GetOrganizationIDsForMember(memberID uuid.UUID) ([]uuid.UUID, error)
	DeleteByOrganization(orgID uuid.UUID) error
}

// RoleRepositoryInterface defines the interface for role repository operations
type RoleRepositoryInterface interface {
	WithTx(tx *gorm.DB) RoleRepositoryInterface
	Create(role *models.Role) error
	CreateDefaultsIfAbsent(roles []*models.Role) (int64, error)
	GetByID(id uuid.UUID) (*models.Role, error)
	GetByIDs(ids []uuid.UUID) ([]models.Role, error)
	GetByOrganizationAndID(orgID, roleID uuid.UUID) (*models.Role, error)
	GetByOrganizationID(orgID uuid.UUID) ([]models.Role, error)
	CountByOrganizationID(orgID uuid.UUID) (int64, error)
	Delete(id uuid.UUID) error
	DeleteByOrganization(orgID uuid.UUID) error
}

// RoleAssignmentRepositoryInterface defines the interface for role assignment repository operations
type RoleAssignmentRepositoryInterface interface {
	WithTx(tx *gorm.DB) RoleAssignmentRepositoryInterface
	Upsert(assignment *models.RoleAssignment) (bool, error)
	Get(toID, orgID, roleID uuid.UUID) (*models.RoleAssignment, error)
	GetByPrincipal(toID uuid.UUID) ([]models.RoleAssignment, error)
	DeleteByPrincipalAndRole(toID, roleID uuid.UUID) (int64, error)
	DeleteByRole(roleID uuid.UUID) error
	DeleteByOrganization(orgID uuid.UUID) error
}
