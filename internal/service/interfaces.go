package service

import (
	"context"

	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for the organization
// orchestrator. Mutating operations run in two phases: the local transaction
// first, then the roster push to the authorization service. A replication
// failure after a committed first phase is returned alongside the local
// result, never rolled back.
type OrganizationServiceInterface interface {
	Create(ctx context.Context, ownerID uuid.UUID, bearerToken string, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	Get(memberID, orgID uuid.UUID) (*OrganizationResponse, error)
	GetAll(memberID uuid.UUID) ([]OrganizationResponse, error)
	Update(ctx context.Context, ownerID uuid.UUID, bearerToken string, orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error)
	Delete(ctx context.Context, ownerID uuid.UUID, bearerToken string, orgID uuid.UUID) error
	ReplayRoster(ctx context.Context, principalID uuid.UUID, bearerToken string) error
}

// RoleServiceInterface defines the interface for role management
type RoleServiceInterface interface {
	WithTx(tx *gorm.DB) RoleServiceInterface
	ProvisionDefaults(orgID uuid.UUID) ([]RoleResponse, error)
	Create(orgID uuid.UUID, req *CreateRoleRequest) (*RoleResponse, error)
	Delete(orgID, roleID uuid.UUID) error
	Assign(toID, orgID, roleID uuid.UUID) error
	Revoke(toID, roleID uuid.UUID) error
	HasPermission(toID, orgID, roleID uuid.UUID, permission models.Permission) (bool, error)
	ListRolesFor(toID uuid.UUID) ([]RoleResponse, error)
	GetPermissions(roleID uuid.UUID) ([]models.Permission, error)
}

// RosterReplicatorInterface defines the interface for pushing a principal's
// roster to the external authorization service
type RosterReplicatorInterface interface {
	Push(ctx context.Context, principalID uuid.UUID, bearerToken string) error
}
