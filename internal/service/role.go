package service

import (
	"errors"
	"fmt"
	"time"

	"organization-service-backend/internal/database/models"
	apperrors "organization-service-backend/internal/errors"
	"organization-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RoleService handles business logic for roles and role assignments
type RoleService struct {
	roleRepo       repository.RoleRepositoryInterface
	assignmentRepo repository.RoleAssignmentRepositoryInterface
	validator      *validator.Validate
}

// NewRoleService creates a new role service
func NewRoleService(roleRepo repository.RoleRepositoryInterface, assignmentRepo repository.RoleAssignmentRepositoryInterface, validator *validator.Validate) *RoleService {
	return &RoleService{
		roleRepo:       roleRepo,
		assignmentRepo: assignmentRepo,
		validator:      validator,
	}
}

// WithTx returns a copy of the service whose repositories are bound to the
// given transaction, so provisioning and assignment can join the caller's unit
// of work.
func (s *RoleService) WithTx(tx *gorm.DB) RoleServiceInterface {
	return &RoleService{
		roleRepo:       s.roleRepo.WithTx(tx),
		assignmentRepo: s.assignmentRepo.WithTx(tx),
		validator:      s.validator,
	}
}

// CreateRoleRequest represents the request to create a role
type CreateRoleRequest struct {
	Name        string              `json:"name" validate:"required,min=1,max=100"`
	Description string              `json:"description,omitempty"`
	Permissions []models.Permission `json:"permissions"`
}

// RoleResponse represents the response for role operations
type RoleResponse struct {
	ID             uuid.UUID           `json:"id"`
	OrganizationID uuid.UUID           `json:"organization_id"`
	Name           string              `json:"name"`
	Description    string              `json:"description"`
	Permissions    []models.Permission `json:"permissions"`
	CreatedAt      string              `json:"created_at"`
	UpdatedAt      string              `json:"updated_at"`
}

// defaultRoles builds the three fixed roles for an organization: admin holds
// the full catalog, manager everything except administer, user the own scope.
func defaultRoles(orgID uuid.UUID) []*models.Role {
	return []*models.Role{
		{
			OrganizationID: orgID,
			Name:           string(models.DefaultRoleAdmin),
			Description:    "Admin role",
			Permissions:    models.AllPermissions(),
		},
		{
			OrganizationID: orgID,
			Name:           string(models.DefaultRoleManager),
			Description:    "Manager role",
			Permissions:    models.ManagerPermissions(),
		},
		{
			OrganizationID: orgID,
			Name:           string(models.DefaultRoleUser),
			Description:    "User role",
			Permissions:    models.OwnScopePermissions(),
		},
	}
}

// ProvisionDefaults creates the default roles for an organization unless they
// already exist, and returns the organization's default roles. The insert is
// conditional on the (organization, name) unique index, so repeated or
// concurrent calls yield the same three role identifiers without duplicates.
func (s *RoleService) ProvisionDefaults(orgID uuid.UUID) ([]RoleResponse, error) {
	if _, err := s.roleRepo.CreateDefaultsIfAbsent(defaultRoles(orgID)); err != nil {
		return nil, fmt.Errorf("failed to provision default roles: %w", err)
	}

	roles, err := s.roleRepo.GetByOrganizationID(orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load default roles: %w", err)
	}

	defaults := make([]RoleResponse, 0, len(models.DefaultRoleNames()))
	for _, name := range models.DefaultRoleNames() {
		for i := range roles {
			if roles[i].Name == string(name) {
				defaults = append(defaults, *s.toResponse(&roles[i]))
				break
			}
		}
	}
	if len(defaults) != len(models.DefaultRoleNames()) {
		return nil, apperrors.NewIntegrityError("default roles missing after provisioning")
	}
	return defaults, nil
}

// Create creates a new role within an organization. Permissions must come
// from the fixed catalog; a name already taken in the organization is a
// conflict, not an internal failure.
func (s *RoleService) Create(orgID uuid.UUID, req *CreateRoleRequest) (*RoleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	catalog := models.PermissionList(models.AllPermissions())
	for _, permission := range req.Permissions {
		if !catalog.Contains(permission) {
			return nil, apperrors.NewValidationError("permissions", fmt.Sprintf("unknown permission: %s", permission))
		}
	}

	role := &models.Role{
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		Permissions:    models.PermissionList(req.Permissions),
	}

	if err := s.roleRepo.Create(role); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrRoleExists
		}
		return nil, fmt.Errorf("failed to create role: %w", err)
	}

	return s.toResponse(role), nil
}

// Delete removes a role scoped to its organization and cascades the deletion
// to every assignment referencing it, keeping assignments free of dangling
// role references.
func (s *RoleService) Delete(orgID, roleID uuid.UUID) error {
	_, err := s.roleRepo.GetByOrganizationAndID(orgID, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to get role: %w", err)
	}

	if err := s.assignmentRepo.DeleteByRole(roleID); err != nil {
		return fmt.Errorf("failed to delete role assignments: %w", err)
	}
	if err := s.roleRepo.Delete(roleID); err != nil {
		return fmt.Errorf("failed to delete role: %w", err)
	}

	return nil
}

// Assign binds a role to a principal within an organization. Re-assigning an
// existing triple is a no-op, not an error.
func (s *RoleService) Assign(toID, orgID, roleID uuid.UUID) error {
	_, err := s.roleRepo.GetByOrganizationAndID(orgID, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrRoleNotFound
		}
		return fmt.Errorf("failed to get role: %w", err)
	}

	assignment := &models.RoleAssignment{
		ToID:           toID,
		OrganizationID: orgID,
		RoleID:         roleID,
	}
	if _, err := s.assignmentRepo.Upsert(assignment); err != nil {
		return fmt.Errorf("failed to assign role: %w", err)
	}

	return nil
}

// Revoke removes the assignment binding a principal to a role. A missing
// assignment is not an error.
func (s *RoleService) Revoke(toID, roleID uuid.UUID) error {
	if _, err := s.assignmentRepo.DeleteByPrincipalAndRole(toID, roleID); err != nil {
		return fmt.Errorf("failed to revoke role: %w", err)
	}
	return nil
}

// HasPermission reports whether an assignment exists for the exact
// (principal, organization, role) triple and the role's permission set
// contains the given permission. A principal's other roles in the
// organization are deliberately not consulted.
func (s *RoleService) HasPermission(toID, orgID, roleID uuid.UUID, permission models.Permission) (bool, error) {
	_, err := s.assignmentRepo.Get(toID, orgID, roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get role assignment: %w", err)
	}

	role, err := s.roleRepo.GetByID(roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get role: %w", err)
	}

	return role.Permissions.Contains(permission), nil
}

// ListRolesFor resolves every role assigned to a principal, across
// organizations. An assignment referencing a role that no longer exists is an
// integrity violation: role deletion cascades to assignments, so a dangling
// reference means the datastore is corrupt and is surfaced, not skipped.
func (s *RoleService) ListRolesFor(toID uuid.UUID) ([]RoleResponse, error) {
	assignments, err := s.assignmentRepo.GetByPrincipal(toID)
	if err != nil {
		return nil, fmt.Errorf("failed to get role assignments: %w", err)
	}

	roleIDs := make([]uuid.UUID, 0, len(assignments))
	seen := make(map[uuid.UUID]bool, len(assignments))
	for _, assignment := range assignments {
		if !seen[assignment.RoleID] {
			seen[assignment.RoleID] = true
			roleIDs = append(roleIDs, assignment.RoleID)
		}
	}

	roles, err := s.roleRepo.GetByIDs(roleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get roles: %w", err)
	}
	if len(roles) != len(roleIDs) {
		return nil, apperrors.NewIntegrityError(
			fmt.Sprintf("%d role assignment(s) reference missing roles", len(roleIDs)-len(roles)))
	}

	responses := make([]RoleResponse, len(roles))
	for i := range roles {
		responses[i] = *s.toResponse(&roles[i])
	}
	return responses, nil
}

// GetPermissions returns the permission set of a role
func (s *RoleService) GetPermissions(roleID uuid.UUID) ([]models.Permission, error) {
	role, err := s.roleRepo.GetByID(roleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRoleNotFound
		}
		return nil, fmt.Errorf("failed to get role: %w", err)
	}
	return []models.Permission(role.Permissions), nil
}

// toResponse converts a role model to response
func (s *RoleService) toResponse(role *models.Role) *RoleResponse {
	return &RoleResponse{
		ID:             role.ID,
		OrganizationID: role.OrganizationID,
		Name:           role.Name,
		Description:    role.Description,
		Permissions:    []models.Permission(role.Permissions),
		CreatedAt:      role.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      role.UpdatedAt.Format(time.RFC3339),
	}
}
