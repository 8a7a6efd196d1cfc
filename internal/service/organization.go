package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"organization-service-backend/internal/database"
	"organization-service-backend/internal/database/models"
	apperrors "organization-service-backend/internal/errors"
	"organization-service-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationService orchestrates the organization use cases. Each mutating
// use case runs in two phases: the local writes commit in one transaction,
// then the caller's roster is pushed to the authorization service. A failed
// push does not undo the local commit; it is reported to the caller so the
// roster can be replayed.
type OrganizationService struct {
	txRunner       database.TxRunner
	orgRepo        repository.OrganizationRepositoryInterface
	membershipRepo repository.MembershipRepositoryInterface
	roleRepo       repository.RoleRepositoryInterface
	assignmentRepo repository.RoleAssignmentRepositoryInterface
	roleService    RoleServiceInterface
	replicator     RosterReplicatorInterface
	validator      *validator.Validate
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	txRunner database.TxRunner,
	orgRepo repository.OrganizationRepositoryInterface,
	membershipRepo repository.MembershipRepositoryInterface,
	roleRepo repository.RoleRepositoryInterface,
	assignmentRepo repository.RoleAssignmentRepositoryInterface,
	roleService RoleServiceInterface,
	replicator RosterReplicatorInterface,
	validator *validator.Validate,
) *OrganizationService {
	return &OrganizationService{
		txRunner:       txRunner,
		orgRepo:        orgRepo,
		membershipRepo: membershipRepo,
		roleRepo:       roleRepo,
		assignmentRepo: assignmentRepo,
		roleService:    roleService,
		replicator:     replicator,
		validator:      validator,
	}
}

// CreateOrganizationRequest represents the request to create an organization
type CreateOrganizationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Description string `json:"description,omitempty"`
}

// UpdateOrganizationRequest represents a partial update to an organization.
// Only name and description are mutable; ownership never changes.
type UpdateOrganizationRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description,omitempty"`
}

// OrganizationResponse represents the response for organization operations
type OrganizationResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	CreatedAt   string    `json:"created_at"`
	UpdatedAt   string    `json:"updated_at"`
}

// Create creates an organization owned by the caller. Phase 1 commits the
// organization, the owner's membership, the default roles and the owner's
// admin assignment as one transaction. Phase 2 pushes the owner's roster.
// When the push fails the response is returned together with the replication
// error: the organization exists locally even though the call failed.
func (s *OrganizationService) Create(ctx context.Context, ownerID uuid.UUID, bearerToken string, req *CreateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	org := &models.Organization{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     ownerID,
	}

	err := s.txRunner.Transaction(func(tx *gorm.DB) error {
		orgRepo := s.orgRepo.WithTx(tx)
		membershipRepo := s.membershipRepo.WithTx(tx)
		roleService := s.roleService.WithTx(tx)

		if err := orgRepo.Create(org); err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		membership := &models.Membership{
			OrganizationID: org.ID,
			OwnerID:        ownerID,
			MemberID:       ownerID,
		}
		if err := membershipRepo.Create(membership); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperrors.ErrMembershipExists
			}
			return fmt.Errorf("failed to create owner membership: %w", err)
		}

		defaults, err := roleService.ProvisionDefaults(org.ID)
		if err != nil {
			return err
		}

		var adminRoleID uuid.UUID
		for _, role := range defaults {
			if role.Name == string(models.DefaultRoleAdmin) {
				adminRoleID = role.ID
				break
			}
		}
		if adminRoleID == uuid.Nil {
			return apperrors.NewIntegrityError("admin role missing after provisioning")
		}

		return roleService.Assign(ownerID, org.ID, adminRoleID)
	})
	if err != nil {
		return nil, err
	}

	response := s.toResponse(org)
	if err := s.replicator.Push(ctx, ownerID, bearerToken); err != nil {
		return response, err
	}
	return response, nil
}

// Get retrieves an organization visible to the caller. Non-members receive
// not-found, never a forbidden that would leak existence.
func (s *OrganizationService) Get(memberID, orgID uuid.UUID) (*OrganizationResponse, error) {
	org, err := s.orgRepo.GetByIDForMember(memberID, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}
	return s.toResponse(org), nil
}

// GetAll retrieves every organization the caller is a member of. The member's
// membership rows are resolved first and the organizations fetched by that
// identifier set.
func (s *OrganizationService) GetAll(memberID uuid.UUID) ([]OrganizationResponse, error) {
	orgIDs, err := s.membershipRepo.GetOrganizationIDsForMember(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	orgs, err := s.orgRepo.GetByIDs(orgIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get organizations: %w", err)
	}

	responses := make([]OrganizationResponse, len(orgs))
	for i := range orgs {
		responses[i] = *s.toResponse(&orgs[i])
	}
	return responses, nil
}

// Update applies a partial update scoped to the owner, then pushes the
// owner's roster. Zero matched rows means the organization does not exist or
// the caller does not own it; both surface as not-found.
func (s *OrganizationService) Update(ctx context.Context, ownerID uuid.UUID, bearerToken string, orgID uuid.UUID, req *UpdateOrganizationRequest) (*OrganizationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if len(updates) == 0 {
		return nil, apperrors.NewValidationError("", "no updatable fields provided")
	}
	updates["updated_at"] = time.Now().UTC()

	rows, err := s.orgRepo.UpdateOwned(ownerID, orgID, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}
	if rows == 0 {
		return nil, apperrors.ErrOrganizationNotFound
	}

	org, err := s.orgRepo.GetByIDForMember(ownerID, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload organization: %w", err)
	}

	response := s.toResponse(org)
	if err := s.replicator.Push(ctx, ownerID, bearerToken); err != nil {
		return response, err
	}
	return response, nil
}

// Delete removes an organization scoped to the owner and cascades its
// memberships, role assignments and roles in one transaction, then pushes the
// owner's roster.
func (s *OrganizationService) Delete(ctx context.Context, ownerID uuid.UUID, bearerToken string, orgID uuid.UUID) error {
	err := s.txRunner.Transaction(func(tx *gorm.DB) error {
		orgRepo := s.orgRepo.WithTx(tx)
		membershipRepo := s.membershipRepo.WithTx(tx)
		roleRepo := s.roleRepo.WithTx(tx)
		assignmentRepo := s.assignmentRepo.WithTx(tx)

		rows, err := orgRepo.DeleteOwned(ownerID, orgID)
		if err != nil {
			return fmt.Errorf("failed to delete organization: %w", err)
		}
		if rows == 0 {
			return apperrors.ErrOrganizationNotFound
		}

		if err := membershipRepo.DeleteByOrganization(orgID); err != nil {
			return fmt.Errorf("failed to delete memberships: %w", err)
		}
		if err := assignmentRepo.DeleteByOrganization(orgID); err != nil {
			return fmt.Errorf("failed to delete role assignments: %w", err)
		}
		if err := roleRepo.DeleteByOrganization(orgID); err != nil {
			return fmt.Errorf("failed to delete roles: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	return s.replicator.Push(ctx, ownerID, bearerToken)
}

// ReplayRoster re-pushes a principal's current roster. This is the
// reconciliation entry point for callers that observed a replication failure
// on an earlier mutation.
func (s *OrganizationService) ReplayRoster(ctx context.Context, principalID uuid.UUID, bearerToken string) error {
	return s.replicator.Push(ctx, principalID, bearerToken)
}

// toResponse converts an organization model to response
func (s *OrganizationService) toResponse(org *models.Organization) *OrganizationResponse {
	return &OrganizationResponse{
		ID:          org.ID,
		Name:        org.Name,
		Description: org.Description,
		OwnerID:     org.OwnerID,
		CreatedAt:   org.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   org.UpdatedAt.Format(time.RFC3339),
	}
}
