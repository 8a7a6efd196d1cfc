package repository

import (
	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MembershipRepository handles database operations for memberships
type MembershipRepository struct {
	db *gorm.DB
}

// NewMembershipRepository creates a new membership repository
func NewMembershipRepository(db *gorm.DB) *MembershipRepository {
	return &MembershipRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *MembershipRepository) WithTx(tx *gorm.DB) MembershipRepositoryInterface {
	return &MembershipRepository{db: tx}
}

// Create creates a new membership. The unique index on
// (organization_id, member_id) rejects duplicate associations.
func (r *MembershipRepository) Create(membership *models.Membership) error {
	return r.db.Create(membership).Error
}

// GetByOrganizationAndMember retrieves the membership row for a member in an organization
func (r *MembershipRepository) GetByOrganizationAndMember(orgID, memberID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := r.db.First(&membership, "organization_id = ? AND member_id = ?", orgID, memberID).Error
	if err != nil {
		return nil, err
	}
	return &membership, nil
}

// GetOrganizationIDsForMember returns the identifiers of every organization
// the member is associated with
func (r *MembershipRepository) GetOrganizationIDsForMember(memberID uuid.UUID) ([]uuid.UUID, error) {
	ids := []uuid.UUID{}
	err := r.db.Model(&models.Membership{}).
		Where("member_id = ?", memberID).
		Pluck("organization_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// DeleteByOrganization removes every membership row for an organization
func (r *MembershipRepository) DeleteByOrganization(orgID uuid.UUID) error {
	return r.db.Delete(&models.Membership{}, "organization_id = ?", orgID).Error
}
