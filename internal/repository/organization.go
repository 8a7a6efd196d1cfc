package repository

import (
	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrganizationRepository handles database operations for organizations
type OrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *OrganizationRepository) WithTx(tx *gorm.DB) OrganizationRepositoryInterface {
	return &OrganizationRepository{db: tx}
}

// Create creates a new organization
func (r *OrganizationRepository) Create(org *models.Organization) error {
	return r.db.Create(org).Error
}

// GetByIDForMember retrieves an organization by ID, restricted to organizations
// the member has a membership row for. The membership filter is part of the
// query so non-members get gorm.ErrRecordNotFound, never the record.
func (r *OrganizationRepository) GetByIDForMember(memberID, orgID uuid.UUID) (*models.Organization, error) {
	memberOrgs := r.db.Model(&models.Membership{}).
		Select("organization_id").
		Where("member_id = ?", memberID)

	var org models.Organization
	err := r.db.Where("id = ?", orgID).Where("id IN (?)", memberOrgs).First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByIDs retrieves the organizations matching the given identifiers
func (r *OrganizationRepository) GetByIDs(ids []uuid.UUID) ([]models.Organization, error) {
	orgs := []models.Organization{}
	if len(ids) == 0 {
		return orgs, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}

// UpdateOwned applies the given field updates to an organization, scoped to its
// owner. Returns the number of rows matched; zero means the organization does
// not exist or the caller does not own it.
func (r *OrganizationRepository) UpdateOwned(ownerID, orgID uuid.UUID, updates map[string]interface{}) (int64, error) {
	result := r.db.Model(&models.Organization{}).
		Where("id = ? AND owner_id = ?", orgID, ownerID).
		Updates(updates)
	return result.RowsAffected, result.Error
}

// DeleteOwned deletes an organization scoped to its owner. Returns the number
// of rows deleted; zero means not found or not owned by the caller.
func (r *OrganizationRepository) DeleteOwned(ownerID, orgID uuid.UUID) (int64, error) {
	result := r.db.Where("id = ? AND owner_id = ?", orgID, ownerID).
		Delete(&models.Organization{})
	return result.RowsAffected, result.Error
}
