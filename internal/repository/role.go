package repository

import (
	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *gorm.DB
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *gorm.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RoleRepository) WithTx(tx *gorm.DB) RoleRepositoryInterface {
	return &RoleRepository{db: tx}
}

// Create creates a new role
func (r *RoleRepository) Create(role *models.Role) error {
	return r.db.Create(role).Error
}

// CreateDefaultsIfAbsent inserts the given roles, skipping any whose
// (organization_id, name) pair already exists. The conflict target is the
// unique index, so two concurrent provisioning calls cannot both insert; the
// returned count is the number of rows actually written.
func (r *RoleRepository) CreateDefaultsIfAbsent(roles []*models.Role) (int64, error) {
	if len(roles) == 0 {
		return 0, nil
	}
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "name"}},
		DoNothing: true,
	}).Create(&roles)
	return result.RowsAffected, result.Error
}

// GetByID retrieves a role by ID
func (r *RoleRepository) GetByID(id uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByIDs retrieves the roles matching the given identifiers
func (r *RoleRepository) GetByIDs(ids []uuid.UUID) ([]models.Role, error) {
	roles := []models.Role{}
	if len(ids) == 0 {
		return roles, nil
	}
	err := r.db.Where("id IN ?", ids).Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// GetByOrganizationAndID retrieves a role by ID scoped to its owning organization
func (r *RoleRepository) GetByOrganizationAndID(orgID, roleID uuid.UUID) (*models.Role, error) {
	var role models.Role
	err := r.db.First(&role, "id = ? AND organization_id = ?", roleID, orgID).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByOrganizationID retrieves all roles for an organization
func (r *RoleRepository) GetByOrganizationID(orgID uuid.UUID) ([]models.Role, error) {
	roles := []models.Role{}
	err := r.db.Where("organization_id = ?", orgID).Order("name").Find(&roles).Error
	if err != nil {
		return nil, err
	}
	return roles, nil
}

// CountByOrganizationID returns the number of roles owned by an organization
func (r *RoleRepository) CountByOrganizationID(orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Role{}).Where("organization_id = ?", orgID).Count(&count).Error
	return count, err
}

// Delete deletes a role
func (r *RoleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Role{}, "id = ?", id).Error
}

// DeleteByOrganization removes every role owned by an organization
func (r *RoleRepository) DeleteByOrganization(orgID uuid.UUID) error {
	return r.db.Delete(&models.Role{}, "organization_id = ?", orgID).Error
}
