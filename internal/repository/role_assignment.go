package repository

import (
	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RoleAssignmentRepository handles database operations for role assignments
type RoleAssignmentRepository struct {
	db *gorm.DB
}

// NewRoleAssignmentRepository creates a new role assignment repository
func NewRoleAssignmentRepository(db *gorm.DB) *RoleAssignmentRepository {
	return &RoleAssignmentRepository{db: db}
}

// WithTx returns a copy of the repository bound to the given transaction
func (r *RoleAssignmentRepository) WithTx(tx *gorm.DB) RoleAssignmentRepositoryInterface {
	return &RoleAssignmentRepository{db: tx}
}

// Upsert inserts the assignment unless the (to_id, organization_id, role_id)
// triple already exists. Returns true when a row was written, false when the
// assignment was already present.
func (r *RoleAssignmentRepository) Upsert(assignment *models.RoleAssignment) (bool, error) {
	result := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "to_id"}, {Name: "organization_id"}, {Name: "role_id"}},
		DoNothing: true,
	}).Create(assignment)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Get retrieves the assignment for the exact (principal, organization, role) triple
func (r *RoleAssignmentRepository) Get(toID, orgID, roleID uuid.UUID) (*models.RoleAssignment, error) {
	var assignment models.RoleAssignment
	err := r.db.First(&assignment, "to_id = ? AND organization_id = ? AND role_id = ?", toID, orgID, roleID).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByPrincipal retrieves every assignment held by a principal, across organizations
func (r *RoleAssignmentRepository) GetByPrincipal(toID uuid.UUID) ([]models.RoleAssignment, error) {
	assignments := []models.RoleAssignment{}
	err := r.db.Where("to_id = ?", toID).Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// DeleteByPrincipalAndRole removes the assignment binding a principal to a
// role, if present. Returns the number of rows deleted; zero is not an error.
func (r *RoleAssignmentRepository) DeleteByPrincipalAndRole(toID, roleID uuid.UUID) (int64, error) {
	result := r.db.Where("to_id = ? AND role_id = ?", toID, roleID).
		Delete(&models.RoleAssignment{})
	return result.RowsAffected, result.Error
}

// DeleteByRole removes every assignment referencing a role
func (r *RoleAssignmentRepository) DeleteByRole(roleID uuid.UUID) error {
	return r.db.Delete(&models.RoleAssignment{}, "role_id = ?", roleID).Error
}

// DeleteByOrganization removes every assignment scoped to an organization
func (r *RoleAssignmentRepository) DeleteByOrganization(orgID uuid.UUID) error {
	return r.db.Delete(&models.RoleAssignment{}, "organization_id = ?", orgID).Error
}
