package service_test

import (
	"testing"

	"organization-service-backend/internal/database/models"
	apperrors "organization-service-backend/internal/errors"
	"organization-service-backend/internal/mocks"
	"organization-service-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RoleServiceTestSuite defines the test suite for RoleService
type RoleServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockRoleRepo       *mocks.MockRoleRepositoryInterface
	mockAssignmentRepo *mocks.MockRoleAssignmentRepositoryInterface
	roleService        *service.RoleService
	validator          *validator.Validate
}

// SetupTest sets up the test suite
func (suite *RoleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRoleRepo = mocks.NewMockRoleRepositoryInterface(suite.ctrl)
	suite.mockAssignmentRepo = mocks.NewMockRoleAssignmentRepositoryInterface(suite.ctrl)
	suite.validator = validator.New()

	suite.roleService = service.NewRoleService(suite.mockRoleRepo, suite.mockAssignmentRepo, suite.validator)
}

// TearDownTest cleans up after each test
func (suite *RoleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func storedDefaultRoles(orgID uuid.UUID) []models.Role {
	return []models.Role{
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
			Name:           string(models.DefaultRoleAdmin),
			Permissions:    models.AllPermissions(),
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
			Name:           string(models.DefaultRoleManager),
			Permissions:    models.ManagerPermissions(),
		},
		{
			BaseModel:      models.BaseModel{ID: uuid.New()},
			OrganizationID: orgID,
			Name:           string(models.DefaultRoleUser),
			Permissions:    models.OwnScopePermissions(),
		},
	}
}

// TestProvisionDefaults tests provisioning the three default roles
func (suite *RoleServiceTestSuite) TestProvisionDefaults() {
	orgID := uuid.New()
	stored := storedDefaultRoles(orgID)

	suite.mockRoleRepo.EXPECT().
		CreateDefaultsIfAbsent(gomock.Any()).
		DoAndReturn(func(roles []*models.Role) (int64, error) {
			assert.Len(suite.T(), roles, 3)
			for _, role := range roles {
				assert.Equal(suite.T(), orgID, role.OrganizationID)
			}
			return 3, nil
		}).
		Times(1)
	suite.mockRoleRepo.EXPECT().
		GetByOrganizationID(orgID).
		Return(stored, nil).
		Times(1)

	defaults, err := suite.roleService.ProvisionDefaults(orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), defaults, 3)
	assert.Equal(suite.T(), string(models.DefaultRoleAdmin), defaults[0].Name)
	assert.Equal(suite.T(), string(models.DefaultRoleManager), defaults[1].Name)
	assert.Equal(suite.T(), string(models.DefaultRoleUser), defaults[2].Name)
}

// TestProvisionDefaultsIdempotent tests that repeat provisioning returns the
// same role identifiers without inserting anything
func (suite *RoleServiceTestSuite) TestProvisionDefaultsIdempotent() {
	orgID := uuid.New()
	stored := storedDefaultRoles(orgID)

	// Second call inserts nothing, CreateDefaultsIfAbsent reports zero rows
	suite.mockRoleRepo.EXPECT().
		CreateDefaultsIfAbsent(gomock.Any()).
		Return(int64(0), nil).
		Times(1)
	suite.mockRoleRepo.EXPECT().
		GetByOrganizationID(orgID).
		Return(stored, nil).
		Times(1)

	defaults, err := suite.roleService.ProvisionDefaults(orgID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), defaults, 3)
	assert.Equal(suite.T(), stored[0].ID, defaults[0].ID)
	assert.Equal(suite.T(), stored[1].ID, defaults[1].ID)
	assert.Equal(suite.T(), stored[2].ID, defaults[2].ID)
}

// TestProvisionDefaultsMissingRole tests that a missing default role after
// provisioning surfaces as an integrity error
func (suite *RoleServiceTestSuite) TestProvisionDefaultsMissingRole() {
	orgID := uuid.New()
	stored := storedDefaultRoles(orgID)[:2]

	suite.mockRoleRepo.EXPECT().CreateDefaultsIfAbsent(gomock.Any()).Return(int64(2), nil).Times(1)
	suite.mockRoleRepo.EXPECT().GetByOrganizationID(orgID).Return(stored, nil).Times(1)

	defaults, err := suite.roleService.ProvisionDefaults(orgID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), defaults)
	assert.True(suite.T(), apperrors.IsIntegrity(err))
}

// TestCreateRole tests creating a custom role
func (suite *RoleServiceTestSuite) TestCreateRole() {
	orgID := uuid.New()
	req := &service.CreateRoleRequest{
		Name:        "auditor",
		Description: "Read everything",
		Permissions: []models.Permission{models.PermissionReadAll},
	}

	suite.mockRoleRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(role *models.Role) error {
			role.ID = uuid.New()
			assert.Equal(suite.T(), orgID, role.OrganizationID)
			assert.Equal(suite.T(), req.Name, role.Name)
			return nil
		}).
		Times(1)

	response, err := suite.roleService.Create(orgID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), req.Name, response.Name)
	assert.Equal(suite.T(), []models.Permission{models.PermissionReadAll}, response.Permissions)
}

// TestCreateRoleDuplicateName tests that a name collision surfaces as a conflict
func (suite *RoleServiceTestSuite) TestCreateRoleDuplicateName() {
	req := &service.CreateRoleRequest{
		Name:        "auditor",
		Permissions: []models.Permission{models.PermissionReadAll},
	}

	suite.mockRoleRepo.EXPECT().
		Create(gomock.Any()).
		Return(gorm.ErrDuplicatedKey).
		Times(1)

	response, err := suite.roleService.Create(uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.ErrorIs(suite.T(), err, apperrors.ErrRoleExists)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateRoleUnknownPermission tests rejecting a permission outside the catalog
func (suite *RoleServiceTestSuite) TestCreateRoleUnknownPermission() {
	req := &service.CreateRoleRequest{
		Name:        "auditor",
		Permissions: []models.Permission{models.PermissionReadAll, models.Permission("fly")},
	}

	response, err := suite.roleService.Create(uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
	assert.Contains(suite.T(), err.Error(), "unknown permission: fly")
}

// TestCreateRoleValidationError tests creating a role with an empty name
func (suite *RoleServiceTestSuite) TestCreateRoleValidationError() {
	req := &service.CreateRoleRequest{Name: ""}

	response, err := suite.roleService.Create(uuid.New(), req)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), response)
	assert.Contains(suite.T(), err.Error(), "validation failed")
}

// TestDeleteRole tests that role deletion cascades its assignments
func (suite *RoleServiceTestSuite) TestDeleteRole() {
	orgID := uuid.New()
	role := &models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID, Name: "auditor"}

	suite.mockRoleRepo.EXPECT().GetByOrganizationAndID(orgID, role.ID).Return(role, nil).Times(1)
	suite.mockAssignmentRepo.EXPECT().DeleteByRole(role.ID).Return(nil).Times(1)
	suite.mockRoleRepo.EXPECT().Delete(role.ID).Return(nil).Times(1)

	err := suite.roleService.Delete(orgID, role.ID)

	assert.NoError(suite.T(), err)
}

// TestDeleteRoleNotFound tests deleting a role outside the organization
func (suite *RoleServiceTestSuite) TestDeleteRoleNotFound() {
	orgID := uuid.New()
	roleID := uuid.New()

	suite.mockRoleRepo.EXPECT().
		GetByOrganizationAndID(orgID, roleID).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.roleService.Delete(orgID, roleID)

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestAssignRole tests assigning a role to a principal
func (suite *RoleServiceTestSuite) TestAssignRole() {
	toID := uuid.New()
	orgID := uuid.New()
	role := &models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID}

	suite.mockRoleRepo.EXPECT().GetByOrganizationAndID(orgID, role.ID).Return(role, nil).Times(1)
	suite.mockAssignmentRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(a *models.RoleAssignment) (bool, error) {
			assert.Equal(suite.T(), toID, a.ToID)
			assert.Equal(suite.T(), orgID, a.OrganizationID)
			assert.Equal(suite.T(), role.ID, a.RoleID)
			return true, nil
		}).
		Times(1)

	err := suite.roleService.Assign(toID, orgID, role.ID)

	assert.NoError(suite.T(), err)
}

// TestAssignRoleIdempotent tests that re-assigning an existing triple is a no-op
func (suite *RoleServiceTestSuite) TestAssignRoleIdempotent() {
	toID := uuid.New()
	orgID := uuid.New()
	role := &models.Role{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: orgID}

	suite.mockRoleRepo.EXPECT().GetByOrganizationAndID(orgID, role.ID).Return(role, nil).Times(1)
	suite.mockAssignmentRepo.EXPECT().Upsert(gomock.Any()).Return(false, nil).Times(1)

	err := suite.roleService.Assign(toID, orgID, role.ID)

	assert.NoError(suite.T(), err)
}

// TestAssignRoleWrongOrganization tests assigning a role that does not belong
// to the organization
func (suite *RoleServiceTestSuite) TestAssignRoleWrongOrganization() {
	suite.mockRoleRepo.EXPECT().
		GetByOrganizationAndID(gomock.Any(), gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	err := suite.roleService.Assign(uuid.New(), uuid.New(), uuid.New())

	assert.Error(suite.T(), err)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestRevokeRole tests revoking an assignment
func (suite *RoleServiceTestSuite) TestRevokeRole() {
	toID := uuid.New()
	roleID := uuid.New()

	suite.mockAssignmentRepo.EXPECT().
		DeleteByPrincipalAndRole(toID, roleID).
		Return(int64(1), nil).
		Times(1)

	err := suite.roleService.Revoke(toID, roleID)

	assert.NoError(suite.T(), err)
}

// TestRevokeAbsentAssignment tests that revoking an absent assignment succeeds
func (suite *RoleServiceTestSuite) TestRevokeAbsentAssignment() {
	suite.mockAssignmentRepo.EXPECT().
		DeleteByPrincipalAndRole(gomock.Any(), gomock.Any()).
		Return(int64(0), nil).
		Times(1)

	err := suite.roleService.Revoke(uuid.New(), uuid.New())

	assert.NoError(suite.T(), err)
}

// TestHasPermission tests the exact-triple permission check
func (suite *RoleServiceTestSuite) TestHasPermission() {
	toID := uuid.New()
	orgID := uuid.New()
	role := &models.Role{
		BaseModel:      models.BaseModel{ID: uuid.New()},
		OrganizationID: orgID,
		Permissions:    models.PermissionList{models.PermissionReadOwn, models.PermissionWriteOwn},
	}
	assignment := &models.RoleAssignment{ToID: toID, OrganizationID: orgID, RoleID: role.ID}

	suite.mockAssignmentRepo.EXPECT().Get(toID, orgID, role.ID).Return(assignment, nil).Times(2)
	suite.mockRoleRepo.EXPECT().GetByID(role.ID).Return(role, nil).Times(2)

	granted, err := suite.roleService.HasPermission(toID, orgID, role.ID, models.PermissionReadOwn)
	assert.NoError(suite.T(), err)
	assert.True(suite.T(), granted)

	granted, err = suite.roleService.HasPermission(toID, orgID, role.ID, models.PermissionDeleteAll)
	assert.NoError(suite.T(), err)
	assert.False(suite.T(), granted)
}

// TestHasPermissionNoAssignment tests that a missing assignment denies without error
func (suite *RoleServiceTestSuite) TestHasPermissionNoAssignment() {
	suite.mockAssignmentRepo.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, gorm.ErrRecordNotFound).
		Times(1)

	granted, err := suite.roleService.HasPermission(uuid.New(), uuid.New(), uuid.New(), models.PermissionReadOwn)

	assert.NoError(suite.T(), err)
	assert.False(suite.T(), granted)
}

// TestListRolesFor tests resolving a principal's roles across organizations
func (suite *RoleServiceTestSuite) TestListRolesFor() {
	toID := uuid.New()
	roles := []models.Role{
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New(), Name: "admin"},
		{BaseModel: models.BaseModel{ID: uuid.New()}, OrganizationID: uuid.New(), Name: "user"},
	}
	assignments := []models.RoleAssignment{
		{ToID: toID, OrganizationID: roles[0].OrganizationID, RoleID: roles[0].ID},
		{ToID: toID, OrganizationID: roles[1].OrganizationID, RoleID: roles[1].ID},
	}

	suite.mockAssignmentRepo.EXPECT().GetByPrincipal(toID).Return(assignments, nil).Times(1)
	suite.mockRoleRepo.EXPECT().
		GetByIDs([]uuid.UUID{roles[0].ID, roles[1].ID}).
		Return(roles, nil).
		Times(1)

	responses, err := suite.roleService.ListRolesFor(toID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), responses, 2)
}

// TestListRolesForDanglingReference tests that an assignment referencing a
// missing role surfaces as an integrity error
func (suite *RoleServiceTestSuite) TestListRolesForDanglingReference() {
	toID := uuid.New()
	roleID := uuid.New()
	assignments := []models.RoleAssignment{
		{ToID: toID, OrganizationID: uuid.New(), RoleID: roleID},
	}

	suite.mockAssignmentRepo.EXPECT().GetByPrincipal(toID).Return(assignments, nil).Times(1)
	suite.mockRoleRepo.EXPECT().GetByIDs([]uuid.UUID{roleID}).Return([]models.Role{}, nil).Times(1)

	responses, err := suite.roleService.ListRolesFor(toID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), responses)
	assert.True(suite.T(), apperrors.IsIntegrity(err))
}

// TestGetPermissions tests reading a role's permission set
func (suite *RoleServiceTestSuite) TestGetPermissions() {
	role := &models.Role{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		Permissions: models.PermissionList{models.PermissionAdminister},
	}

	suite.mockRoleRepo.EXPECT().GetByID(role.ID).Return(role, nil).Times(1)

	permissions, err := suite.roleService.GetPermissions(role.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []models.Permission{models.PermissionAdminister}, permissions)
}

// TestGetPermissionsNotFound tests reading permissions of a missing role
func (suite *RoleServiceTestSuite) TestGetPermissionsNotFound() {
	roleID := uuid.New()

	suite.mockRoleRepo.EXPECT().GetByID(roleID).Return(nil, gorm.ErrRecordNotFound).Times(1)

	permissions, err := suite.roleService.GetPermissions(roleID)

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), permissions)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestRoleServiceTestSuite runs the test suite
func TestRoleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoleServiceTestSuite))
}
