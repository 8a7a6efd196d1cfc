package handlers

import (
	"net/http"
	"testing"

	"organization-service-backend/internal/database/models"
	apperrors "organization-service-backend/internal/errors"
	"organization-service-backend/internal/mocks"
	"organization-service-backend/internal/service"
	"organization-service-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// RoleHandlerTestSuite defines the test suite for RoleHandler
type RoleHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockRoleServiceInterface
	handler     *RoleHandler
	httpSuite   *testutils.HTTPTestSuite
	principalID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *RoleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockRoleServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewRoleHandler(suite.mockService)
	suite.principalID = uuid.New()

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(authAs(suite.principalID))

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("/:id/roles", suite.handler.CreateRole)
		orgs.DELETE("/:id/roles/:roleId", suite.handler.DeleteRole)
		orgs.POST("/:id/roles/:roleId/assignments", suite.handler.AssignRole)
		orgs.DELETE("/:id/roles/:roleId/assignments/:principalId", suite.handler.RevokeAssignment)
	}
	roles := v1.Group("/roles")
	{
		roles.GET("", suite.handler.ListMyRoles)
		roles.GET("/:roleId/permissions", suite.handler.GetRolePermissions)
	}
}

// TearDownTest cleans up after each test
func (suite *RoleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func roleResponse(orgID uuid.UUID, name string) *service.RoleResponse {
	return &service.RoleResponse{
		ID:             uuid.New(),
		OrganizationID: orgID,
		Name:           name,
		Description:    "custom role",
		Permissions:    []models.Permission{models.PermissionReadOwn, models.PermissionWriteOwn},
		CreatedAt:      "2026-01-15T10:00:00Z",
		UpdatedAt:      "2026-01-15T10:00:00Z",
	}
}

// TestCreateRole tests creating a custom role
func (suite *RoleHandlerTestSuite) TestCreateRole() {
	orgID := uuid.New()
	expectedResponse := roleResponse(orgID, "auditor")
	requestBody := map[string]interface{}{
		"name":        "auditor",
		"permissions": []string{"read:own", "write:own"},
	}

	suite.mockService.EXPECT().
		Create(orgID, gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, req *service.CreateRoleRequest) (*service.RoleResponse, error) {
			assert.Equal(suite.T(), "auditor", req.Name)
			assert.Equal(suite.T(), []models.Permission{models.PermissionReadOwn, models.PermissionWriteOwn}, req.Permissions)
			return expectedResponse, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+orgID.String()+"/roles", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.RoleResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "auditor", response.Name)
	assert.Equal(suite.T(), orgID, response.OrganizationID)
}

// TestCreateRoleInvalidOrganizationID tests creating a role under a malformed organization id
func (suite *RoleHandlerTestSuite) TestCreateRoleInvalidOrganizationID() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/nope/roles",
		map[string]interface{}{"name": "auditor"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestCreateRoleUnknownPermission tests rejecting a permission outside the catalog
func (suite *RoleHandlerTestSuite) TestCreateRoleUnknownPermission() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Create(orgID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("permissions", "unknown permission: fly")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+orgID.String()+"/roles",
		map[string]interface{}{"name": "auditor", "permissions": []string{"fly"}})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateRoleDuplicateName tests that a duplicate role name conflicts
func (suite *RoleHandlerTestSuite) TestCreateRoleDuplicateName() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Create(orgID, gomock.Any()).
		Return(nil, apperrors.NewAlreadyExistsError("role", "organization")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations/"+orgID.String()+"/roles",
		map[string]interface{}{"name": "admin"})

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestDeleteRole tests deleting a role
func (suite *RoleHandlerTestSuite) TestDeleteRole() {
	orgID := uuid.New()
	roleID := uuid.New()

	suite.mockService.EXPECT().
		Delete(orgID, roleID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		"/api/v1/organizations/"+orgID.String()+"/roles/"+roleID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestDeleteRoleNotFound tests deleting a role outside the organization
func (suite *RoleHandlerTestSuite) TestDeleteRoleNotFound() {
	orgID := uuid.New()
	roleID := uuid.New()

	suite.mockService.EXPECT().
		Delete(orgID, roleID).
		Return(apperrors.ErrRoleNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		"/api/v1/organizations/"+orgID.String()+"/roles/"+roleID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteRoleInvalidID tests deleting with a malformed role id
func (suite *RoleHandlerTestSuite) TestDeleteRoleInvalidID() {
	recorder := suite.httpSuite.MakeRequest("DELETE",
		"/api/v1/organizations/"+uuid.NewString()+"/roles/nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid role ID")
}

// TestAssignRole tests assigning a role to a principal
func (suite *RoleHandlerTestSuite) TestAssignRole() {
	orgID := uuid.New()
	roleID := uuid.New()
	toID := uuid.New()

	suite.mockService.EXPECT().
		Assign(toID, orgID, roleID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST",
		"/api/v1/organizations/"+orgID.String()+"/roles/"+roleID.String()+"/assignments",
		map[string]interface{}{"to_id": toID})

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestAssignRoleNotInOrganization tests assigning a role that lives in another organization
func (suite *RoleHandlerTestSuite) TestAssignRoleNotInOrganization() {
	orgID := uuid.New()
	roleID := uuid.New()
	toID := uuid.New()

	suite.mockService.EXPECT().
		Assign(toID, orgID, roleID).
		Return(apperrors.ErrRoleNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST",
		"/api/v1/organizations/"+orgID.String()+"/roles/"+roleID.String()+"/assignments",
		map[string]interface{}{"to_id": toID})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestAssignRoleMissingTarget tests assigning without a target principal
func (suite *RoleHandlerTestSuite) TestAssignRoleMissingTarget() {
	recorder := suite.httpSuite.MakeRequest("POST",
		"/api/v1/organizations/"+uuid.NewString()+"/roles/"+uuid.NewString()+"/assignments",
		map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestRevokeAssignment tests revoking a role assignment
func (suite *RoleHandlerTestSuite) TestRevokeAssignment() {
	roleID := uuid.New()
	principalID := uuid.New()

	suite.mockService.EXPECT().
		Revoke(principalID, roleID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE",
		"/api/v1/organizations/"+uuid.NewString()+"/roles/"+roleID.String()+"/assignments/"+principalID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestRevokeAssignmentInvalidPrincipalID tests revoking with a malformed principal id
func (suite *RoleHandlerTestSuite) TestRevokeAssignmentInvalidPrincipalID() {
	recorder := suite.httpSuite.MakeRequest("DELETE",
		"/api/v1/organizations/"+uuid.NewString()+"/roles/"+uuid.NewString()+"/assignments/nope", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid principal ID")
}

// TestListMyRoles tests listing the caller's roles across organizations
func (suite *RoleHandlerTestSuite) TestListMyRoles() {
	expected := []service.RoleResponse{
		*roleResponse(uuid.New(), "admin"),
		*roleResponse(uuid.New(), "user"),
	}

	suite.mockService.EXPECT().
		ListRolesFor(suite.principalID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/roles", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.RoleResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestListMyRolesIntegrityFailure tests surfacing a dangling assignment
func (suite *RoleHandlerTestSuite) TestListMyRolesIntegrityFailure() {
	suite.mockService.EXPECT().
		ListRolesFor(suite.principalID).
		Return(nil, apperrors.NewIntegrityError("assignment references a missing role")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/roles", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

// TestGetRolePermissions tests reading a role's permission set
func (suite *RoleHandlerTestSuite) TestGetRolePermissions() {
	roleID := uuid.New()

	suite.mockService.EXPECT().
		GetPermissions(roleID).
		Return([]models.Permission{models.PermissionAdminister}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/roles/"+roleID.String()+"/permissions", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string][]models.Permission
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), []models.Permission{models.PermissionAdminister}, response["permissions"])
}

// TestGetRolePermissionsNotFound tests reading permissions of a missing role
func (suite *RoleHandlerTestSuite) TestGetRolePermissionsNotFound() {
	roleID := uuid.New()

	suite.mockService.EXPECT().
		GetPermissions(roleID).
		Return(nil, apperrors.ErrRoleNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/roles/"+roleID.String()+"/permissions", nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestRoleHandlerTestSuite runs the test suite
func TestRoleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(RoleHandlerTestSuite))
}
