package handlers

import (
	"net/http"
	"testing"

	"organization-service-backend/internal/auth"
	apperrors "organization-service-backend/internal/errors"
	"organization-service-backend/internal/mocks"
	"organization-service-backend/internal/service"
	"organization-service-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testBearerToken = "test-bearer-token"

// authAs simulates the auth middleware for a fixed principal
func authAs(principalID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(auth.ContextSubjectKey, principalID.String())
		c.Set(auth.ContextTokenKey, testBearerToken)
		c.Next()
	}
}

// OrganizationHandlerTestSuite defines the test suite for OrganizationHandler
type OrganizationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockOrganizationServiceInterface
	handler     *OrganizationHandler
	httpSuite   *testutils.HTTPTestSuite
	principalID uuid.UUID
}

// SetupTest sets up the test suite
func (suite *OrganizationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockOrganizationServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = NewOrganizationHandler(suite.mockService)
	suite.principalID = uuid.New()

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.httpSuite.Router.Use(authAs(suite.principalID))

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	orgs := v1.Group("/organizations")
	{
		orgs.POST("", suite.handler.CreateOrganization)
		orgs.GET("", suite.handler.ListOrganizations)
		orgs.GET("/:id", suite.handler.GetOrganization)
		orgs.PUT("/:id", suite.handler.UpdateOrganization)
		orgs.DELETE("/:id", suite.handler.DeleteOrganization)
	}
	v1.POST("/roster/replay", suite.handler.ReplayRoster)
}

// TearDownTest cleans up after each test
func (suite *OrganizationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *OrganizationHandlerTestSuite) orgResponse() *service.OrganizationResponse {
	return &service.OrganizationResponse{
		ID:          uuid.New(),
		Name:        "acme",
		Description: "Acme Corp",
		OwnerID:     suite.principalID,
		CreatedAt:   "2026-01-15T10:00:00Z",
		UpdatedAt:   "2026-01-15T10:00:00Z",
	}
}

// TestCreateOrganization tests creating an organization
func (suite *OrganizationHandlerTestSuite) TestCreateOrganization() {
	expectedResponse := suite.orgResponse()
	requestBody := map[string]interface{}{
		"name":        "acme",
		"description": "Acme Corp",
	}

	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.principalID, testBearerToken, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, _ string, req *service.CreateOrganizationRequest) (*service.OrganizationResponse, error) {
			assert.Equal(suite.T(), "acme", req.Name)
			return expectedResponse, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.ID, response.ID)
	assert.Equal(suite.T(), suite.principalID, response.OwnerID)
}

// TestCreateOrganizationInvalidBody tests creating an organization with a broken body
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationInvalidBody() {
	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateOrganizationValidationFailure tests rejection of an invalid payload
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationValidationFailure() {
	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.principalID, testBearerToken, gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "name is required")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{"name": ""})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateOrganizationReplicationFailure tests that a failed roster push
// still surfaces the committed organization's identifier
func (suite *OrganizationHandlerTestSuite) TestCreateOrganizationReplicationFailure() {
	created := suite.orgResponse()

	suite.mockService.EXPECT().
		Create(gomock.Any(), suite.principalID, testBearerToken, gomock.Any()).
		Return(created, apperrors.NewReplicationError(http.StatusBadGateway, "upstream unavailable")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/organizations", map[string]interface{}{"name": "acme"})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), created.ID.String(), response["organization_id"])
	assert.NotEmpty(suite.T(), response["error"])
}

// TestGetOrganization tests retrieving an organization
func (suite *OrganizationHandlerTestSuite) TestGetOrganization() {
	expectedResponse := suite.orgResponse()

	suite.mockService.EXPECT().
		Get(suite.principalID, expectedResponse.ID).
		Return(expectedResponse, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+expectedResponse.ID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), expectedResponse.ID, response.ID)
	assert.Equal(suite.T(), expectedResponse.Name, response.Name)
}

// TestGetOrganizationInvalidID tests retrieving with a malformed identifier
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "Invalid organization ID")
}

// TestGetOrganizationNotFound tests retrieving an organization the caller cannot see
func (suite *OrganizationHandlerTestSuite) TestGetOrganizationNotFound() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Get(suite.principalID, orgID).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestListOrganizations tests listing the caller's organizations
func (suite *OrganizationHandlerTestSuite) TestListOrganizations() {
	expected := []service.OrganizationResponse{*suite.orgResponse(), *suite.orgResponse()}

	suite.mockService.EXPECT().
		GetAll(suite.principalID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 2)
}

// TestListOrganizationsEmpty tests listing when the caller has no memberships
func (suite *OrganizationHandlerTestSuite) TestListOrganizationsEmpty() {
	suite.mockService.EXPECT().
		GetAll(suite.principalID).
		Return([]service.OrganizationResponse{}, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
	assert.JSONEq(suite.T(), "[]", recorder.Body.String())
}

// TestUpdateOrganization tests updating an organization
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganization() {
	expectedResponse := suite.orgResponse()
	expectedResponse.Name = "renamed"

	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.principalID, testBearerToken, expectedResponse.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _ uuid.UUID, _ string, _ uuid.UUID, req *service.UpdateOrganizationRequest) (*service.OrganizationResponse, error) {
			assert.NotNil(suite.T(), req.Name)
			assert.Equal(suite.T(), "renamed", *req.Name)
			return expectedResponse, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+expectedResponse.ID.String(),
		map[string]interface{}{"name": "renamed"})

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.OrganizationResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), "renamed", response.Name)
}

// TestUpdateOrganizationNotOwner tests that a non-owner update reads as not found
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationNotOwner() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.principalID, testBearerToken, orgID, gomock.Any()).
		Return(nil, apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+orgID.String(),
		map[string]interface{}{"name": "renamed"})

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestUpdateOrganizationNoFields tests rejecting an update with nothing to change
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationNoFields() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.principalID, testBearerToken, orgID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("request", "no updatable fields provided")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+orgID.String(), map[string]interface{}{})

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestUpdateOrganizationReplicationFailure tests that a failed roster push
// after a committed update still surfaces the organization's identifier
func (suite *OrganizationHandlerTestSuite) TestUpdateOrganizationReplicationFailure() {
	updated := suite.orgResponse()

	suite.mockService.EXPECT().
		Update(gomock.Any(), suite.principalID, testBearerToken, updated.ID, gomock.Any()).
		Return(updated, apperrors.NewReplicationError(0, "connection refused")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/organizations/"+updated.ID.String(),
		map[string]interface{}{"name": "renamed"})

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), updated.ID.String(), response["organization_id"])
}

// TestDeleteOrganization tests deleting an organization
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganization() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Delete(gomock.Any(), suite.principalID, testBearerToken, orgID).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
	assert.Empty(suite.T(), recorder.Body.String())
}

// TestDeleteOrganizationNotOwner tests that a non-owner delete reads as not found
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganizationNotOwner() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Delete(gomock.Any(), suite.principalID, testBearerToken, orgID).
		Return(apperrors.ErrOrganizationNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestDeleteOrganizationReplicationFailure tests a failed roster push after a
// committed delete
func (suite *OrganizationHandlerTestSuite) TestDeleteOrganizationReplicationFailure() {
	orgID := uuid.New()

	suite.mockService.EXPECT().
		Delete(gomock.Any(), suite.principalID, testBearerToken, orgID).
		Return(apperrors.NewReplicationError(http.StatusUnauthorized, "credential rejected")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/organizations/"+orgID.String(), nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

// TestReplayRoster tests the roster replay endpoint
func (suite *OrganizationHandlerTestSuite) TestReplayRoster() {
	suite.mockService.EXPECT().
		ReplayRoster(gomock.Any(), suite.principalID, testBearerToken).
		Return(nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/roster/replay", nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestReplayRosterFailure tests a roster replay that fails upstream
func (suite *OrganizationHandlerTestSuite) TestReplayRosterFailure() {
	suite.mockService.EXPECT().
		ReplayRoster(gomock.Any(), suite.principalID, testBearerToken).
		Return(apperrors.NewReplicationError(http.StatusBadGateway, "upstream unavailable")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/roster/replay", nil)

	assert.Equal(suite.T(), http.StatusInternalServerError, recorder.Code)
}

// TestMissingPrincipal tests that handlers reject requests without an authenticated principal
func TestMissingPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewOrganizationHandler(mocks.NewMockOrganizationServiceInterface(ctrl))

	httpSuite := testutils.SetupHTTPTest()
	httpSuite.Router.GET("/api/v1/organizations", handler.ListOrganizations)

	recorder := httpSuite.MakeRequest("GET", "/api/v1/organizations", nil)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

// TestOrganizationHandlerTestSuite runs the test suite
func TestOrganizationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationHandlerTestSuite))
}
