package handlers

import (
	"net/http"

	apperrors "organization-service-backend/internal/errors"
	"organization-service-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RoleHandler handles HTTP requests for roles and role assignments
type RoleHandler struct {
	service service.RoleServiceInterface
}

// NewRoleHandler creates a new role handler
func NewRoleHandler(service service.RoleServiceInterface) *RoleHandler {
	return &RoleHandler{service: service}
}

// AssignRoleRequest carries the principal a role is assigned to
type AssignRoleRequest struct {
	ToID uuid.UUID `json:"to_id" binding:"required"`
}

// CreateRole handles POST /api/v1/organizations/:id/roles
// @Summary Create a custom role
// @Description Create a role inside an organization with an explicit permission set
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param role body service.CreateRoleRequest true "Role data"
// @Success 201 {object} service.RoleResponse "Successfully created role"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 409 {object} map[string]interface{} "Role name already exists in the organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/roles [post]
func (h *RoleHandler) CreateRole(c *gin.Context) {
	if _, ok := principalFromContext(c); !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}

	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	role, err := h.service.Create(orgID, &req)
	if err != nil {
		switch {
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create role", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, role)
}

// DeleteRole handles DELETE /api/v1/organizations/:id/roles/:roleId
// @Summary Delete a role
// @Description Delete a role from an organization, cascading its assignments
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param roleId path string true "Role ID (UUID)"
// @Success 204 "Successfully deleted role"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/roles/{roleId} [delete]
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	if _, ok := principalFromContext(c); !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	roleID, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	if err := h.service.Delete(orgID, roleID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete role", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// AssignRole handles POST /api/v1/organizations/:id/roles/:roleId/assignments
// @Summary Assign a role to a principal
// @Description Assign a role inside an organization to a principal; repeating an existing assignment is a no-op
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param roleId path string true "Role ID (UUID)"
// @Param assignment body AssignRoleRequest true "Assignment target"
// @Success 204 "Role assigned"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Role not found in organization"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/roles/{roleId}/assignments [post]
func (h *RoleHandler) AssignRole(c *gin.Context) {
	if _, ok := principalFromContext(c); !ok {
		return
	}

	orgID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid organization ID"})
		return
	}
	roleID, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	var req AssignRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.Assign(req.ToID, orgID, roleID); err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to assign role", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeAssignment handles DELETE /api/v1/organizations/:id/roles/:roleId/assignments/:principalId
// @Summary Revoke a role assignment
// @Description Remove a role assignment from a principal; revoking an absent assignment is a no-op
// @Tags roles
// @Accept json
// @Produce json
// @Param id path string true "Organization ID (UUID)"
// @Param roleId path string true "Role ID (UUID)"
// @Param principalId path string true "Principal ID (UUID)"
// @Success 204 "Assignment revoked"
// @Failure 400 {object} map[string]interface{} "Invalid ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /organizations/{id}/roles/{roleId}/assignments/{principalId} [delete]
func (h *RoleHandler) RevokeAssignment(c *gin.Context) {
	if _, ok := principalFromContext(c); !ok {
		return
	}

	roleID, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}
	principalID, err := uuid.Parse(c.Param("principalId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid principal ID"})
		return
	}

	if err := h.service.Revoke(principalID, roleID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to revoke assignment", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ListMyRoles handles GET /api/v1/roles
// @Summary List the caller's roles
// @Description Get every role assigned to the authenticated principal across organizations
// @Tags roles
// @Accept json
// @Produce json
// @Success 200 {array} service.RoleResponse "Successfully retrieved roles"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles [get]
func (h *RoleHandler) ListMyRoles(c *gin.Context) {
	principalID, ok := principalFromContext(c)
	if !ok {
		return
	}

	roles, err := h.service.ListRolesFor(principalID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get roles", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, roles)
}

// GetRolePermissions handles GET /api/v1/roles/:roleId/permissions
// @Summary Get a role's permissions
// @Description Get the permission set attached to a role
// @Tags roles
// @Accept json
// @Produce json
// @Param roleId path string true "Role ID (UUID)"
// @Success 200 {object} map[string]interface{} "Role permissions"
// @Failure 400 {object} map[string]interface{} "Invalid role ID"
// @Failure 404 {object} map[string]interface{} "Role not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /roles/{roleId}/permissions [get]
func (h *RoleHandler) GetRolePermissions(c *gin.Context) {
	if _, ok := principalFromContext(c); !ok {
		return
	}

	roleID, err := uuid.Parse(c.Param("roleId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role ID"})
		return
	}

	permissions, err := h.service.GetPermissions(roleID)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get permissions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"permissions": permissions})
}
