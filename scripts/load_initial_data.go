package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"organization-service-backend/internal/config"
	"organization-service-backend/internal/database"
	"organization-service-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the seed file schema
type OrganizationData struct {
	Name        string           `yaml:"name"`
	Description string           `yaml:"description"`
	OwnerID     string           `yaml:"owner_id"`
	Members     []string         `yaml:"members,omitempty"`
	Roles       []RoleData       `yaml:"roles,omitempty"`
	Assignments []AssignmentData `yaml:"assignments,omitempty"`
}

type RoleData struct {
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Permissions []string `yaml:"permissions"`
}

type AssignmentData struct {
	Role string `yaml:"role"`
	ToID string `yaml:"to_id"`
}

type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
	log.Println("ℹ️  Rosters are not pushed by this loader; call POST /api/v1/roster/replay per owner to sync the authorization service.")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	organizations, err := loadOrganizations(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load organizations: %w", err)
	}

	orgCreated := 0
	for _, orgData := range organizations {
		org, created, err := createOrganization(db, orgData)
		if err != nil {
			return fmt.Errorf("failed to create organization %s: %w", orgData.Name, err)
		}
		if created {
			orgCreated++
		}

		if err := seedOrganization(db, org, orgData); err != nil {
			return fmt.Errorf("failed to seed organization %s: %w", orgData.Name, err)
		}
	}
	log.Printf("📋 Organizations: %d created, %d total", orgCreated, len(organizations))

	return nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

func createOrganization(db *gorm.DB, orgData OrganizationData) (*models.Organization, bool, error) {
	ownerID, err := uuid.Parse(orgData.OwnerID)
	if err != nil {
		return nil, false, fmt.Errorf("invalid owner_id %q: %w", orgData.OwnerID, err)
	}

	var org models.Organization
	if err := db.Where("name = ? AND owner_id = ?", orgData.Name, ownerID).First(&org).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			org = models.Organization{
				Name:        orgData.Name,
				Description: orgData.Description,
				OwnerID:     ownerID,
			}

			if err := db.Create(&org).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create organization: %w", err)
			}
			return &org, true, nil
		}
		return nil, false, fmt.Errorf("failed to query organization: %w", err)
	}

	return &org, false, nil
}

// seedOrganization provisions what the create operation would have: the
// owner's membership, the default role set and the owner's admin assignment,
// plus the extra members, roles and assignments declared in the seed file.
func seedOrganization(db *gorm.DB, org *models.Organization, orgData OrganizationData) error {
	members := append([]string{org.OwnerID.String()}, orgData.Members...)
	for _, member := range members {
		memberID, err := uuid.Parse(member)
		if err != nil {
			return fmt.Errorf("invalid member id %q: %w", member, err)
		}
		if _, err := createMembership(db, org, memberID); err != nil {
			return err
		}
	}

	roleMap, err := createDefaultRoles(db, org)
	if err != nil {
		return err
	}

	for _, roleData := range orgData.Roles {
		role, err := createRole(db, org, roleData)
		if err != nil {
			return err
		}
		roleMap[roleData.Name] = role
	}

	assignments := append([]AssignmentData{{Role: string(models.DefaultRoleAdmin), ToID: org.OwnerID.String()}}, orgData.Assignments...)
	for _, assignmentData := range assignments {
		if err := createAssignment(db, org, assignmentData, roleMap); err != nil {
			return err
		}
	}

	return nil
}

func createMembership(db *gorm.DB, org *models.Organization, memberID uuid.UUID) (*models.Membership, error) {
	var membership models.Membership
	err := db.Where("organization_id = ? AND member_id = ?", org.ID, memberID).First(&membership).Error
	if err == nil {
		return &membership, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to query membership: %w", err)
	}

	membership = models.Membership{
		OrganizationID: org.ID,
		MemberID:       memberID,
		OwnerID:        org.OwnerID,
	}
	if err := db.Create(&membership).Error; err != nil {
		return nil, fmt.Errorf("failed to create membership: %w", err)
	}
	return &membership, nil
}

func createDefaultRoles(db *gorm.DB, org *models.Organization) (map[string]*models.Role, error) {
	defaults := []struct {
		name        models.DefaultRoleName
		description string
		permissions []models.Permission
	}{
		{models.DefaultRoleAdmin, "Admin role", models.AllPermissions()},
		{models.DefaultRoleManager, "Manager role", models.ManagerPermissions()},
		{models.DefaultRoleUser, "User role", models.OwnScopePermissions()},
	}

	roleMap := make(map[string]*models.Role)
	for _, d := range defaults {
		permissions := make([]string, 0, len(d.permissions))
		for _, p := range d.permissions {
			permissions = append(permissions, string(p))
		}

		role, err := createRole(db, org, RoleData{
			Name:        string(d.name),
			Description: d.description,
			Permissions: permissions,
		})
		if err != nil {
			return nil, err
		}
		roleMap[string(d.name)] = role
	}
	return roleMap, nil
}

func createRole(db *gorm.DB, org *models.Organization, roleData RoleData) (*models.Role, error) {
	var role models.Role
	err := db.Where("organization_id = ? AND name = ?", org.ID, roleData.Name).First(&role).Error
	if err == nil {
		return &role, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("failed to query role %s: %w", roleData.Name, err)
	}

	permissions := make(models.PermissionList, 0, len(roleData.Permissions))
	for _, p := range roleData.Permissions {
		permissions = append(permissions, models.Permission(p))
	}

	role = models.Role{
		OrganizationID: org.ID,
		Name:           roleData.Name,
		Description:    roleData.Description,
		Permissions:    permissions,
	}
	if err := db.Create(&role).Error; err != nil {
		return nil, fmt.Errorf("failed to create role %s: %w", roleData.Name, err)
	}
	return &role, nil
}

func createAssignment(db *gorm.DB, org *models.Organization, assignmentData AssignmentData, roleMap map[string]*models.Role) error {
	role := roleMap[assignmentData.Role]
	if role == nil {
		return fmt.Errorf("role %s not found for assignment to %s", assignmentData.Role, assignmentData.ToID)
	}

	toID, err := uuid.Parse(assignmentData.ToID)
	if err != nil {
		return fmt.Errorf("invalid assignment to_id %q: %w", assignmentData.ToID, err)
	}

	var assignment models.RoleAssignment
	err = db.Where("to_id = ? AND organization_id = ? AND role_id = ?", toID, org.ID, role.ID).First(&assignment).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to query assignment: %w", err)
	}

	assignment = models.RoleAssignment{
		ToID:           toID,
		OrganizationID: org.ID,
		RoleID:         role.ID,
	}
	if err := db.Create(&assignment).Error; err != nil {
		return fmt.Errorf("failed to create assignment: %w", err)
	}
	return nil
}
