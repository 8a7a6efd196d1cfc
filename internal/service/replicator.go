package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"organization-service-backend/internal/config"
	apperrors "organization-service-backend/internal/errors"
	"organization-service-backend/internal/logger"
	"organization-service-backend/internal/repository"

	"github.com/google/uuid"
)

// RosterReplicator pushes a principal's full roster, every organization the
// principal can see and every role it holds, to the external authorization
// service. The push is a single blocking full-replace call; it performs no
// retries, and a failure never undoes already-committed local state. Callers
// that need the mirror repaired replay the push.
type RosterReplicator struct {
	membershipRepo repository.MembershipRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	roleService    RoleServiceInterface
	httpClient     *http.Client
	baseURL        string
	log            *logger.Logger
}

// NewRosterReplicator creates a new roster replicator
func NewRosterReplicator(cfg *config.Config, membershipRepo repository.MembershipRepositoryInterface, orgRepo repository.OrganizationRepositoryInterface, roleService RoleServiceInterface) (*RosterReplicator, error) {
	if cfg.AuthzServiceURL == "" {
		return nil, apperrors.ErrAuthzServiceURLMissing
	}
	base := cfg.AuthzServiceURL
	if !strings.HasPrefix(base, "http://") && !strings.HasPrefix(base, "https://") {
		base = "https://" + base
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("invalid authorization service URL %q: %w", cfg.AuthzServiceURL, err)
	}
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	return &RosterReplicator{
		membershipRepo: membershipRepo,
		orgRepo:        orgRepo,
		roleService:    roleService,
		httpClient:     &http.Client{Timeout: cfg.AuthzTimeout()},
		baseURL:        base,
		log:            logger.New(),
	}, nil
}

// rosterOrganization mirrors the organization shape the authorization service
// expects, with identifiers coerced to their canonical string form.
type rosterOrganization struct {
	ID          string `json:"_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	OwnerID     string `json:"ownerId"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

// rosterRole mirrors the role shape the authorization service expects
type rosterRole struct {
	ID             string   `json:"_id"`
	OrganizationID string   `json:"organizationId"`
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	Permissions    []string `json:"permissions"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// rosterPayload is the full-replace body for the roster endpoint
type rosterPayload struct {
	Organizations []rosterOrganization `json:"organizations"`
	Roles         []rosterRole         `json:"roles"`
}

// Push assembles the principal's current roster and submits it as one
// idempotent replace operation, forwarding the caller's own credential.
// Any response other than 200 is a replication failure.
func (r *RosterReplicator) Push(ctx context.Context, principalID uuid.UUID, bearerToken string) error {
	// By the time Push runs the local mutation is committed, so a roster
	// that cannot be assembled is the same failure mode as a rejected
	// push: the mirror is stale and the caller must replay.
	payload, err := r.buildPayload(principalID)
	if err != nil {
		return apperrors.NewReplicationError(0, fmt.Sprintf("roster assembly failed: %v", err))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode roster payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPut, r.baseURL+"auth/", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create roster request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.httpClient.Do(req)
	if err != nil {
		return apperrors.NewReplicationError(0, err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		r.log.WithFields(map[string]interface{}{
			"principal": principalID.String(),
			"status":    resp.StatusCode,
			"elapsed":   time.Since(start).String(),
		}).Warn("roster push rejected by authorization service")
		return apperrors.NewReplicationError(resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	r.log.WithFields(map[string]interface{}{
		"principal":     principalID.String(),
		"organizations": len(payload.Organizations),
		"roles":         len(payload.Roles),
		"elapsed":       time.Since(start).String(),
	}).Debug("roster push succeeded")
	return nil
}

// buildPayload re-reads the principal's visible organizations and resolvable
// roles from the datastore, so the snapshot reflects the state after the
// local mutation that triggered the push.
func (r *RosterReplicator) buildPayload(principalID uuid.UUID) (*rosterPayload, error) {
	orgIDs, err := r.membershipRepo.GetOrganizationIDsForMember(principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	orgs, err := r.orgRepo.GetByIDs(orgIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to load organizations: %w", err)
	}
	roles, err := r.roleService.ListRolesFor(principalID)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	payload := &rosterPayload{
		Organizations: make([]rosterOrganization, 0, len(orgs)),
		Roles:         make([]rosterRole, 0, len(roles)),
	}
	for _, org := range orgs {
		payload.Organizations = append(payload.Organizations, rosterOrganization{
			ID:          org.ID.String(),
			Name:        org.Name,
			Description: org.Description,
			OwnerID:     org.OwnerID.String(),
			CreatedAt:   org.CreatedAt.Format(time.RFC3339),
			UpdatedAt:   org.UpdatedAt.Format(time.RFC3339),
		})
	}
	for _, role := range roles {
		permissions := make([]string, len(role.Permissions))
		for i, permission := range role.Permissions {
			permissions[i] = string(permission)
		}
		payload.Roles = append(payload.Roles, rosterRole{
			ID:             role.ID.String(),
			OrganizationID: role.OrganizationID.String(),
			Name:           role.Name,
			Description:    role.Description,
			Permissions:    permissions,
			CreatedAt:      role.CreatedAt,
			UpdatedAt:      role.UpdatedAt,
		})
	}
	return payload, nil
}
