package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found or is not
// visible to the caller. Authorization-scoped lookups return this instead of
// a forbidden error so that record existence is never leaked.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in organization"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents a missing, expired or invalid credential
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents a valid credential with insufficient scope
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// ReplicationError represents a failed roster push to the authorization
// service. Local state is already committed when this is returned; the
// external mirror may be stale until the roster is replayed.
type ReplicationError struct {
	StatusCode int
	Message    string
}

func (e *ReplicationError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("roster replication failed: %s (status %d)", e.Message, e.StatusCode)
	}
	return fmt.Sprintf("roster replication failed: %s", e.Message)
}

// IntegrityError represents a referential-integrity violation detected by the
// application, e.g. a role assignment pointing at a role that no longer exists.
type IntegrityError struct {
	Message string
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("integrity violation: %s", e.Message)
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound   = &NotFoundError{Entity: "organization"}
	ErrMembershipNotFound     = &NotFoundError{Entity: "membership"}
	ErrRoleNotFound           = &NotFoundError{Entity: "role"}
	ErrRoleAssignmentNotFound = &NotFoundError{Entity: "role assignment"}
)

// Already Exists Errors
var (
	ErrMembershipExists     = &AlreadyExistsError{Entity: "membership", Context: "for this organization and member"}
	ErrRoleExists           = &AlreadyExistsError{Entity: "role", Context: "with this name in the organization"}
	ErrRoleAssignmentExists = &AlreadyExistsError{Entity: "role assignment", Context: "for this principal, organization and role"}
)

// Authentication Errors
var (
	ErrMissingAuthHeader = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken      = &AuthenticationError{Message: "invalid token"}
	ErrExpiredToken      = &AuthenticationError{Message: "token has expired"}
)

// Authorization Errors
var (
	ErrInsufficientScope = &AuthorizationError{Message: "unauthorized access or insufficient scope"}
)

// Configuration Errors
var (
	ErrAuthzServiceURLMissing = &ConfigurationError{Message: "AUTHZ_SERVICE_URL is not configured"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// IsReplication checks if an error is a ReplicationError
func IsReplication(err error) bool {
	var replErr *ReplicationError
	return errors.As(err, &replErr)
}

// IsIntegrity checks if an error is an IntegrityError
func IsIntegrity(err error) bool {
	var integrityErr *IntegrityError
	return errors.As(err, &integrityErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewReplicationError creates a new ReplicationError
func NewReplicationError(statusCode int, message string) error {
	return &ReplicationError{StatusCode: statusCode, Message: message}
}

// NewIntegrityError creates a new IntegrityError
func NewIntegrityError(message string) error {
	return &IntegrityError{Message: message}
}
