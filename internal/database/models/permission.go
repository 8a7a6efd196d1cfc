package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Permission is a single capability identifier from the fixed catalog.
type Permission string

const (
	PermissionReadOwn   Permission = "read:own"
	PermissionWriteOwn  Permission = "write:own"
	PermissionDeleteOwn Permission = "delete:own"
	PermissionReadOrg   Permission = "read:org"
	PermissionWriteOrg  Permission = "write:org"
	PermissionDeleteOrg Permission = "delete:org"
	PermissionReadAll   Permission = "read:all"
	PermissionWriteAll  Permission = "write:all"
	PermissionDeleteAll Permission = "delete:all"
	PermissionAdminister Permission = "administer"
	// Upstream catalog spells this with a space, not a colon pair.
	PermissionAccessControl Permission = "access control"
)

// AllPermissions returns the full catalog in a stable order.
func AllPermissions() []Permission {
	return []Permission{
		PermissionReadOwn,
		PermissionWriteOwn,
		PermissionDeleteOwn,
		PermissionReadOrg,
		PermissionWriteOrg,
		PermissionDeleteOrg,
		PermissionReadAll,
		PermissionWriteAll,
		PermissionDeleteAll,
		PermissionAdminister,
		PermissionAccessControl,
	}
}

// OwnScopePermissions returns the permissions limited to a principal's own resources.
func OwnScopePermissions() []Permission {
	return []Permission{PermissionReadOwn, PermissionWriteOwn, PermissionDeleteOwn}
}

// ManagerPermissions returns the manager default-role set: own, all and org
// scopes plus access control, without administer.
func ManagerPermissions() []Permission {
	return []Permission{
		PermissionReadOwn, PermissionWriteOwn, PermissionDeleteOwn,
		PermissionReadAll, PermissionWriteAll, PermissionDeleteAll,
		PermissionReadOrg, PermissionWriteOrg, PermissionDeleteOrg,
		PermissionAccessControl,
	}
}

// PermissionList is a set of permissions persisted as a jsonb column.
type PermissionList []Permission

// Value implements driver.Valuer for jsonb storage
func (p PermissionList) Value() (driver.Value, error) {
	if p == nil {
		p = PermissionList{}
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner for jsonb retrieval
func (p *PermissionList) Scan(value interface{}) error {
	if value == nil {
		*p = PermissionList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return fmt.Errorf("unsupported type %T for PermissionList", value)
	}
}

// Contains reports whether the list holds the given permission.
func (p PermissionList) Contains(permission Permission) bool {
	for _, candidate := range p {
		if candidate == permission {
			return true
		}
	}
	return false
}
