// Package authz decides what an account may see. Roles are a closed set;
// anything unrecognized is treated as having no elevated access.
package authz

import (
	"strings"

	"github.com/ecodive/backoffice-server-go/internal/model"
)

type Role string

const (
	RoleNone   Role = ""
	RoleAdmin  Role = "Admin"
	RoleViewer Role = "Viewer"
)

// Common allow-lists.
var (
	AdminOnly = []string{string(RoleAdmin)}
	Staff     = []string{string(RoleAdmin), string(RoleViewer)}
)

// ParseRole normalizes a stored or submitted role string. Comparison is
// case-insensitive and surrounding whitespace is ignored.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "viewer":
		return RoleViewer
	default:
		return RoleNone
	}
}

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleViewer
}

func (r Role) String() string {
	if r == RoleNone {
		return "none"
	}
	return string(r)
}

// CanAccess reports whether account holds one of the allowed roles. A nil
// account or an unrecognized role never has access.
func CanAccess(account *model.SanitizedAccount, allowed ...string) bool {
	if account == nil {
		return false
	}
	role := ParseRole(account.Role)
	if !role.Valid() {
		return false
	}
	for _, candidate := range allowed {
		if ParseRole(candidate) == role {
			return true
		}
	}
	return false
}

// IsAdmin is shorthand for CanAccess(account, AdminOnly...).
func IsAdmin(account *model.SanitizedAccount) bool {
	return CanAccess(account, AdminOnly...)
}
