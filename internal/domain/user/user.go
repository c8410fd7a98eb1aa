package user

import (
	"strings"

	"github.com/BruksfildServices01/sales-crm/internal/domain/access"
	"github.com/BruksfildServices01/sales-crm/internal/httperr"
)

const (
	MinNameLength     = 2
	MinPasswordLength = 6

	DefaultRole  = access.RoleAgent
	DefaultScope = access.ScopeOwn
)

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ResolveRole returns the default role for an empty value and rejects
// anything outside the known set.
func ResolveRole(v string) (access.Role, error) {
	if v == "" {
		return DefaultRole, nil
	}
	r := access.Role(strings.ToUpper(v))
	if !r.Valid() {
		return "", httperr.ErrValidation("invalid_request", map[string]string{"role": "oneof"})
	}
	return r, nil
}

func ResolveScope(v string) (access.Scope, error) {
	if v == "" {
		return DefaultScope, nil
	}
	s := access.Scope(strings.ToUpper(v))
	if !s.Valid() {
		return "", httperr.ErrValidation("invalid_request", map[string]string{"lead_scope": "oneof"})
	}
	return s, nil
}
