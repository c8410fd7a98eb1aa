package access

import "github.com/BruksfildServices01/sales-crm/internal/httperr"

// ===============================
// Roles and lead scopes
// ===============================

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleAgent   Role = "AGENT"
)

type Scope string

const (
	ScopeOwn Scope = "OWN"
	ScopeAll Scope = "ALL"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleManager || r == RoleAgent
}

func (s Scope) Valid() bool {
	return s == ScopeOwn || s == ScopeAll
}

// Actor is the authenticated caller as carried by the session token.
type Actor struct {
	ID        string
	Email     string
	Name      string
	Role      Role
	LeadScope Scope
}

// Privileged reports whether the actor sees and mutates every lead.
func (a Actor) Privileged() bool {
	return a.Role == RoleAdmin || a.Role == RoleManager
}

// HasRole reports whether the actor holds one of roles.
func (a Actor) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// ===============================
// Lead visibility
// ===============================

type Op int

const (
	OpRead Op = iota
	OpWrite
)

// Check is the one predicate deciding whether actor may perform op on a lead
// owned by ownerID. Every lead operation goes through it, including sale
// operations, which check the parent lead.
//
// ADMIN and MANAGER: always allowed.
// AGENT, scope ALL: reads anything, writes only own leads.
// AGENT, scope OWN: reads and writes only own leads.
func Check(actor Actor, op Op, ownerID string) error {
	if actor.Privileged() {
		return nil
	}
	if op == OpRead && actor.LeadScope == ScopeAll {
		return nil
	}
	if ownerID == actor.ID {
		return nil
	}
	return httperr.ErrForbidden("forbidden")
}

// ListOwnerFilter returns the owner id every list query for actor must be
// narrowed to, or "" when the actor reads across owners.
func ListOwnerFilter(actor Actor) string {
	if Check(actor, OpRead, "") == nil {
		return ""
	}
	return actor.ID
}

// CanReassign reports whether actor may choose or change a lead's owner.
func CanReassign(actor Actor) bool {
	return actor.Privileged()
}

// ResolveOwner picks the owner of a new lead. Privileged actors may assign
// anyone and default to themselves; agents always own what they create.
func ResolveOwner(actor Actor, requested string) string {
	if CanReassign(actor) && requested != "" {
		return requested
	}
	return actor.ID
}
