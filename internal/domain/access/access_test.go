package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/sales-crm/internal/httperr"
)

var (
	admin     = Actor{ID: "admin", Role: RoleAdmin, LeadScope: ScopeAll}
	manager   = Actor{ID: "manager", Role: RoleManager, LeadScope: ScopeOwn}
	agentOwn  = Actor{ID: "agent-own", Role: RoleAgent, LeadScope: ScopeOwn}
	agentAll  = Actor{ID: "agent-all", Role: RoleAgent, LeadScope: ScopeAll}
	otherUser = "someone-else"
)

func TestCheck(t *testing.T) {
	cases := []struct {
		name    string
		actor   Actor
		op      Op
		owner   string
		allowed bool
	}{
		{"admin reads others", admin, OpRead, otherUser, true},
		{"admin writes others", admin, OpWrite, otherUser, true},
		{"manager with OWN scope is still unrestricted", manager, OpWrite, otherUser, true},
		{"agent ALL reads others", agentAll, OpRead, otherUser, true},
		{"agent ALL cannot write others", agentAll, OpWrite, otherUser, false},
		{"agent ALL writes own", agentAll, OpWrite, agentAll.ID, true},
		{"agent OWN cannot read others", agentOwn, OpRead, otherUser, false},
		{"agent OWN cannot write others", agentOwn, OpWrite, otherUser, false},
		{"agent OWN reads own", agentOwn, OpRead, agentOwn.ID, true},
		{"agent OWN writes own", agentOwn, OpWrite, agentOwn.ID, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Check(tc.actor, tc.op, tc.owner)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assert.True(t, httperr.IsKind(err, httperr.KindForbidden))
		})
	}
}

func TestListOwnerFilter(t *testing.T) {
	assert.Equal(t, "", ListOwnerFilter(admin))
	assert.Equal(t, "", ListOwnerFilter(manager))
	assert.Equal(t, "", ListOwnerFilter(agentAll))
	assert.Equal(t, agentOwn.ID, ListOwnerFilter(agentOwn))
}

func TestResolveOwner(t *testing.T) {
	assert.Equal(t, otherUser, ResolveOwner(admin, otherUser))
	assert.Equal(t, admin.ID, ResolveOwner(admin, ""))
	assert.Equal(t, manager.ID, ResolveOwner(manager, ""))

	// agents silently get their own id, whatever was asked for
	assert.Equal(t, agentOwn.ID, ResolveOwner(agentOwn, otherUser))
	assert.Equal(t, agentAll.ID, ResolveOwner(agentAll, otherUser))
}

func TestRoleAndScopeValid(t *testing.T) {
	assert.True(t, RoleManager.Valid())
	assert.False(t, Role("OWNER").Valid())
	assert.True(t, ScopeAll.Valid())
	assert.False(t, Scope("TEAM").Valid())
}
