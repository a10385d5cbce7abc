package policy_test

import (
	"testing"

	"leavedesk/internal/policy"

	"github.com/stretchr/testify/assert"
)

func TestRequiredApproverRole(t *testing.T) {
	t.Run("member needs manager", func(t *testing.T) {
		approver, ok := policy.RequiredApproverRole(policy.RoleMember)
		assert.True(t, ok)
		assert.Equal(t, policy.RoleManager, approver)
	})

	t.Run("manager needs admin", func(t *testing.T) {
		approver, ok := policy.RequiredApproverRole(policy.RoleManager)
		assert.True(t, ok)
		assert.Equal(t, policy.RoleAdmin, approver)
	})

	t.Run("admin has no approver tier", func(t *testing.T) {
		_, ok := policy.RequiredApproverRole(policy.RoleAdmin)
		assert.False(t, ok)
	})
}

func TestCanSubmitLeave(t *testing.T) {
	assert.True(t, policy.CanSubmitLeave(policy.RoleMember))
	assert.True(t, policy.CanSubmitLeave(policy.RoleManager))
	assert.False(t, policy.CanSubmitLeave(policy.RoleAdmin))
}

func TestCanViewApprovalQueue(t *testing.T) {
	t.Run("manager sees only manager-targeted items", func(t *testing.T) {
		assert.True(t, policy.CanViewApprovalQueue(policy.RoleManager, policy.RoleManager))
		assert.False(t, policy.CanViewApprovalQueue(policy.RoleManager, policy.RoleAdmin))
	})

	t.Run("admin sees everything", func(t *testing.T) {
		assert.True(t, policy.CanViewApprovalQueue(policy.RoleAdmin, policy.RoleManager))
		assert.True(t, policy.CanViewApprovalQueue(policy.RoleAdmin, policy.RoleAdmin))
	})

	t.Run("member sees nothing", func(t *testing.T) {
		assert.False(t, policy.CanViewApprovalQueue(policy.RoleMember, policy.RoleManager))
		assert.False(t, policy.CanViewApprovalQueue(policy.RoleMember, policy.RoleAdmin))
	})
}

func TestCanDecide(t *testing.T) {
	t.Run("manager decides manager-targeted only", func(t *testing.T) {
		assert.True(t, policy.CanDecide(policy.RoleManager, policy.RoleManager))
		assert.False(t, policy.CanDecide(policy.RoleManager, policy.RoleAdmin))
	})

	t.Run("admin decides anything", func(t *testing.T) {
		assert.True(t, policy.CanDecide(policy.RoleAdmin, policy.RoleManager))
		assert.True(t, policy.CanDecide(policy.RoleAdmin, policy.RoleAdmin))
	})

	t.Run("member decides nothing", func(t *testing.T) {
		assert.False(t, policy.CanDecide(policy.RoleMember, policy.RoleManager))
	})
}

func TestIsApprover(t *testing.T) {
	assert.False(t, policy.IsApprover(policy.RoleMember))
	assert.True(t, policy.IsApprover(policy.RoleManager))
	assert.True(t, policy.IsApprover(policy.RoleAdmin))
}

func TestParseRole(t *testing.T) {
	for _, valid := range []string{"MEMBER", "MANAGER", "ADMIN"} {
		r, ok := policy.ParseRole(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, r.String())
	}

	_, ok := policy.ParseRole("SUPERVISOR")
	assert.False(t, ok)
	_, ok = policy.ParseRole("admin")
	assert.False(t, ok)
}
