package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryRejectsDuplicateEmail(t *testing.T) {
	registry := NewUserRegistry(5, nil)
	_, err := registry.Register("Ada", "ada@example.com", "hash")
	require.NoError(t, err)

	_, err = registry.Register("Imposter", "ADA@example.com", "hash2")
	require.Error(t, err)
}

func TestRegistryGrantsAdminRoleFromConfig(t *testing.T) {
	registry := NewUserRegistry(5, []string{"ops@example.com"})
	admin, err := registry.Register("Ops", "ops@example.com", "hash")
	require.NoError(t, err)
	assert.Contains(t, admin.Roles, "ADMIN")

	user, err := registry.Register("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	assert.NotContains(t, user.Roles, "ADMIN")
}

func TestChargeForAnalysisClampsAtZero(t *testing.T) {
	registry := NewUserRegistry(2, nil)
	user, err := registry.Register("Ada", "ada@example.com", "hash")
	require.NoError(t, err)

	remaining, ok := registry.ChargeForAnalysis(user.ID)
	require.True(t, ok)
	assert.Equal(t, 1, remaining)

	remaining, _ = registry.ChargeForAnalysis(user.ID)
	assert.Equal(t, 0, remaining)
	assert.False(t, registry.CanAnalyze(user.ID))

	// Charging an exhausted account never goes negative.
	remaining, _ = registry.ChargeForAnalysis(user.ID)
	assert.Equal(t, 0, remaining)
}

func TestUpgradeGrantsUnlimitedAnalysis(t *testing.T) {
	registry := NewUserRegistry(0, nil)
	user, err := registry.Register("Ada", "ada@example.com", "hash")
	require.NoError(t, err)
	assert.False(t, registry.CanAnalyze(user.ID))

	upgraded, ok := registry.Upgrade(user.ID, PlanPro)
	require.True(t, ok)
	assert.True(t, upgraded.IsPro)
	assert.Equal(t, PlanPro, upgraded.Plan)
	assert.Equal(t, UnlimitedCredits, upgraded.Credits)
	assert.True(t, registry.CanAnalyze(user.ID))

	// Pro accounts are not decremented.
	remaining, _ := registry.ChargeForAnalysis(user.ID)
	assert.Equal(t, UnlimitedCredits, remaining)
}

func TestDeleteDestroysAccount(t *testing.T) {
	registry := NewUserRegistry(5, nil)
	user, err := registry.Register("Ada", "ada@example.com", "hash")
	require.NoError(t, err)

	registry.Delete(user.ID)
	_, exists := registry.FindByID(user.ID)
	assert.False(t, exists)
	_, exists = registry.FindByEmail("ada@example.com")
	assert.False(t, exists)

	// The email is free again after logout.
	_, err = registry.Register("Ada II", "ada@example.com", "hash")
	require.NoError(t, err)
}
