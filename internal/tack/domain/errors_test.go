package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/stretchr/testify/require"
)

func TestErrorMatching(t *testing.T) {
	sentinel := domain.Forbidden("nope")

	t.Run("same kind and message match", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", domain.Forbidden("nope"))
		require.ErrorIs(t, err, sentinel)
		require.Equal(t, domain.KindForbidden, domain.KindOf(err))
	})

	t.Run("different message does not match", func(t *testing.T) {
		require.NotErrorIs(t, domain.Forbidden("other"), sentinel)
	})

	t.Run("plain errors have no kind", func(t *testing.T) {
		require.Zero(t, domain.KindOf(errors.New("boom")))
	})
}

func TestRoleIn(t *testing.T) {
	require.True(t, domain.RoleMember.In())
	require.True(t, domain.RoleAdmin.In(domain.Managers...))
	require.False(t, domain.RoleMember.In(domain.Managers...))
	require.False(t, domain.RoleOwner.Assignable())
	require.True(t, domain.RoleAdmin.IsManager())
}
