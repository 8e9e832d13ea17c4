package service

import (
	"testing"

	"github.com/aussiebroadwan/tack/internal/tack/domain"
	"github.com/stretchr/testify/require"
)

func TestLabel(t *testing.T) {
	for in, want := range map[string]string{
		"IN_PROGRESS": "in progress",
		"TO_DO":       "to do",
		"OWNER":       "owner",
		"A_B_C":       "a b_c",
	} {
		require.Equal(t, want, Label(in), in)
	}
}

func TestEnumerations(t *testing.T) {
	e := MetaService{}.Enumerations()
	require.Len(t, e.Roles, len(domain.Roles))
	require.Equal(t, domain.Option{Label: "in review", Value: "IN_REVIEW"}, e.CardStatuses[2])
	require.Equal(t, domain.Option{Label: "private", Value: "PRIVATE"}, e.BoardVisibilities[1])
	require.Len(t, e.CardPriorities, 3)
}
