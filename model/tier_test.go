package model

import (
	"github.com/stretchr/testify/require"
	"testing"
)

// TestParseTier_Known accepts known names regardless of case and spaces.
func TestParseTier_Known(t *testing.T) {
	for in, want := range map[string]Tier{
		"hot":        Hot,
		"SESSION":    Session,
		" Forever  ": Forever,
	} {
		got, err := ParseTier(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

// TestParseTier_Unknown rejects typos with ErrUnknownTier.
func TestParseTier_Unknown(t *testing.T) {
	_, err := ParseTier("sesion")
	require.ErrorIs(t, err, ErrUnknownTier)

	_, err = ParseTier("")
	require.ErrorIs(t, err, ErrUnknownTier)
}

// TestTier_Valid reports only the three fixed tiers as valid.
func TestTier_Valid(t *testing.T) {
	for _, tier := range Tiers {
		require.True(t, tier.Valid())
	}
	require.False(t, Tier("HOT").Valid())
}

// TestBuildKey concatenates prefix and id.
func TestBuildKey(t *testing.T) {
	require.Equal(t, "payload:42", BuildKey(KeyPayloadData, "42"))
}
