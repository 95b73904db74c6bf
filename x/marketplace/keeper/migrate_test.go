package keeper_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/names-chain/names/x/marketplace/types"
)

func TestMigrateGate(t *testing.T) {
	f := setup(t)

	// No stored version record yet.
	err := f.k.Migrate(f.ctx, authority)
	require.ErrorIs(t, err, types.ErrInvalidContractVersion)

	require.NoError(t, f.k.InitGenesis(f.ctx, f.k.ExportGenesis(f.ctx)))

	// Already at the running version: not strictly older.
	err = f.k.Migrate(f.ctx, authority)
	require.ErrorIs(t, err, types.ErrInvalidContractVersion)
}

func TestMigrateAuthorityOnly(t *testing.T) {
	f := setup(t)
	err := f.k.Migrate(f.ctx, seller)
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestSemverLess(t *testing.T) {
	for _, tc := range []struct {
		a, b string
		want bool
	}{
		{"1.0.0", "2.0.0", true},
		{"1.9.9", "2.0.0", true},
		{"2.0.0", "2.0.0", false},
		{"2.0.1", "2.0.0", false},
		{"0.10.0", "0.9.0", false},
	} {
		got, err := types.SemverLess(tc.a, tc.b)
		require.NoError(t, err)
		require.Equal(t, tc.want, got, "%s < %s", tc.a, tc.b)
	}

	_, err := types.SemverLess("2.0", "2.0.0")
	require.Error(t, err)
	_, err = types.SemverLess("2.0.x", "2.0.0")
	require.Error(t, err)
}

func TestSudoUpdateParams(t *testing.T) {
	f := setup(t)

	params := f.k.GetParams(f.ctx)
	params.AskInterval = 120
	require.NoError(t, f.k.SudoUpdateParams(f.ctx, authority, params))
	require.Equal(t, uint64(120), f.k.GetParams(f.ctx).AskInterval)

	require.ErrorIs(t, f.k.SudoUpdateParams(f.ctx, seller, params), types.ErrUnauthorized)

	params.MaxRenewalsPerBlock = 0
	require.ErrorIs(t, f.k.SudoUpdateParams(f.ctx, authority, params), types.ErrInvalidParams)
}
