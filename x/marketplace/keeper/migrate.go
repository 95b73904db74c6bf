package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

func (k Keeper) GetVersion(ctx sdk.Context) types.VersionInfo {
	bz := ctx.KVStore(k.storeKey).Get(types.VersionKey)
	if bz == nil {
		return types.VersionInfo{}
	}
	var info types.VersionInfo
	k.mustUnmarshal(bz, &info)
	return info
}

func (k Keeper) setVersion(ctx sdk.Context, info types.VersionInfo) {
	ctx.KVStore(k.storeKey).Set(types.VersionKey, k.mustMarshal(info))
}

// Migrate advances the stored contract version. The stored record must
// carry the same name and a strictly lower semver than the running
// binary; equal or newer state refuses to migrate.
func (k Keeper) Migrate(ctx sdk.Context, sender string) error {
	if err := k.assertAuthority(sender); err != nil {
		return err
	}

	stored := k.GetVersion(ctx)
	if stored.Name != types.ContractName {
		return types.ErrInvalidContractVersion.Wrapf("stored name %q, expected %q", stored.Name, types.ContractName)
	}
	less, err := types.SemverLess(stored.Version, types.ContractVersion)
	if err != nil {
		return types.ErrInvalidContractVersion.Wrap(err.Error())
	}
	if !less {
		return types.ErrInvalidContractVersion.Wrapf("stored version %s is not older than %s", stored.Version, types.ContractVersion)
	}

	k.setVersion(ctx, types.VersionInfo{Name: types.ContractName, Version: types.ContractVersion})
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMigrate,
		sdk.NewAttribute("from_version", stored.Version),
		sdk.NewAttribute("to_version", types.ContractVersion),
	))
	return nil
}
