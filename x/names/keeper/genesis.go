package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/names/types"
)

// InitGenesis loads the collection state and rebuilds the reverse
// address index from the Name records.
func (k Keeper) InitGenesis(ctx sdk.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	if gs.Config != nil {
		if err := k.config.Set(ctx, *gs.Config); err != nil {
			return err
		}
	}
	for _, name := range gs.Names {
		if err := k.setName(ctx, name); err != nil {
			return err
		}
		if name.AssociatedAddress != "" {
			if err := k.reverse.Set(ctx, name.AssociatedAddress, name.TokenId); err != nil {
				return err
			}
		}
	}
	return nil
}

func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	gs := &types.GenesisState{Params: k.GetParams(ctx)}
	if config, err := k.GetConfig(ctx); err == nil {
		gs.Config = &config
	}
	err := k.IterateNames(ctx, "", func(name types.Name) bool {
		gs.Names = append(gs.Names, name)
		return false
	})
	if err != nil {
		return nil, err
	}
	return gs, nil
}
