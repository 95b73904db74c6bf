package keeper

import (
	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/minter/types"
)

func (k Keeper) InitGenesis(ctx sdk.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	if err := k.paused.Set(ctx, gs.Paused); err != nil {
		return err
	}
	if gs.Admin != "" {
		if err := k.admin.Set(ctx, gs.Admin); err != nil {
			return err
		}
	}
	if err := k.whitelistSeq.Set(ctx, gs.WhitelistCount); err != nil {
		return err
	}
	for _, wl := range gs.Whitelists {
		if err := k.whitelists.Set(ctx, wl.Id, wl); err != nil {
			return err
		}
	}
	for _, mc := range gs.MintCounts {
		if err := k.mintCounts.Set(ctx, collections.Join(mc.WhitelistId, mc.Address), uint64(mc.Count)); err != nil {
			return err
		}
	}
	return nil
}

func (k Keeper) ExportGenesis(ctx sdk.Context) (*types.GenesisState, error) {
	count, err := k.whitelistSeq.Peek(ctx)
	if err != nil {
		return nil, err
	}
	gs := &types.GenesisState{
		Params:         k.GetParams(ctx),
		Paused:         k.IsPaused(ctx),
		Admin:          k.GetAdmin(ctx),
		WhitelistCount: count,
	}
	if err := k.IterateWhitelists(ctx, func(wl types.Whitelist) bool {
		gs.Whitelists = append(gs.Whitelists, wl)
		return false
	}); err != nil {
		return nil, err
	}
	if err := k.mintCounts.Walk(ctx, nil, func(key collections.Pair[uint64, string], count uint64) (bool, error) {
		gs.MintCounts = append(gs.MintCounts, types.MintCount{
			WhitelistId: key.K1(),
			Address:     key.K2(),
			Count:       uint32(count),
		})
		return false, nil
	}); err != nil {
		return nil, err
	}
	return gs, nil
}
