package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

// InitGenesis writes the genesis state and rebuilds every secondary
// index and the renewal queue from the primary ask and bid records.
func (k Keeper) InitGenesis(ctx sdk.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return err
	}
	if err := k.SetParams(ctx, gs.Params); err != nil {
		return err
	}
	k.setAskCount(ctx, gs.AskCount)
	if gs.Config != nil {
		k.SetConfig(ctx, *gs.Config)
	}
	for _, ask := range gs.Asks {
		k.SetAsk(ctx, ask)
		k.AddRenewalQueueEntry(ctx, uint64(ask.RenewalTime.Unix()), ask.Id, ask.TokenId)
	}
	for _, bid := range gs.Bids {
		k.SetBid(ctx, bid)
	}
	k.setVersion(ctx, types.VersionInfo{Name: types.ContractName, Version: types.ContractVersion})
	return nil
}

// ExportGenesis reads back the primary records. Indices and the queue
// are derived, so they are not exported.
func (k Keeper) ExportGenesis(ctx sdk.Context) *types.GenesisState {
	gs := &types.GenesisState{
		Params:   k.GetParams(ctx),
		AskCount: k.AskCount(ctx),
	}
	if config, err := k.GetConfig(ctx); err == nil {
		gs.Config = &config
	}
	k.IterateAsksById(ctx, 0, false, func(ask types.Ask) bool {
		gs.Asks = append(gs.Asks, ask)
		return false
	})
	for _, ask := range gs.Asks {
		k.IterateBids(ctx, ask.TokenId, "", func(bid types.Bid) bool {
			gs.Bids = append(gs.Bids, bid)
			return false
		})
	}
	return gs
}
