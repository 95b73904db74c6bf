package keeper

import (
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	markettypes "github.com/names-chain/names/x/marketplace/types"
	"github.com/names-chain/names/x/minter/types"
)

type QueryServer struct {
	keeper *Keeper
}

func NewQueryServerImpl(k *Keeper) *QueryServer {
	return &QueryServer{keeper: k}
}

func (qs *QueryServer) Params(ctx sdk.Context) types.Params {
	return qs.keeper.GetParams(ctx)
}

func (qs *QueryServer) Admin(ctx sdk.Context) string {
	return qs.keeper.GetAdmin(ctx)
}

func (qs *QueryServer) Paused(ctx sdk.Context) bool {
	return qs.keeper.IsPaused(ctx)
}

func (qs *QueryServer) Whitelist(ctx sdk.Context, id uint64) (types.Whitelist, error) {
	return qs.keeper.GetWhitelist(ctx, id)
}

func (qs *QueryServer) Whitelists(ctx sdk.Context) ([]types.Whitelist, error) {
	var out []types.Whitelist
	err := qs.keeper.IterateWhitelists(ctx, func(wl types.Whitelist) bool {
		out = append(out, wl)
		return false
	})
	return out, err
}

func (qs *QueryServer) MintCount(ctx sdk.Context, whitelistId uint64, addr string) uint64 {
	return qs.keeper.MintCount(ctx, whitelistId, addr)
}

// MintPrice quotes the full undiscounted cost of registering a name.
func (qs *QueryServer) MintPrice(ctx sdk.Context, rawName string) (sdkmath.Int, error) {
	params := qs.keeper.GetParams(ctx)
	name := types.CleanName(rawName)
	if err := types.ValidateName(name, params.MinNameLength, params.MaxNameLength); err != nil {
		return sdkmath.ZeroInt(), err
	}
	return markettypes.CharPrice(params.BasePrice, len(name)), nil
}
