package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/names/types"
)

const (
	DefaultQueryLimit = 10
	MaxQueryLimit     = 100
)

type QueryServer struct {
	keeper *Keeper
}

func NewQueryServerImpl(k *Keeper) *QueryServer {
	return &QueryServer{keeper: k}
}

func (qs *QueryServer) Name(ctx sdk.Context, tokenId string) (types.Name, error) {
	return qs.keeper.GetName(ctx, tokenId)
}

func (qs *QueryServer) OwnerOf(ctx sdk.Context, tokenId string) (string, error) {
	return qs.keeper.OwnerOf(ctx, tokenId)
}

// NameByAddress resolves the name associated with an account, if any.
func (qs *QueryServer) NameByAddress(ctx sdk.Context, address string) (string, error) {
	return qs.keeper.NameByAddress(ctx, address)
}

func (qs *QueryServer) Names(ctx sdk.Context, startAfter string, limit uint32) ([]types.Name, error) {
	if limit == 0 {
		limit = DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		limit = MaxQueryLimit
	}
	names := make([]types.Name, 0, limit)
	err := qs.keeper.IterateNames(ctx, startAfter, func(name types.Name) bool {
		names = append(names, name)
		return uint32(len(names)) >= limit
	})
	return names, err
}

func (qs *QueryServer) Params(ctx sdk.Context) types.Params {
	return qs.keeper.GetParams(ctx)
}

func (qs *QueryServer) Config(ctx sdk.Context) (types.Config, error) {
	return qs.keeper.GetConfig(ctx)
}
