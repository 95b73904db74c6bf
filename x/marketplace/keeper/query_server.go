package keeper

import (
	"time"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

const (
	// DefaultQueryLimit applies when a paginated query passes limit 0.
	DefaultQueryLimit = 10
	// MaxQueryLimit caps every paginated query.
	MaxQueryLimit = 100
)

type QueryServer struct {
	keeper *Keeper
}

func NewQueryServerImpl(k *Keeper) *QueryServer {
	return &QueryServer{keeper: k}
}

func clampLimit(limit uint32) uint32 {
	if limit == 0 {
		return DefaultQueryLimit
	}
	if limit > MaxQueryLimit {
		return MaxQueryLimit
	}
	return limit
}

// ---------------------------------------------------------------------
// Asks

func (qs *QueryServer) Ask(ctx sdk.Context, tokenId types.TokenId) (types.Ask, error) {
	return qs.keeper.GetAsk(ctx, tokenId)
}

func (qs *QueryServer) AskCount(ctx sdk.Context) uint64 {
	return qs.keeper.AskCount(ctx)
}

// Asks pages through asks by id ascending, starting after the cursor.
func (qs *QueryServer) Asks(ctx sdk.Context, startAfter uint64, limit uint32) []types.Ask {
	limit = clampLimit(limit)
	asks := make([]types.Ask, 0, limit)
	qs.keeper.IterateAsksById(ctx, startAfter, false, func(ask types.Ask) bool {
		asks = append(asks, ask)
		return uint32(len(asks)) >= limit
	})
	return asks
}

// ReverseAsks pages through asks by id descending, starting before the
// cursor (zero means from the highest id).
func (qs *QueryServer) ReverseAsks(ctx sdk.Context, startBefore uint64, limit uint32) []types.Ask {
	limit = clampLimit(limit)
	asks := make([]types.Ask, 0, limit)
	qs.keeper.IterateAsksById(ctx, startBefore, true, func(ask types.Ask) bool {
		asks = append(asks, ask)
		return uint32(len(asks)) >= limit
	})
	return asks
}

func (qs *QueryServer) AsksBySeller(ctx sdk.Context, seller string, startAfter types.TokenId, limit uint32) []types.Ask {
	limit = clampLimit(limit)
	asks := make([]types.Ask, 0, limit)
	qs.keeper.IterateAsksBySeller(ctx, seller, startAfter, func(ask types.Ask) bool {
		asks = append(asks, ask)
		return uint32(len(asks)) >= limit
	})
	return asks
}

// AsksByRenewTime lists asks whose renewal falls due at or before
// maxTime, in queue order. startAfter skips entries at or before that
// timestamp.
func (qs *QueryServer) AsksByRenewTime(ctx sdk.Context, maxTime time.Time, startAfter time.Time, limit uint32) []types.Ask {
	limit = clampLimit(limit)
	cursor := uint64(0)
	if !startAfter.IsZero() {
		cursor = uint64(startAfter.Unix())
	}
	asks := make([]types.Ask, 0, limit)
	qs.keeper.IterateRenewalQueue(ctx, uint64(maxTime.Unix()), func(renewalTime, _ uint64, tokenId types.TokenId) bool {
		if renewalTime <= cursor {
			return false
		}
		ask, err := qs.keeper.GetAsk(ctx, tokenId)
		if err != nil {
			return false
		}
		asks = append(asks, ask)
		return uint32(len(asks)) >= limit
	})
	return asks
}

// AskRenewPrice quotes the renewal price for one name at the given time,
// with the valid bid backing the quote, if any.
func (qs *QueryServer) AskRenewPrice(ctx sdk.Context, now time.Time, tokenId types.TokenId) (types.AskRenewPrice, error) {
	price, bid, err := qs.keeper.GetRenewalPriceAndBid(ctx, now, tokenId)
	if err != nil {
		return types.AskRenewPrice{}, err
	}
	return types.AskRenewPrice{
		TokenId: tokenId,
		Price:   sdk.NewCoin(types.NativeDenom, price),
		Bid:     bid,
	}, nil
}

// AskRenewalPrices batch-quotes renewal prices. Unknown names are
// skipped rather than failing the whole batch.
func (qs *QueryServer) AskRenewalPrices(ctx sdk.Context, now time.Time, tokenIds []types.TokenId) []types.AskRenewPrice {
	prices := make([]types.AskRenewPrice, 0, len(tokenIds))
	for _, tokenId := range tokenIds {
		if !qs.keeper.HasAsk(ctx, tokenId) {
			continue
		}
		quote, err := qs.AskRenewPrice(ctx, now, tokenId)
		if err != nil {
			continue
		}
		prices = append(prices, quote)
	}
	return prices
}

// RenewalQueue returns the names queued for renewal at exactly the given
// time.
func (qs *QueryServer) RenewalQueue(ctx sdk.Context, renewalTime time.Time) []types.TokenId {
	return qs.keeper.RenewalQueueEntries(ctx, uint64(renewalTime.Unix()))
}

// ---------------------------------------------------------------------
// Bids

func (qs *QueryServer) Bid(ctx sdk.Context, tokenId types.TokenId, bidder string) (types.Bid, error) {
	return qs.keeper.GetBid(ctx, tokenId, bidder)
}

func (qs *QueryServer) Bids(ctx sdk.Context, tokenId types.TokenId, startAfter string, limit uint32) []types.Bid {
	limit = clampLimit(limit)
	bids := make([]types.Bid, 0, limit)
	qs.keeper.IterateBids(ctx, tokenId, startAfter, func(bid types.Bid) bool {
		bids = append(bids, bid)
		return uint32(len(bids)) >= limit
	})
	return bids
}

func (qs *QueryServer) BidsByBidder(ctx sdk.Context, bidder string, startAfter types.TokenId, limit uint32) []types.Bid {
	limit = clampLimit(limit)
	bids := make([]types.Bid, 0, limit)
	qs.keeper.IterateBidsByBidder(ctx, bidder, startAfter, func(bid types.Bid) bool {
		bids = append(bids, bid)
		return uint32(len(bids)) >= limit
	})
	return bids
}

// BidsSortedByPrice walks the global price index ascending.
func (qs *QueryServer) BidsSortedByPrice(ctx sdk.Context, startAfter *types.BidOffset, limit uint32) []types.Bid {
	limit = clampLimit(limit)
	bids := make([]types.Bid, 0, limit)
	qs.keeper.IterateAllBidsByPrice(ctx, startAfter, false, func(bid types.Bid) bool {
		bids = append(bids, bid)
		return uint32(len(bids)) >= limit
	})
	return bids
}

// ReverseBidsSortedByPrice walks the global price index descending.
func (qs *QueryServer) ReverseBidsSortedByPrice(ctx sdk.Context, startBefore *types.BidOffset, limit uint32) []types.Bid {
	limit = clampLimit(limit)
	bids := make([]types.Bid, 0, limit)
	qs.keeper.IterateAllBidsByPrice(ctx, startBefore, true, func(bid types.Bid) bool {
		bids = append(bids, bid)
		return uint32(len(bids)) >= limit
	})
	return bids
}

// HighestBid returns the top bid on a name, or ErrBidNotFound when the
// name has no bids at all.
func (qs *QueryServer) HighestBid(ctx sdk.Context, tokenId types.TokenId) (types.Bid, error) {
	var highest *types.Bid
	qs.keeper.IterateBidsByPriceDesc(ctx, tokenId, func(bid types.Bid) bool {
		b := bid
		highest = &b
		return true
	})
	if highest == nil {
		return types.Bid{}, types.ErrBidNotFound.Wrap(tokenId)
	}
	return *highest, nil
}

// ---------------------------------------------------------------------
// Module state

func (qs *QueryServer) Params(ctx sdk.Context) types.SudoParams {
	return qs.keeper.GetParams(ctx)
}

func (qs *QueryServer) Config(ctx sdk.Context) (types.Config, error) {
	return qs.keeper.GetConfig(ctx)
}

func (qs *QueryServer) Hooks(ctx sdk.Context, kind types.HookKind) []string {
	return qs.keeper.GetHooks(ctx, kind)
}

func (qs *QueryServer) Version() types.VersionInfo {
	return types.VersionInfo{Name: types.ContractName, Version: types.ContractVersion}
}
