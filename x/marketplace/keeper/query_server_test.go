package keeper_test

import (
	"fmt"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/names-chain/names/x/marketplace/types"
)

func TestAsksPagination(t *testing.T) {
	f := setup(t)
	for i := 0; i < 15; i++ {
		f.mintAndList(fmt.Sprintf("name-%02d", i), seller)
	}

	// Default page size.
	page := f.qs.Asks(f.ctx, 0, 0)
	require.Len(t, page, 10)
	require.Equal(t, uint64(1), page[0].Id)

	next := f.qs.Asks(f.ctx, page[len(page)-1].Id, 0)
	require.Len(t, next, 5)
	require.Equal(t, uint64(11), next[0].Id)

	// Reverse walks from the top.
	rev := f.qs.ReverseAsks(f.ctx, 0, 3)
	require.Len(t, rev, 3)
	require.Equal(t, uint64(15), rev[0].Id)
	require.Equal(t, uint64(13), rev[2].Id)

	rev = f.qs.ReverseAsks(f.ctx, 13, 3)
	require.Len(t, rev, 3)
	require.Equal(t, uint64(12), rev[0].Id)
}

func TestQueryLimitCap(t *testing.T) {
	f := setup(t)
	for i := 0; i < 3; i++ {
		f.mintAndList(fmt.Sprintf("name-%02d", i), seller)
	}
	page := f.qs.Asks(f.ctx, 0, 50_000)
	require.Len(t, page, 3)
}

func TestBidsSortedByPrice(t *testing.T) {
	f := setup(t)
	f.mintAndList("alice", seller)
	f.placeBid(bidder, "alice", 70_000_000)
	f.placeBid(bidder2, "alice", 50_000_000)

	asc := f.qs.BidsSortedByPrice(f.ctx, nil, 0)
	require.Len(t, asc, 2)
	require.Equal(t, sdkmath.NewInt(50_000_000), asc[0].Amount)
	require.Equal(t, sdkmath.NewInt(70_000_000), asc[1].Amount)

	desc := f.qs.ReverseBidsSortedByPrice(f.ctx, nil, 0)
	require.Equal(t, sdkmath.NewInt(70_000_000), desc[0].Amount)

	// Cursor resumes after the given (token, price, bidder) triple.
	cursor := types.NewBidOffset(asc[0].Amount, asc[0].TokenId, asc[0].Bidder)
	rest := f.qs.BidsSortedByPrice(f.ctx, &cursor, 0)
	require.Len(t, rest, 1)
	require.Equal(t, sdkmath.NewInt(70_000_000), rest[0].Amount)
}

func TestHighestBid(t *testing.T) {
	f := setup(t)
	f.mintAndList("alice", seller)

	_, err := f.qs.HighestBid(f.ctx, "alice")
	require.ErrorIs(t, err, types.ErrBidNotFound)

	f.placeBid(bidder, "alice", 50_000_000)
	f.placeBid(bidder2, "alice", 90_000_000)

	top, err := f.qs.HighestBid(f.ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, bidder2, top.Bidder)
	require.Equal(t, sdkmath.NewInt(90_000_000), top.Amount)
}

func TestBidsByBidder(t *testing.T) {
	f := setup(t)
	f.mintAndList("alice", seller)
	f.mintAndList("bobby", seller)
	f.placeBid(bidder, "alice", 50_000_000)
	f.placeBid(bidder, "bobby", 60_000_000)
	f.placeBid(bidder2, "alice", 70_000_000)

	bids := f.qs.BidsByBidder(f.ctx, bidder, "", 0)
	require.Len(t, bids, 2)
	for _, bid := range bids {
		require.Equal(t, bidder, bid.Bidder)
	}
}

func TestAsksByRenewTime(t *testing.T) {
	f := setup(t)
	first := f.mintAndList("alice", seller)
	f.advance(24 * time.Hour)
	second := f.mintAndList("bobby", seller)

	due := f.qs.AsksByRenewTime(f.ctx, first.RenewalTime, time.Time{}, 0)
	require.Len(t, due, 1)
	require.Equal(t, "alice", due[0].TokenId)

	due = f.qs.AsksByRenewTime(f.ctx, second.RenewalTime, time.Time{}, 0)
	require.Len(t, due, 2)

	// Cursor skips everything at or before the first renewal time.
	due = f.qs.AsksByRenewTime(f.ctx, second.RenewalTime, first.RenewalTime, 0)
	require.Len(t, due, 1)
	require.Equal(t, "bobby", due[0].TokenId)
}

func TestParamsAndConfigQueries(t *testing.T) {
	f := setup(t)
	params := f.qs.Params(f.ctx)
	require.Equal(t, operator, params.Operator)

	config, err := f.qs.Config(f.ctx)
	require.NoError(t, err)
	require.Equal(t, minterAddr, config.Minter)

	info := f.qs.Version()
	require.Equal(t, types.ContractName, info.Name)
	require.Equal(t, types.ContractVersion, info.Version)
}
