package keeper_test

import (
	"errors"
	"fmt"
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/names-chain/names/x/marketplace/types"
)

type mockRouter struct {
	fail      bool
	askCalls  []types.HookAction
	bidCalls  []types.HookAction
	saleCalls []types.SaleHookData
}

func (r *mockRouter) DispatchAskHook(_ sdk.Context, _ string, action types.HookAction, _ types.Ask) error {
	if r.fail {
		return errors.New("router down")
	}
	r.askCalls = append(r.askCalls, action)
	return nil
}

func (r *mockRouter) DispatchBidHook(_ sdk.Context, _ string, action types.HookAction, _ types.Bid) error {
	if r.fail {
		return errors.New("router down")
	}
	r.bidCalls = append(r.bidCalls, action)
	return nil
}

func (r *mockRouter) DispatchSaleHook(_ sdk.Context, _ string, sale types.SaleHookData) error {
	if r.fail {
		return errors.New("router down")
	}
	r.saleCalls = append(r.saleCalls, sale)
	return nil
}

func hookTarget(i int) string {
	return sdk.AccAddress([]byte(fmt.Sprintf("hook-target-%08d", i))).String()
}

func TestHookRegistryLimits(t *testing.T) {
	f := setup(t)

	for i := 0; i < types.MaxHooksPerKind; i++ {
		require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindAsk, hookTarget(i)))
	}
	err := f.k.SudoAddHook(f.ctx, authority, types.HookKindAsk, hookTarget(99))
	require.ErrorIs(t, err, types.ErrHookLimitReached)

	err = f.k.SudoAddHook(f.ctx, authority, types.HookKindAsk, hookTarget(0))
	require.ErrorIs(t, err, types.ErrHookAlreadyRegistered)

	// The cap is per registry, not global.
	require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindBid, hookTarget(0)))
	require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindSale, hookTarget(0)))

	require.Len(t, f.qs.Hooks(f.ctx, types.HookKindAsk), types.MaxHooksPerKind)
	require.Len(t, f.qs.Hooks(f.ctx, types.HookKindBid), 1)
}

func TestHookRemove(t *testing.T) {
	f := setup(t)

	err := f.k.SudoRemoveHook(f.ctx, authority, types.HookKindAsk, hookTarget(0))
	require.ErrorIs(t, err, types.ErrHookNotRegistered)

	require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindAsk, hookTarget(0)))
	require.NoError(t, f.k.SudoRemoveHook(f.ctx, authority, types.HookKindAsk, hookTarget(0)))
	require.Empty(t, f.qs.Hooks(f.ctx, types.HookKindAsk))
}

func TestHookSudoOnly(t *testing.T) {
	f := setup(t)
	err := f.k.SudoAddHook(f.ctx, seller, types.HookKindAsk, hookTarget(0))
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestHooksDispatchedOnLifecycle(t *testing.T) {
	f := setup(t)
	router := &mockRouter{}
	f.k.SetHookRouter(router)
	require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindAsk, hookTarget(1)))
	require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindBid, hookTarget(1)))
	require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindSale, hookTarget(1)))

	f.mintAndList("alice", seller)
	require.Equal(t, []types.HookAction{types.HookActionCreate}, router.askCalls)

	f.placeBid(bidder, "alice", 50_000_000)
	require.Equal(t, []types.HookAction{types.HookActionCreate}, router.bidCalls)

	_, err := f.ms.AcceptBid(f.ctx, &types.MsgAcceptBid{Sender: seller, TokenId: "alice", Bidder: bidder})
	require.NoError(t, err)
	require.Len(t, router.saleCalls, 1)
	require.Equal(t, seller, router.saleCalls[0].Seller)
	require.Equal(t, bidder, router.saleCalls[0].Buyer)
	// The sale rewrote the ask, so ask observers heard about it too.
	require.Equal(t, []types.HookAction{types.HookActionCreate, types.HookActionUpdate}, router.askCalls)
}

func TestHookFailureDoesNotAbort(t *testing.T) {
	f := setup(t)
	router := &mockRouter{fail: true}
	f.k.SetHookRouter(router)
	require.NoError(t, f.k.SudoAddHook(f.ctx, authority, types.HookKindAsk, hookTarget(1)))

	f.ctx = f.ctx.WithEventManager(sdk.NewEventManager())
	f.mintAndList("alice", seller)

	// The ask landed despite the failing observer.
	require.True(t, f.k.HasAsk(f.ctx, "alice"))

	var failures int
	for _, ev := range f.ctx.EventManager().Events() {
		if ev.Type == types.EventTypeAskHookFailed {
			failures++
		}
	}
	require.Equal(t, 1, failures)
}
