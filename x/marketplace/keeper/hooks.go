package keeper

import (
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

// AddHook registers an observer address in the given registry. Registries
// are small and sudo-managed, so a full scan is fine.
func (k Keeper) AddHook(ctx sdk.Context, kind types.HookKind, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return types.ErrInvalidParams.Wrapf("hook: %s", err)
	}
	store := ctx.KVStore(k.storeKey)
	key := types.HookKey(kind.Prefix(), addr)
	if store.Has(key) {
		return types.ErrHookAlreadyRegistered.Wrap(addr)
	}
	if len(k.GetHooks(ctx, kind)) >= types.MaxHooksPerKind {
		return types.ErrHookLimitReached.Wrapf("max %d %s hooks", types.MaxHooksPerKind, kind)
	}
	store.Set(key, []byte{})
	return nil
}

func (k Keeper) RemoveHook(ctx sdk.Context, kind types.HookKind, addr string) error {
	store := ctx.KVStore(k.storeKey)
	key := types.HookKey(kind.Prefix(), addr)
	if !store.Has(key) {
		return types.ErrHookNotRegistered.Wrap(addr)
	}
	store.Delete(key)
	return nil
}

func (k Keeper) GetHooks(ctx sdk.Context, kind types.HookKind) []string {
	store := ctx.KVStore(k.storeKey)
	it := storetypes.KVStorePrefixIterator(store, kind.Prefix())
	defer it.Close()

	var hooks []string
	for ; it.Valid(); it.Next() {
		hooks = append(hooks, string(it.Key()[len(kind.Prefix()):]))
	}
	return hooks
}

// dispatch runs one observer notification inside a cache context so a
// failing observer can never roll back the primary state transition. The
// failure is surfaced as an event instead.
func (k Keeper) dispatch(ctx sdk.Context, kind types.HookKind, target string, call func(sdk.Context) error) {
	cacheCtx, write := ctx.CacheContext()
	if err := call(cacheCtx); err != nil {
		k.logger.Debug("hook dispatch failed", "kind", kind, "target", target, "err", err)
		ctx.EventManager().EmitEvent(sdk.NewEvent(
			kind.FailureEvent(),
			sdk.NewAttribute(types.AttributeKeyHook, target),
			sdk.NewAttribute(types.AttributeKeyError, err.Error()),
		))
		return
	}
	write()
}

func (k Keeper) dispatchAskHooks(ctx sdk.Context, action types.HookAction, ask types.Ask) {
	if k.hookRouter == nil {
		return
	}
	for _, target := range k.GetHooks(ctx, types.HookKindAsk) {
		target := target
		k.dispatch(ctx, types.HookKindAsk, target, func(c sdk.Context) error {
			return k.hookRouter.DispatchAskHook(c, target, action, ask)
		})
	}
}

func (k Keeper) dispatchBidHooks(ctx sdk.Context, action types.HookAction, bid types.Bid) {
	if k.hookRouter == nil {
		return
	}
	for _, target := range k.GetHooks(ctx, types.HookKindBid) {
		target := target
		k.dispatch(ctx, types.HookKindBid, target, func(c sdk.Context) error {
			return k.hookRouter.DispatchBidHook(c, target, action, bid)
		})
	}
}

func (k Keeper) dispatchSaleHooks(ctx sdk.Context, sale types.SaleHookData) {
	if k.hookRouter == nil {
		return
	}
	for _, target := range k.GetHooks(ctx, types.HookKindSale) {
		target := target
		k.dispatch(ctx, types.HookKindSale, target, func(c sdk.Context) error {
			return k.hookRouter.DispatchSaleHook(c, target, sale)
		})
	}
}
