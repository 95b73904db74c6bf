package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

// RegisterInvariants registers the marketplace invariants.
func RegisterInvariants(ir sdk.InvariantRegistry, k Keeper) {
	ir.RegisterRoute(types.ModuleName, "module-escrow", ModuleEscrowInvariant(k))
	ir.RegisterRoute(types.ModuleName, "ask-indices", AskIndicesInvariant(k))
	ir.RegisterRoute(types.ModuleName, "renewal-queue", RenewalQueueInvariant(k))
}

// ModuleEscrowInvariant checks that the module account balance covers
// exactly the sum of all escrowed bids and renewal funds.
func ModuleEscrowInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		expected := sdkmath.ZeroInt()
		k.IterateAsksById(ctx, 0, false, func(ask types.Ask) bool {
			expected = expected.Add(ask.RenewalFund)
			k.IterateBids(ctx, ask.TokenId, "", func(bid types.Bid) bool {
				expected = expected.Add(bid.Amount)
				return false
			})
			return false
		})

		balance := k.bankKeeper.GetBalance(ctx, ModuleAddress(), types.NativeDenom)
		broken := !balance.Amount.Equal(expected)
		return sdk.FormatInvariant(types.ModuleName, "module-escrow",
			fmt.Sprintf("module balance %s, escrow obligations %s%s", balance.Amount, expected, types.NativeDenom),
		), broken
	}
}

// AskIndicesInvariant checks that the id and seller indices agree with
// the primary ask records.
func AskIndicesInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		var msg string
		broken := false
		count := k.AskCount(ctx)
		k.IterateAsksById(ctx, 0, false, func(ask types.Ask) bool {
			if ask.Id > count {
				msg = fmt.Sprintf("ask %s has id %d beyond count %d", ask.TokenId, ask.Id, count)
				broken = true
				return true
			}
			byId, err := k.GetAskById(ctx, ask.Id)
			if err != nil || byId.TokenId != ask.TokenId {
				msg = fmt.Sprintf("id index for ask %d does not resolve to %s", ask.Id, ask.TokenId)
				broken = true
				return true
			}
			found := false
			k.IterateAsksBySeller(ctx, ask.Seller, "", func(a types.Ask) bool {
				if a.TokenId == ask.TokenId {
					found = true
					return true
				}
				return false
			})
			if !found {
				msg = fmt.Sprintf("seller index missing ask %s for %s", ask.TokenId, ask.Seller)
				broken = true
				return true
			}
			return false
		})
		return sdk.FormatInvariant(types.ModuleName, "ask-indices", msg), broken
	}
}

// RenewalQueueInvariant checks the ask set and the renewal queue are in
// bijection: every ask queued exactly once, at its own renewal time.
func RenewalQueueInvariant(k Keeper) sdk.Invariant {
	return func(ctx sdk.Context) (string, bool) {
		queued := make(map[uint64]uint64) // ask id -> renewal time
		dup := uint64(0)
		k.IterateRenewalQueue(ctx, ^uint64(0), func(renewalTime, askId uint64, _ types.TokenId) bool {
			if _, ok := queued[askId]; ok {
				dup = askId
				return true
			}
			queued[askId] = renewalTime
			return false
		})
		if dup != 0 {
			return sdk.FormatInvariant(types.ModuleName, "renewal-queue",
				fmt.Sprintf("ask %d queued more than once", dup)), true
		}

		var msg string
		broken := false
		asks := uint64(0)
		k.IterateAsksById(ctx, 0, false, func(ask types.Ask) bool {
			asks++
			t, ok := queued[ask.Id]
			if !ok {
				msg = fmt.Sprintf("ask %s not in renewal queue", ask.TokenId)
				broken = true
				return true
			}
			if t != uint64(ask.RenewalTime.Unix()) {
				msg = fmt.Sprintf("ask %s queued at %d, renewal time %d", ask.TokenId, t, ask.RenewalTime.Unix())
				broken = true
				return true
			}
			return false
		})
		if !broken && asks != uint64(len(queued)) {
			msg = fmt.Sprintf("%d queue entries for %d asks", len(queued), asks)
			broken = true
		}
		return sdk.FormatInvariant(types.ModuleName, "renewal-queue", msg), broken
	}
}
