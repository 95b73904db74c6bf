package keeper

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

func (k Keeper) minterParams(ctx sdk.Context) (types.MinterParams, error) {
	if k.minter == nil {
		return types.MinterParams{}, types.ErrNotSetup.Wrap("minter not wired")
	}
	return k.minter.MarketplaceParams(ctx)
}

// GetRenewalPriceAndBid quotes the cost of renewing a name at the given
// time, along with the valid bid that set the price, if any.
//
// A bid counts toward renewal pricing only if it has aged at least
// renew_window seconds and meets the character-length floor price. Only
// the top valid_bid_query_limit bids by price are scanned, so a bidder
// can crowd out pricing only by escrowing many high bids, all newer than
// the window.
func (k Keeper) GetRenewalPriceAndBid(ctx sdk.Context, now time.Time, tokenId types.TokenId) (sdkmath.Int, *types.Bid, error) {
	params := k.GetParams(ctx)
	minterParams, err := k.minterParams(ctx)
	if err != nil {
		return sdkmath.ZeroInt(), nil, err
	}

	charPrice := types.CharPrice(minterParams.BasePrice, len(tokenId))
	maxValidTime := now.Unix() - int64(params.RenewWindow)

	var validBid *types.Bid
	scanned := uint32(0)
	k.IterateBidsByPriceDesc(ctx, tokenId, func(bid types.Bid) bool {
		scanned++
		if bid.CreatedTime.Unix() <= maxValidTime && bid.Amount.GTE(charPrice) {
			b := bid
			validBid = &b
			return true
		}
		return scanned >= params.ValidBidQueryLimit
	})

	renewalPrice := charPrice
	if validBid != nil {
		bidPrice := params.RenewalBidPercentage.MulInt(validBid.Amount).TruncateInt()
		if bidPrice.GT(renewalPrice) {
			renewalPrice = bidPrice
		}
	}
	return renewalPrice, validBid, nil
}

// ProcessRenewals walks the renewal queue in ascending (time, id) order,
// handling every ask whose renewal time has arrived, up to limit.
func (k Keeper) ProcessRenewals(ctx sdk.Context, limit uint32) (uint32, error) {
	params := k.GetParams(ctx)
	if limit > params.MaxRenewalsPerBlock {
		limit = params.MaxRenewalsPerBlock
	}

	type entry struct {
		tokenId types.TokenId
	}
	var due []entry
	now := uint64(ctx.BlockTime().Unix())
	k.IterateRenewalQueue(ctx, now, func(_, _ uint64, tokenId types.TokenId) bool {
		due = append(due, entry{tokenId: tokenId})
		return uint32(len(due)) >= limit
	})

	for _, e := range due {
		ask, err := k.GetAsk(ctx, e.tokenId)
		if err != nil {
			return 0, err
		}
		if err := k.processRenewal(ctx, ask); err != nil {
			return 0, err
		}
	}
	return uint32(len(due)), nil
}

func (k Keeper) processRenewal(ctx sdk.Context, ask types.Ask) error {
	if ask.RenewalTime.After(ctx.BlockTime()) {
		return types.ErrCannotProcessFutureRenewal.Wrapf("%s renews at %s", ask.TokenId, ask.RenewalTime)
	}

	renewalPrice, validBid, err := k.GetRenewalPriceAndBid(ctx, ctx.BlockTime(), ask.TokenId)
	if err != nil {
		return err
	}

	action := types.AttributeValueRenew
	switch {
	case ask.RenewalFund.GTE(renewalPrice):
		err = k.renewName(ctx, ask, renewalPrice)
	case validBid != nil:
		action = types.AttributeValueSell
		err = k.sellName(ctx, ask, *validBid)
	default:
		// Nobody funded the renewal and no bid can buy the name: it
		// expires and is burned.
		action = types.AttributeValueBurn
		err = k.burnName(ctx, ask)
	}
	if err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProcessRenewal,
		sdk.NewAttribute(types.AttributeKeyTokenId, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeyAction, action),
	))
	return nil
}

// renewName extends an ask by one year, consuming the renewal price from
// the escrowed fund. The price itself is protocol revenue: the trading
// fee share is fair burned, the remainder funds the community pool.
func (k Keeper) renewName(ctx sdk.Context, ask types.Ask, renewalPrice sdkmath.Int) error {
	params := k.GetParams(ctx)

	if renewalPrice.IsPositive() {
		if ask.RenewalFund.LT(renewalPrice) {
			return types.ErrInsufficientRenewalFunds.Wrapf("expected %s, actual %s", renewalPrice, ask.RenewalFund)
		}
		ask.RenewalFund = ask.RenewalFund.Sub(renewalPrice)

		burnAmount := params.TradingFeePercent.MulInt(renewalPrice).TruncateInt()
		if burnAmount.IsPositive() {
			coins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, burnAmount))
			if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
				return err
			}
		}
		poolAmount := renewalPrice.Sub(burnAmount)
		if poolAmount.IsPositive() {
			coins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, poolAmount))
			if err := k.distrKeeper.FundCommunityPool(ctx, coins, ModuleAddress()); err != nil {
				return err
			}
		}
	}

	k.RemoveRenewalQueueEntry(ctx, uint64(ask.RenewalTime.Unix()), ask.Id)
	ask.RenewalTime = ask.RenewalTime.Add(types.SecondsPerYear * time.Second)
	k.AddRenewalQueueEntry(ctx, uint64(ask.RenewalTime.Unix()), ask.Id, ask.TokenId)
	k.SetAsk(ctx, ask)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRenewName,
		sdk.NewAttribute(types.AttributeKeyTokenId, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeyPrice, renewalPrice.String()),
		sdk.NewAttribute(types.AttributeKeyRenewalTime, ask.RenewalTime.UTC().Format(time.RFC3339)),
	))
	k.dispatchAskHooks(ctx, types.HookActionUpdate, ask)
	return nil
}

// sellName auctions an under-funded name to the holder of the winning
// bid. The outgoing seller keeps any partial renewal fund and the sale
// proceeds net of fees.
func (k Keeper) sellName(ctx sdk.Context, ask types.Ask, winningBid types.Bid) error {
	oldSeller := ask.Seller

	if ask.RenewalFund.IsPositive() {
		if err := k.releaseCoin(ctx, oldSeller, ask.RenewalFund); err != nil {
			return err
		}
		ask.RenewalFund = sdkmath.ZeroInt()
	}

	k.RemoveBid(ctx, winningBid)
	if err := k.payout(ctx, winningBid.Amount, oldSeller); err != nil {
		return err
	}
	if err := k.collection.TransferNFT(ctx, ask.TokenId, winningBid.Bidder); err != nil {
		return err
	}

	k.RemoveRenewalQueueEntry(ctx, uint64(ask.RenewalTime.Unix()), ask.Id)
	ask.Seller = winningBid.Bidder
	ask.RenewalTime = ctx.BlockTime().Add(types.SecondsPerYear * time.Second)
	ask.RenewalFund = sdkmath.ZeroInt()
	k.AddRenewalQueueEntry(ctx, uint64(ask.RenewalTime.Unix()), ask.Id, ask.TokenId)
	k.SetAsk(ctx, ask)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFinalizeSale,
		sdk.NewAttribute(types.AttributeKeyTokenId, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeySeller, oldSeller),
		sdk.NewAttribute(types.AttributeKeyBuyer, winningBid.Bidder),
		sdk.NewAttribute(types.AttributeKeyPrice, winningBid.Amount.String()),
	))
	k.dispatchSaleHooks(ctx, types.SaleHookData{
		TokenId: ask.TokenId,
		Seller:  oldSeller,
		Buyer:   winningBid.Bidder,
	})
	k.dispatchAskHooks(ctx, types.HookActionUpdate, ask)
	return nil
}

// burnName expires an abandoned name: the remaining fund and every
// escrowed bid are refunded, the listing is removed and the NFT burned.
// The token becomes mintable again.
func (k Keeper) burnName(ctx sdk.Context, ask types.Ask) error {
	if ask.RenewalFund.IsPositive() {
		if err := k.releaseCoin(ctx, ask.Seller, ask.RenewalFund); err != nil {
			return err
		}
		ask.RenewalFund = sdkmath.ZeroInt()
	}

	var bids []types.Bid
	k.IterateBids(ctx, ask.TokenId, "", func(bid types.Bid) bool {
		bids = append(bids, bid)
		return false
	})
	for _, bid := range bids {
		if err := k.releaseCoin(ctx, bid.Bidder, bid.Amount); err != nil {
			return err
		}
		k.RemoveBid(ctx, bid)
		k.dispatchBidHooks(ctx, types.HookActionDelete, bid)
	}

	if err := k.collection.BurnNFT(ctx, ask.TokenId); err != nil {
		return err
	}
	k.RemoveRenewalQueueEntry(ctx, uint64(ask.RenewalTime.Unix()), ask.Id)
	k.RemoveAsk(ctx, ask)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBurn,
		sdk.NewAttribute(types.AttributeKeyTokenIdBurned, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeySeller, ask.Seller),
	))
	k.dispatchAskHooks(ctx, types.HookActionDelete, ask)
	return nil
}
