package keeper

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

type MsgServer struct {
	keeper *Keeper
}

func NewMsgServerImpl(k *Keeper) *MsgServer {
	return &MsgServer{keeper: k}
}

// SetAsk lists a newly minted name. Only the registered minter may call
// it; every mint produces exactly one ask that lives for the lifetime of
// the name.
func (ms *MsgServer) SetAsk(ctx sdk.Context, msg *types.MsgSetAsk) (*types.MsgSetAskResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	config, err := k.GetConfig(ctx)
	if err != nil {
		return nil, err
	}
	if msg.Sender != config.Minter {
		return nil, types.ErrUnauthorizedMinter.Wrap(msg.Sender)
	}
	if k.HasAsk(ctx, msg.TokenId) {
		return nil, types.ErrAlreadySetup.Wrapf("ask for %s exists", msg.TokenId)
	}

	ask := types.Ask{
		TokenId:     msg.TokenId,
		Id:          k.NextAskId(ctx),
		Seller:      msg.Seller,
		RenewalTime: ctx.BlockTime().Add(types.SecondsPerYear * time.Second),
		RenewalFund: sdkmath.ZeroInt(),
	}
	k.SetAsk(ctx, ask)
	k.AddRenewalQueueEntry(ctx, uint64(ask.RenewalTime.Unix()), ask.Id, ask.TokenId)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetAsk,
		sdk.NewAttribute(types.AttributeKeyTokenId, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeyAskId, sdkmath.NewIntFromUint64(ask.Id).String()),
		sdk.NewAttribute(types.AttributeKeySeller, ask.Seller),
		sdk.NewAttribute(types.AttributeKeyRenewalTime, ask.RenewalTime.UTC().Format(time.RFC3339)),
	))
	k.dispatchAskHooks(ctx, types.HookActionCreate, ask)

	return &types.MsgSetAskResponse{AskId: ask.Id}, nil
}

// SyncAsk realigns an ask's seller with the current NFT owner after a
// transfer that bypassed the marketplace. Anyone may call it.
func (ms *MsgServer) SyncAsk(ctx sdk.Context, msg *types.MsgSyncAsk) (*types.MsgSyncAskResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	ask, err := k.GetAsk(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	owner, err := k.collection.OwnerOf(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	if owner == ask.Seller {
		return nil, types.ErrAskUnchanged.Wrap(msg.TokenId)
	}

	ask.Seller = owner
	k.SetAsk(ctx, ask)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateAsk,
		sdk.NewAttribute(types.AttributeKeyTokenId, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeySeller, ask.Seller),
	))
	k.dispatchAskHooks(ctx, types.HookActionUpdate, ask)

	return &types.MsgSyncAskResponse{}, nil
}

// SetBid escrows an offer on a listed name. A repeat bid from the same
// bidder replaces the previous one: the old escrow is refunded in full
// before the new amount is locked, and the bid's age resets.
func (ms *MsgServer) SetBid(ctx sdk.Context, msg *types.MsgSetBid) (*types.MsgSetBidResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	ask, err := k.GetAsk(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	if msg.Sender == ask.Seller {
		return nil, types.ErrUnauthorized.Wrap("seller cannot bid on own name")
	}
	params := k.GetParams(ctx)
	if msg.Amount.Amount.LT(params.MinPrice) {
		return nil, types.ErrPriceTooSmall.Wrapf("%s below min price %s", msg.Amount.Amount, params.MinPrice)
	}

	action := types.HookActionCreate
	if prev, err := k.GetBid(ctx, msg.TokenId, msg.Sender); err == nil {
		if err := k.releaseCoin(ctx, prev.Bidder, prev.Amount); err != nil {
			return nil, err
		}
		k.RemoveBid(ctx, prev)
		action = types.HookActionUpdate
	}

	if err := k.escrowCoin(ctx, msg.Sender, msg.Amount.Amount); err != nil {
		return nil, err
	}
	bid := types.NewBid(msg.TokenId, msg.Sender, msg.Amount.Amount, ctx.BlockTime())
	k.SetBid(ctx, bid)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetBid,
		sdk.NewAttribute(types.AttributeKeyTokenId, bid.TokenId),
		sdk.NewAttribute(types.AttributeKeyBidder, bid.Bidder),
		sdk.NewAttribute(types.AttributeKeyAmount, bid.Amount.String()),
	))
	k.dispatchBidHooks(ctx, action, bid)

	return &types.MsgSetBidResponse{}, nil
}

// RemoveBid withdraws the sender's own bid and refunds its escrow.
func (ms *MsgServer) RemoveBid(ctx sdk.Context, msg *types.MsgRemoveBid) (*types.MsgRemoveBidResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	bid, err := k.GetBid(ctx, msg.TokenId, msg.Sender)
	if err != nil {
		return nil, err
	}
	if err := k.releaseCoin(ctx, bid.Bidder, bid.Amount); err != nil {
		return nil, err
	}
	k.RemoveBid(ctx, bid)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveBid,
		sdk.NewAttribute(types.AttributeKeyTokenId, bid.TokenId),
		sdk.NewAttribute(types.AttributeKeyBidder, bid.Bidder),
	))
	k.dispatchBidHooks(ctx, types.HookActionDelete, bid)

	return &types.MsgRemoveBidResponse{}, nil
}

// AcceptBid sells the name to a chosen bidder at their escrowed price.
// The sender must own the NFT; a stale ask seller is corrected before the
// sale settles so proceeds always reach the true owner.
func (ms *MsgServer) AcceptBid(ctx sdk.Context, msg *types.MsgAcceptBid) (*types.MsgAcceptBidResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	ask, err := k.GetAsk(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	owner, err := k.collection.OwnerOf(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	if msg.Sender != owner {
		return nil, types.ErrUnauthorizedOwner.Wrapf("%s does not own %s", msg.Sender, msg.TokenId)
	}
	if ask.Seller != owner {
		ask.Seller = owner
		k.SetAsk(ctx, ask)
	}

	bid, err := k.GetBid(ctx, msg.TokenId, msg.Bidder)
	if err != nil {
		return nil, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAcceptBid,
		sdk.NewAttribute(types.AttributeKeyTokenId, msg.TokenId),
		sdk.NewAttribute(types.AttributeKeySeller, ask.Seller),
		sdk.NewAttribute(types.AttributeKeyBidder, bid.Bidder),
		sdk.NewAttribute(types.AttributeKeyPrice, bid.Amount.String()),
	))

	if err := k.sellName(ctx, ask, bid); err != nil {
		return nil, err
	}
	return &types.MsgAcceptBidResponse{}, nil
}

// FundRenewal adds to a name's renewal escrow. The fund may never exceed
// the current renewal price, so an owner cannot park unbounded capital in
// the module account.
func (ms *MsgServer) FundRenewal(ctx sdk.Context, msg *types.MsgFundRenewal) (*types.MsgFundRenewalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	ask, err := k.GetAsk(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	renewalPrice, _, err := k.GetRenewalPriceAndBid(ctx, ctx.BlockTime(), msg.TokenId)
	if err != nil {
		return nil, err
	}
	newFund := ask.RenewalFund.Add(msg.Amount.Amount)
	if newFund.GT(renewalPrice) {
		return nil, types.ErrExcessiveRenewalFunds.Wrapf("fund %s exceeds renewal price %s", newFund, renewalPrice)
	}

	if err := k.escrowCoin(ctx, msg.Sender, msg.Amount.Amount); err != nil {
		return nil, err
	}
	ask.RenewalFund = newFund
	k.SetAsk(ctx, ask)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeFundRenewal,
		sdk.NewAttribute(types.AttributeKeyTokenId, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeyAmount, msg.Amount.Amount.String()),
		sdk.NewAttribute(types.AttributeKeyRenewalFund, ask.RenewalFund.String()),
	))
	return &types.MsgFundRenewalResponse{RenewalFund: ask.RenewalFund}, nil
}

// RefundRenewal returns the entire renewal escrow to the seller. Seller
// only.
func (ms *MsgServer) RefundRenewal(ctx sdk.Context, msg *types.MsgRefundRenewal) (*types.MsgRefundRenewalResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	ask, err := k.GetAsk(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	if msg.Sender != ask.Seller {
		return nil, types.ErrUnauthorized.Wrapf("%s is not the seller of %s", msg.Sender, msg.TokenId)
	}
	if !ask.RenewalFund.IsPositive() {
		return nil, types.ErrNoRenewalFund.Wrap(msg.TokenId)
	}

	refunded := ask.RenewalFund
	if err := k.releaseCoin(ctx, ask.Seller, refunded); err != nil {
		return nil, err
	}
	ask.RenewalFund = sdkmath.ZeroInt()
	k.SetAsk(ctx, ask)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRefundRenewal,
		sdk.NewAttribute(types.AttributeKeyTokenId, ask.TokenId),
		sdk.NewAttribute(types.AttributeKeyAmount, refunded.String()),
	))
	return &types.MsgRefundRenewalResponse{Refunded: refunded}, nil
}

// Renew extends the name by a year ahead of the deadline. Only callable
// inside the renew window; any payment attached tops up the fund first,
// and the fund must then cover the full renewal price.
func (ms *MsgServer) Renew(ctx sdk.Context, msg *types.MsgRenew) (*types.MsgRenewResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	ask, err := k.GetAsk(ctx, msg.TokenId)
	if err != nil {
		return nil, err
	}
	params := k.GetParams(ctx)
	windowStart := ask.RenewalTime.Add(-time.Duration(params.RenewWindow) * time.Second)
	if ctx.BlockTime().Before(windowStart) {
		return nil, types.ErrCannotProcessFutureRenewal.Wrapf("renew window for %s opens at %s", msg.TokenId, windowStart.UTC().Format(time.RFC3339))
	}

	renewalPrice, _, err := k.GetRenewalPriceAndBid(ctx, ctx.BlockTime(), msg.TokenId)
	if err != nil {
		return nil, err
	}

	if msg.Amount != nil {
		newFund := ask.RenewalFund.Add(msg.Amount.Amount)
		if newFund.GT(renewalPrice) {
			return nil, types.ErrExcessiveRenewalFunds.Wrapf("fund %s exceeds renewal price %s", newFund, renewalPrice)
		}
		if err := k.escrowCoin(ctx, msg.Sender, msg.Amount.Amount); err != nil {
			return nil, err
		}
		ask.RenewalFund = newFund
		k.SetAsk(ctx, ask)
	}

	if err := k.renewName(ctx, ask, renewalPrice); err != nil {
		return nil, err
	}
	return &types.MsgRenewResponse{RenewalPrice: renewalPrice}, nil
}

// ProcessRenewals drains due entries from the renewal queue. Operator
// only; renewals touch third-party escrow so the walk is not open to
// arbitrary senders.
func (ms *MsgServer) ProcessRenewals(ctx sdk.Context, msg *types.MsgProcessRenewals) (*types.MsgProcessRenewalsResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	params := k.GetParams(ctx)
	if params.Operator == "" || msg.Sender != params.Operator {
		return nil, types.ErrUnauthorizedOperator.Wrap(msg.Sender)
	}

	processed, err := k.ProcessRenewals(ctx, msg.Limit)
	if err != nil {
		return nil, err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeProcessRenewal,
		sdk.NewAttribute(types.AttributeKeyOperator, msg.Sender),
		sdk.NewAttribute(types.AttributeKeyAmount, sdkmath.NewInt(int64(processed)).String()),
	))
	return &types.MsgProcessRenewalsResponse{Processed: processed}, nil
}

// RemoveStaleBid evicts a bid older than stale_bid_duration. The caller
// earns a cut of the bid as a cleanup bounty; the rest refunds to the
// bidder.
func (ms *MsgServer) RemoveStaleBid(ctx sdk.Context, msg *types.MsgRemoveStaleBid) (*types.MsgRemoveStaleBidResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	k := ms.keeper

	bid, err := k.GetBid(ctx, msg.TokenId, msg.Bidder)
	if err != nil {
		return nil, err
	}
	params := k.GetParams(ctx)
	staleAt := bid.CreatedTime.Add(time.Duration(params.StaleBidDuration) * time.Second)
	if ctx.BlockTime().Before(staleAt) {
		return nil, types.ErrBidNotStale.Wrapf("%s by %s stale at %s", msg.TokenId, msg.Bidder, staleAt.UTC().Format(time.RFC3339))
	}

	reward := params.BidRemovalRewardPercent.MulInt(bid.Amount).TruncateInt()
	refund := bid.Amount.Sub(reward)

	if reward.IsPositive() {
		if err := k.releaseCoin(ctx, msg.Sender, reward); err != nil {
			return nil, err
		}
	}
	if err := k.releaseCoin(ctx, bid.Bidder, refund); err != nil {
		return nil, err
	}
	k.RemoveBid(ctx, bid)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveStaleBid,
		sdk.NewAttribute(types.AttributeKeyTokenId, bid.TokenId),
		sdk.NewAttribute(types.AttributeKeyBidder, bid.Bidder),
		sdk.NewAttribute(types.AttributeKeyOperator, msg.Sender),
		sdk.NewAttribute(types.AttributeKeyReward, reward.String()),
	))
	k.dispatchBidHooks(ctx, types.HookActionDelete, bid)

	return &types.MsgRemoveStaleBidResponse{Reward: reward}, nil
}
