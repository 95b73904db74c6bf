package keeper

import (
	"encoding/json"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	"github.com/names-chain/names/x/marketplace/types"
)

type Keeper struct {
	storeKey  storetypes.StoreKey
	logger    log.Logger
	authority string

	bankKeeper  types.BankKeeper
	distrKeeper types.DistributionKeeper
	collection  types.CollectionKeeper
	minter      types.MinterKeeper
	hookRouter  types.HookRouter
}

func NewKeeper(
	storeKey storetypes.StoreKey,
	logger log.Logger,
	authority string,
	bankKeeper types.BankKeeper,
	distrKeeper types.DistributionKeeper,
) *Keeper {
	return &Keeper{
		storeKey:    storeKey,
		logger:      logger.With("module", "x/"+types.ModuleName),
		authority:   authority,
		bankKeeper:  bankKeeper,
		distrKeeper: distrKeeper,
	}
}

func (k Keeper) GetAuthority() string { return k.authority }

func (k Keeper) Logger() log.Logger { return k.logger }

// SetCollectionKeeper wires the name collection after all modules exist.
// The marketplace, minter and collection reference each other, so the
// cycle is broken at wiring time rather than construction time.
func (k *Keeper) SetCollectionKeeper(collection types.CollectionKeeper) {
	k.collection = collection
}

func (k *Keeper) SetMinterKeeper(minter types.MinterKeeper) {
	k.minter = minter
}

// SetHookRouter installs the observer dispatch target. Optional; without a
// router, registered hooks are recorded but notifications are dropped.
func (k *Keeper) SetHookRouter(router types.HookRouter) {
	k.hookRouter = router
}

// ModuleAddress is the escrow account holding all bid amounts and renewal
// funds.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

func (k Keeper) mustMarshal(v any) []byte {
	bz, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return bz
}

func (k Keeper) mustUnmarshal(bz []byte, v any) {
	if err := json.Unmarshal(bz, v); err != nil {
		panic(err)
	}
}

// ---------------------------------------------------------------------
// Params

func (k Keeper) SetParams(ctx sdk.Context, params types.SudoParams) error {
	if err := params.Validate(); err != nil {
		return err
	}
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ParamsKey, k.mustMarshal(params))
	return nil
}

func (k Keeper) GetParams(ctx sdk.Context) types.SudoParams {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ParamsKey)
	if bz == nil {
		return types.DefaultParams()
	}
	var params types.SudoParams
	k.mustUnmarshal(bz, &params)
	return params
}

// ---------------------------------------------------------------------
// Setup / config

func (k Keeper) IsSetup(ctx sdk.Context) bool {
	return ctx.KVStore(k.storeKey).Has(types.IsSetupKey)
}

func (k Keeper) SetConfig(ctx sdk.Context, config types.Config) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.ConfigKey, k.mustMarshal(config))
	store.Set(types.IsSetupKey, []byte{1})
}

func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, error) {
	store := ctx.KVStore(k.storeKey)
	bz := store.Get(types.ConfigKey)
	if bz == nil {
		return types.Config{}, types.ErrNotSetup
	}
	var config types.Config
	k.mustUnmarshal(bz, &config)
	return config, nil
}

// ---------------------------------------------------------------------
// Asks

func (k Keeper) AskCount(ctx sdk.Context) uint64 {
	bz := ctx.KVStore(k.storeKey).Get(types.AskCountKey)
	if bz == nil {
		return 0
	}
	return types.DecodeUint64(bz)
}

func (k Keeper) setAskCount(ctx sdk.Context, count uint64) {
	ctx.KVStore(k.storeKey).Set(types.AskCountKey, types.EncodeUint64(count))
}

// NextAskId assigns a strictly increasing id. Ids are never reused; the
// count only grows, even as expired names drop out of the ask set.
func (k Keeper) NextAskId(ctx sdk.Context) uint64 {
	id := k.AskCount(ctx) + 1
	k.setAskCount(ctx, id)
	return id
}

func (k Keeper) GetAsk(ctx sdk.Context, tokenId types.TokenId) (types.Ask, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.AskKey(tokenId))
	if bz == nil {
		return types.Ask{}, types.ErrAskNotFound.Wrap(tokenId)
	}
	var ask types.Ask
	k.mustUnmarshal(bz, &ask)
	return ask, nil
}

func (k Keeper) HasAsk(ctx sdk.Context, tokenId types.TokenId) bool {
	return ctx.KVStore(k.storeKey).Has(types.AskKey(tokenId))
}

func (k Keeper) GetAskById(ctx sdk.Context, id uint64) (types.Ask, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.AskByIdKey(id))
	if bz == nil {
		return types.Ask{}, types.ErrAskNotFound.Wrapf("id %d", id)
	}
	return k.GetAsk(ctx, string(bz))
}

// SetAsk writes an ask and keeps the id and seller indices consistent
// with the primary entry.
func (k Keeper) SetAsk(ctx sdk.Context, ask types.Ask) {
	store := ctx.KVStore(k.storeKey)

	if prev, err := k.GetAsk(ctx, ask.TokenId); err == nil && prev.Seller != ask.Seller {
		store.Delete(types.AskBySellerKey(prev.Seller, prev.TokenId))
	}

	store.Set(types.AskKey(ask.TokenId), k.mustMarshal(ask))
	store.Set(types.AskByIdKey(ask.Id), []byte(ask.TokenId))
	store.Set(types.AskBySellerKey(ask.Seller, ask.TokenId), []byte{})
}

// RemoveAsk deletes an ask and its id and seller index entries. The ask
// count is left untouched so the id is never handed out again.
func (k Keeper) RemoveAsk(ctx sdk.Context, ask types.Ask) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.AskKey(ask.TokenId))
	store.Delete(types.AskByIdKey(ask.Id))
	store.Delete(types.AskBySellerKey(ask.Seller, ask.TokenId))
}

// IterateAsksById visits asks ordered by id ascending, starting after
// startAfter (exclusive; zero means from the beginning).
func (k Keeper) IterateAsksById(ctx sdk.Context, startAfter uint64, reverse bool, fn func(ask types.Ask) bool) {
	store := ctx.KVStore(k.storeKey)
	var it storetypes.Iterator
	if reverse {
		end := storetypes.PrefixEndBytes(types.AskByIdKeyPrefix)
		if startAfter != 0 {
			end = types.AskByIdKey(startAfter)
		}
		it = store.ReverseIterator(types.AskByIdKeyPrefix, end)
	} else {
		start := types.AskByIdKey(startAfter + 1)
		it = store.Iterator(start, storetypes.PrefixEndBytes(types.AskByIdKeyPrefix))
	}
	defer it.Close()

	for ; it.Valid(); it.Next() {
		ask, err := k.GetAsk(ctx, string(it.Value()))
		if err != nil {
			continue
		}
		if fn(ask) {
			return
		}
	}
}

func (k Keeper) IterateAsksBySeller(ctx sdk.Context, seller string, startAfter types.TokenId, fn func(ask types.Ask) bool) {
	store := ctx.KVStore(k.storeKey)
	prefix := types.AskBySellerIterPrefix(seller)
	start := prefix
	if startAfter != "" {
		// append a zero byte for an exclusive bound
		start = append(types.AskBySellerKey(seller, startAfter), 0x00)
	}
	it := store.Iterator(start, storetypes.PrefixEndBytes(prefix))
	defer it.Close()

	for ; it.Valid(); it.Next() {
		tokenId := string(it.Key()[len(prefix):])
		ask, err := k.GetAsk(ctx, tokenId)
		if err != nil {
			continue
		}
		if fn(ask) {
			return
		}
	}
}

// ---------------------------------------------------------------------
// Bids

func (k Keeper) GetBid(ctx sdk.Context, tokenId types.TokenId, bidder string) (types.Bid, error) {
	bz := ctx.KVStore(k.storeKey).Get(types.BidKey(tokenId, bidder))
	if bz == nil {
		return types.Bid{}, types.ErrBidNotFound.Wrapf("%s by %s", tokenId, bidder)
	}
	var bid types.Bid
	k.mustUnmarshal(bz, &bid)
	return bid, nil
}

func (k Keeper) HasBid(ctx sdk.Context, tokenId types.TokenId, bidder string) bool {
	return ctx.KVStore(k.storeKey).Has(types.BidKey(tokenId, bidder))
}

func (k Keeper) SetBid(ctx sdk.Context, bid types.Bid) {
	store := ctx.KVStore(k.storeKey)
	store.Set(types.BidKey(bid.TokenId, bid.Bidder), k.mustMarshal(bid))
	store.Set(types.BidByPriceKey(bid.TokenId, bid.Amount, bid.Bidder), []byte{})
	store.Set(types.BidByBidderKey(bid.Bidder, bid.TokenId), []byte{})
}

func (k Keeper) RemoveBid(ctx sdk.Context, bid types.Bid) {
	store := ctx.KVStore(k.storeKey)
	store.Delete(types.BidKey(bid.TokenId, bid.Bidder))
	store.Delete(types.BidByPriceKey(bid.TokenId, bid.Amount, bid.Bidder))
	store.Delete(types.BidByBidderKey(bid.Bidder, bid.TokenId))
}

func (k Keeper) IterateBids(ctx sdk.Context, tokenId types.TokenId, startAfter string, fn func(bid types.Bid) bool) {
	store := ctx.KVStore(k.storeKey)
	prefix := types.BidIterPrefix(tokenId)
	start := prefix
	if startAfter != "" {
		start = append(types.BidKey(tokenId, startAfter), 0x00)
	}
	it := store.Iterator(start, storetypes.PrefixEndBytes(prefix))
	defer it.Close()

	for ; it.Valid(); it.Next() {
		var bid types.Bid
		k.mustUnmarshal(it.Value(), &bid)
		if fn(bid) {
			return
		}
	}
}

func (k Keeper) IterateBidsByBidder(ctx sdk.Context, bidder string, startAfter types.TokenId, fn func(bid types.Bid) bool) {
	store := ctx.KVStore(k.storeKey)
	prefix := types.BidByBidderIterPrefix(bidder)
	start := prefix
	if startAfter != "" {
		start = append(types.BidByBidderKey(bidder, startAfter), 0x00)
	}
	it := store.Iterator(start, storetypes.PrefixEndBytes(prefix))
	defer it.Close()

	for ; it.Valid(); it.Next() {
		tokenId := string(it.Key()[len(prefix):])
		bid, err := k.GetBid(ctx, tokenId, bidder)
		if err != nil {
			continue
		}
		if fn(bid) {
			return
		}
	}
}

// IterateBidsByPriceDesc visits a token's bids from the highest amount
// down. Ties sort by bidder ascending within the same amount.
func (k Keeper) IterateBidsByPriceDesc(ctx sdk.Context, tokenId types.TokenId, fn func(bid types.Bid) bool) {
	store := ctx.KVStore(k.storeKey)
	prefix := types.BidByPriceIterPrefix(tokenId)
	it := storetypes.KVStoreReversePrefixIterator(store, prefix)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		_, bidder := types.ParseBidByPriceKey(it.Key(), tokenId)
		bid, err := k.GetBid(ctx, tokenId, bidder)
		if err != nil {
			continue
		}
		if fn(bid) {
			return
		}
	}
}

// IterateAllBidsByPrice walks the whole price index ordered by
// (token_id, amount, bidder), starting after the cursor when provided.
func (k Keeper) IterateAllBidsByPrice(ctx sdk.Context, startAfter *types.BidOffset, reverse bool, fn func(bid types.Bid) bool) {
	store := ctx.KVStore(k.storeKey)
	begin := types.BidByPriceKeyPrefix
	end := storetypes.PrefixEndBytes(types.BidByPriceKeyPrefix)

	var it storetypes.Iterator
	if reverse {
		if startAfter != nil {
			end = types.BidByPriceKey(startAfter.TokenId, startAfter.Price, startAfter.Bidder)
		}
		it = store.ReverseIterator(begin, end)
	} else {
		if startAfter != nil {
			begin = append(types.BidByPriceKey(startAfter.TokenId, startAfter.Price, startAfter.Bidder), 0x00)
		}
		it = store.Iterator(begin, end)
	}
	defer it.Close()

	for ; it.Valid(); it.Next() {
		key := it.Key()[len(types.BidByPriceKeyPrefix):]
		sepIdx := -1
		for i, b := range key {
			if b == 0x00 {
				sepIdx = i
				break
			}
		}
		if sepIdx < 0 || len(key) < sepIdx+1+16 {
			continue
		}
		tokenId := string(key[:sepIdx])
		bidder := string(key[sepIdx+1+16:])
		bid, err := k.GetBid(ctx, tokenId, bidder)
		if err != nil {
			continue
		}
		if fn(bid) {
			return
		}
	}
}

// ---------------------------------------------------------------------
// Renewal queue

func (k Keeper) AddRenewalQueueEntry(ctx sdk.Context, renewalTime uint64, askId uint64, tokenId types.TokenId) {
	ctx.KVStore(k.storeKey).Set(types.RenewalQueueKey(renewalTime, askId), []byte(tokenId))
}

func (k Keeper) RemoveRenewalQueueEntry(ctx sdk.Context, renewalTime uint64, askId uint64) {
	ctx.KVStore(k.storeKey).Delete(types.RenewalQueueKey(renewalTime, askId))
}

// IterateRenewalQueue visits queue entries in ascending (time, id) order
// up to and including maxTime.
func (k Keeper) IterateRenewalQueue(ctx sdk.Context, maxTime uint64, fn func(renewalTime, askId uint64, tokenId types.TokenId) bool) {
	store := ctx.KVStore(k.storeKey)
	end := storetypes.PrefixEndBytes(types.RenewalQueueTimeIterPrefix(maxTime))
	it := store.Iterator(types.RenewalQueueKeyPrefix, end)
	defer it.Close()

	for ; it.Valid(); it.Next() {
		renewalTime, askId := types.ParseRenewalQueueKey(it.Key())
		if fn(renewalTime, askId, string(it.Value())) {
			return
		}
	}
}

// RenewalQueueEntries returns all names queued at exactly the given time.
func (k Keeper) RenewalQueueEntries(ctx sdk.Context, renewalTime uint64) []types.TokenId {
	store := ctx.KVStore(k.storeKey)
	it := storetypes.KVStorePrefixIterator(store, types.RenewalQueueTimeIterPrefix(renewalTime))
	defer it.Close()

	var tokenIds []types.TokenId
	for ; it.Valid(); it.Next() {
		tokenIds = append(tokenIds, string(it.Value()))
	}
	return tokenIds
}

// ---------------------------------------------------------------------
// Money movement

func (k Keeper) escrowCoin(ctx sdk.Context, from string, amount sdkmath.Int) error {
	addr, err := sdk.AccAddressFromBech32(from)
	if err != nil {
		return types.ErrInvalidParams.Wrapf("escrow source: %s", err)
	}
	coins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, amount))
	return k.bankKeeper.SendCoinsFromAccountToModule(ctx, addr, types.ModuleName, coins)
}

func (k Keeper) releaseCoin(ctx sdk.Context, to string, amount sdkmath.Int) error {
	if amount.IsZero() {
		return nil
	}
	addr, err := sdk.AccAddressFromBech32(to)
	if err != nil {
		return types.ErrInvalidParams.Wrapf("escrow recipient: %s", err)
	}
	coins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, amount))
	return k.bankKeeper.SendCoinsFromModuleToAccount(ctx, types.ModuleName, addr, coins)
}

// chargeFees splits a protocol fee between fair burn and the community
// pool, out of coins already escrowed in the module account.
func (k Keeper) chargeFees(ctx sdk.Context, fee sdkmath.Int) error {
	if fee.IsZero() {
		return nil
	}
	fairBurnPercent := sdkmath.LegacyNewDecWithPrec(5, 1) // 50% unless the minter says otherwise
	if k.minter != nil {
		if params, err := k.minter.MarketplaceParams(ctx); err == nil {
			fairBurnPercent = params.FairBurnPercent
		}
	}

	burnAmount := fairBurnPercent.MulInt(fee).TruncateInt()
	poolAmount := fee.Sub(burnAmount)

	if burnAmount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, burnAmount))
		if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, coins); err != nil {
			return err
		}
	}
	if poolAmount.IsPositive() {
		coins := sdk.NewCoins(sdk.NewCoin(types.NativeDenom, poolAmount))
		if err := k.distrKeeper.FundCommunityPool(ctx, coins, ModuleAddress()); err != nil {
			return err
		}
	}
	return nil
}

// payout takes the trading fee out of an escrowed payment and releases
// the remainder to the recipient.
func (k Keeper) payout(ctx sdk.Context, payment sdkmath.Int, recipient string) error {
	params := k.GetParams(ctx)
	fee := params.TradingFeePercent.MulInt(payment).TruncateInt()
	if fee.GT(payment) {
		return types.ErrFeeExceedsPayment.Wrapf("fee %s on payment %s", fee, payment)
	}
	if err := k.chargeFees(ctx, fee); err != nil {
		return err
	}
	return k.releaseCoin(ctx, recipient, payment.Sub(fee))
}
