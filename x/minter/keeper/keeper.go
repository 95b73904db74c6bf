package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"

	markettypes "github.com/names-chain/names/x/marketplace/types"
	"github.com/names-chain/names/x/minter/types"
	namestypes "github.com/names-chain/names/x/names/types"
)

type Keeper struct {
	logger    log.Logger
	authority string

	bankKeeper  types.BankKeeper
	distrKeeper types.DistributionKeeper
	collection  types.CollectionKeeper
	marketplace types.MarketplaceKeeper

	schema       collections.Schema
	params       collections.Item[types.Params]
	paused       collections.Item[bool]
	admin        collections.Item[string]
	whitelistSeq collections.Sequence
	whitelists   collections.Map[uint64, types.Whitelist]
	mintCounts   collections.Map[collections.Pair[uint64, string], uint64]
}

func NewKeeper(
	storeService store.KVStoreService,
	logger log.Logger,
	authority string,
	bankKeeper types.BankKeeper,
	distrKeeper types.DistributionKeeper,
) *Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		logger:       logger.With("module", "x/"+types.ModuleName),
		authority:    authority,
		bankKeeper:   bankKeeper,
		distrKeeper:  distrKeeper,
		params:       collections.NewItem(sb, collections.NewPrefix(0), "params", namestypes.JSONValue[types.Params]("params")),
		paused:       collections.NewItem(sb, collections.NewPrefix(1), "paused", collections.BoolValue),
		admin:        collections.NewItem(sb, collections.NewPrefix(2), "admin", collections.StringValue),
		whitelistSeq: collections.NewSequence(sb, collections.NewPrefix(3), "whitelist_seq"),
		whitelists:   collections.NewMap(sb, collections.NewPrefix(4), "whitelists", collections.Uint64Key, namestypes.JSONValue[types.Whitelist]("whitelist")),
		mintCounts: collections.NewMap(sb, collections.NewPrefix(5), "mint_counts",
			collections.PairKeyCodec(collections.Uint64Key, collections.StringKey), collections.Uint64Value),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema
	return k
}

func (k Keeper) GetAuthority() string { return k.authority }

func (k Keeper) Logger() log.Logger { return k.logger }

// SetCollectionKeeper and SetMarketplaceKeeper break the construction
// cycle between the three modules at wiring time.
func (k *Keeper) SetCollectionKeeper(collection types.CollectionKeeper) {
	k.collection = collection
}

func (k *Keeper) SetMarketplaceKeeper(marketplace types.MarketplaceKeeper) {
	k.marketplace = marketplace
}

// ModuleAddress is the account the minter acts as when minting and
// listing through the collection and marketplace.
func ModuleAddress() sdk.AccAddress {
	return authtypes.NewModuleAddress(types.ModuleName)
}

// ---------------------------------------------------------------------
// Params / admin / pause

func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	params, err := k.params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return params
}

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, params)
}

// MarketplaceParams exposes the pricing slice the marketplace consumes
// for renewal quotes and fee splits.
func (k Keeper) MarketplaceParams(ctx sdk.Context) (markettypes.MinterParams, error) {
	params := k.GetParams(ctx)
	return markettypes.MinterParams{
		BasePrice:       params.BasePrice,
		MinNameLength:   params.MinNameLength,
		MaxNameLength:   params.MaxNameLength,
		FairBurnPercent: params.FairBurnPercent,
	}, nil
}

func (k Keeper) IsPaused(ctx sdk.Context) bool {
	paused, err := k.paused.Get(ctx)
	if err != nil {
		return false
	}
	return paused
}

func (k Keeper) GetAdmin(ctx sdk.Context) string {
	admin, err := k.admin.Get(ctx)
	if err != nil {
		return ""
	}
	return admin
}

func (k Keeper) isPrivileged(ctx sdk.Context, sender string) bool {
	return sender == k.authority || sender == k.GetAdmin(ctx)
}

// SetPaused halts or resumes minting. Authority or admin.
func (k Keeper) SetPaused(ctx sdk.Context, sender string, paused bool) error {
	if !k.isPrivileged(ctx, sender) {
		return types.ErrUnauthorized.Wrap(sender)
	}
	if err := k.paused.Set(ctx, paused); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetPaused,
		sdk.NewAttribute(types.AttributeKeyPaused, boolString(paused)),
	))
	return nil
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// ---------------------------------------------------------------------
// Whitelists

func (k Keeper) GetWhitelist(ctx sdk.Context, id uint64) (types.Whitelist, error) {
	wl, err := k.whitelists.Get(ctx, id)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Whitelist{}, types.ErrWhitelistNotFound.Wrapf("id %d", id)
		}
		return types.Whitelist{}, err
	}
	return wl, nil
}

func (k Keeper) IterateWhitelists(ctx sdk.Context, fn func(wl types.Whitelist) bool) error {
	return k.whitelists.Walk(ctx, nil, func(_ uint64, wl types.Whitelist) (bool, error) {
		return fn(wl), nil
	})
}

// HasWhitelists reports whether minting is currently gated.
func (k Keeper) HasWhitelists(ctx sdk.Context) bool {
	found := false
	_ = k.IterateWhitelists(ctx, func(types.Whitelist) bool {
		found = true
		return true
	})
	return found
}

func (k Keeper) MintCount(ctx sdk.Context, whitelistId uint64, addr string) uint64 {
	count, err := k.mintCounts.Get(ctx, collections.Join(whitelistId, addr))
	if err != nil {
		return 0
	}
	return count
}

// ProcessAddress consumes one mint slot on a whitelist for an address.
func (k Keeper) ProcessAddress(ctx sdk.Context, wl types.Whitelist, addr string) error {
	count := k.MintCount(ctx, wl.Id, addr)
	if count >= uint64(wl.PerAddressLimit) {
		return types.ErrMintLimitReached.Wrapf("%s used %d of %d mints", addr, count, wl.PerAddressLimit)
	}
	return k.mintCounts.Set(ctx, collections.Join(wl.Id, addr), count+1)
}

// ---------------------------------------------------------------------
// Mint and list

// MintAndList registers a name, charges the mint fee and lists the name
// on the marketplace on behalf of the new owner.
func (k Keeper) MintAndList(ctx sdk.Context, sender, rawName string, payment *sdk.Coin) (sdkmath.Int, error) {
	if k.IsPaused(ctx) {
		return sdkmath.ZeroInt(), types.ErrMintingPaused
	}
	params := k.GetParams(ctx)
	name := types.CleanName(rawName)
	if err := types.ValidateName(name, params.MinNameLength, params.MaxNameLength); err != nil {
		return sdkmath.ZeroInt(), err
	}

	price := markettypes.CharPrice(params.BasePrice, len(name))
	price, err := k.applyWhitelists(ctx, sender, price)
	if err != nil {
		return sdkmath.ZeroInt(), err
	}

	if err := k.chargeMintFee(ctx, sender, price, payment, params.FairBurnPercent); err != nil {
		return sdkmath.ZeroInt(), err
	}

	moduleAddr := ModuleAddress().String()
	if err := k.collection.MintName(ctx, moduleAddr, name, sender); err != nil {
		return sdkmath.ZeroInt(), err
	}
	if _, err := k.marketplace.SetAsk(ctx, &markettypes.MsgSetAsk{
		Sender:  moduleAddr,
		TokenId: name,
		Seller:  sender,
	}); err != nil {
		return sdkmath.ZeroInt(), err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMintAndList,
		sdk.NewAttribute(types.AttributeKeyName, name),
		sdk.NewAttribute(types.AttributeKeyOwner, sender),
		sdk.NewAttribute(types.AttributeKeyPrice, price.String()),
	))
	return price, nil
}

// applyWhitelists enforces membership while any whitelist is configured
// and applies the discount of the first list with remaining capacity.
func (k Keeper) applyWhitelists(ctx sdk.Context, sender string, price sdkmath.Int) (sdkmath.Int, error) {
	if !k.HasWhitelists(ctx) {
		return price, nil
	}

	var chosen *types.Whitelist
	member := false
	err := k.IterateWhitelists(ctx, func(wl types.Whitelist) bool {
		if !wl.IncludesAddress(sender) {
			return false
		}
		member = true
		if k.MintCount(ctx, wl.Id, sender) < uint64(wl.PerAddressLimit) {
			w := wl
			chosen = &w
			return true
		}
		return false
	})
	if err != nil {
		return sdkmath.ZeroInt(), err
	}
	if chosen == nil {
		if member {
			return sdkmath.ZeroInt(), types.ErrMintLimitReached.Wrap(sender)
		}
		return sdkmath.ZeroInt(), types.ErrNotWhitelisted.Wrap(sender)
	}

	if err := k.ProcessAddress(ctx, *chosen, sender); err != nil {
		return sdkmath.ZeroInt(), err
	}
	if chosen.Discount != nil {
		price = chosen.Discount.Apply(price)
	}
	return price, nil
}

// chargeMintFee takes exact payment and splits it fair burn / community
// pool. A fully discounted mint requires no payment at all.
func (k Keeper) chargeMintFee(ctx sdk.Context, sender string, price sdkmath.Int, payment *sdk.Coin, fairBurnPercent sdkmath.LegacyDec) error {
	paid := sdkmath.ZeroInt()
	if payment != nil {
		if payment.Denom != markettypes.NativeDenom {
			return types.ErrIncorrectPayment.Wrapf("payment must be in %s", markettypes.NativeDenom)
		}
		paid = payment.Amount
	}
	if !paid.Equal(price) {
		return types.ErrIncorrectPayment.Wrapf("expected %s%s, got %s%s", price, markettypes.NativeDenom, paid, markettypes.NativeDenom)
	}
	if price.IsZero() {
		return nil
	}

	senderAddr, err := sdk.AccAddressFromBech32(sender)
	if err != nil {
		return types.ErrInvalidParams.Wrapf("sender: %s", err)
	}
	coins := sdk.NewCoins(sdk.NewCoin(markettypes.NativeDenom, price))
	if err := k.bankKeeper.SendCoinsFromAccountToModule(ctx, senderAddr, types.ModuleName, coins); err != nil {
		return err
	}

	burnAmount := fairBurnPercent.MulInt(price).TruncateInt()
	if burnAmount.IsPositive() {
		burn := sdk.NewCoins(sdk.NewCoin(markettypes.NativeDenom, burnAmount))
		if err := k.bankKeeper.BurnCoins(ctx, types.ModuleName, burn); err != nil {
			return err
		}
	}
	poolAmount := price.Sub(burnAmount)
	if poolAmount.IsPositive() {
		pool := sdk.NewCoins(sdk.NewCoin(markettypes.NativeDenom, poolAmount))
		if err := k.distrKeeper.FundCommunityPool(ctx, pool, ModuleAddress()); err != nil {
			return err
		}
	}
	return nil
}
