package keeper_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/names-chain/names/x/marketplace/keeper"
	"github.com/names-chain/names/x/marketplace/types"
)

var (
	authority  = sdk.AccAddress([]byte("authority___________")).String()
	minterAddr = sdk.AccAddress([]byte("minter______________")).String()
	collAddr   = sdk.AccAddress([]byte("collection__________")).String()
	operator   = sdk.AccAddress([]byte("operator____________")).String()
	seller     = sdk.AccAddress([]byte("seller______________")).String()
	bidder     = sdk.AccAddress([]byte("bidder______________")).String()
	bidder2    = sdk.AccAddress([]byte("bidder2_____________")).String()
)

var startTime = time.Unix(1_700_000_000, 0).UTC()

func secondsDuration(s uint64) time.Duration {
	return time.Duration(s) * time.Second
}

func ptr[T any](v T) *T {
	return &v
}

// mockBank is an in-memory bank keeping per-address balances of uname.
type mockBank struct {
	balances map[string]sdkmath.Int
	burned   sdkmath.Int
}

func newMockBank() *mockBank {
	return &mockBank{balances: make(map[string]sdkmath.Int), burned: sdkmath.ZeroInt()}
}

func (b *mockBank) balanceOf(addr string) sdkmath.Int {
	if bal, ok := b.balances[addr]; ok {
		return bal
	}
	return sdkmath.ZeroInt()
}

func (b *mockBank) fund(addr string, amount int64) {
	b.balances[addr] = b.balanceOf(addr).Add(sdkmath.NewInt(amount))
}

func (b *mockBank) move(from, to string, amt sdk.Coins) error {
	amount := amt.AmountOf(types.NativeDenom)
	if b.balanceOf(from).LT(amount) {
		return errors.New("insufficient funds")
	}
	b.balances[from] = b.balanceOf(from).Sub(amount)
	b.balances[to] = b.balanceOf(to).Add(amount)
	return nil
}

func (b *mockBank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.move(senderAddr.String(), keeper.ModuleAddress().String(), amt)
}

func (b *mockBank) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return b.move(keeper.ModuleAddress().String(), recipientAddr.String(), amt)
}

func (b *mockBank) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	amount := amt.AmountOf(types.NativeDenom)
	module := keeper.ModuleAddress().String()
	if b.balanceOf(module).LT(amount) {
		return errors.New("insufficient funds to burn")
	}
	b.balances[module] = b.balanceOf(module).Sub(amount)
	b.burned = b.burned.Add(amount)
	return nil
}

func (b *mockBank) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, b.balanceOf(addr.String()))
}

type mockDistr struct {
	bank *mockBank
	pool sdkmath.Int
}

func (d *mockDistr) FundCommunityPool(_ context.Context, amount sdk.Coins, sender sdk.AccAddress) error {
	amt := amount.AmountOf(types.NativeDenom)
	if d.bank.balanceOf(sender.String()).LT(amt) {
		return errors.New("insufficient funds for pool")
	}
	d.bank.balances[sender.String()] = d.bank.balanceOf(sender.String()).Sub(amt)
	d.pool = d.pool.Add(amt)
	return nil
}

type mockCollection struct {
	owners map[string]string
}

func (c *mockCollection) OwnerOf(_ sdk.Context, tokenId string) (string, error) {
	owner, ok := c.owners[tokenId]
	if !ok {
		return "", errors.New("token not found")
	}
	return owner, nil
}

func (c *mockCollection) TransferNFT(_ sdk.Context, tokenId, recipient string) error {
	if _, ok := c.owners[tokenId]; !ok {
		return errors.New("token not found")
	}
	c.owners[tokenId] = recipient
	return nil
}

func (c *mockCollection) BurnNFT(_ sdk.Context, tokenId string) error {
	if _, ok := c.owners[tokenId]; !ok {
		return errors.New("token not found")
	}
	delete(c.owners, tokenId)
	return nil
}

type mockMinter struct {
	params types.MinterParams
}

func (m *mockMinter) MarketplaceParams(_ sdk.Context) (types.MinterParams, error) {
	return m.params, nil
}

type fixture struct {
	t    *testing.T
	ctx  sdk.Context
	k    *keeper.Keeper
	ms   *keeper.MsgServer
	qs   *keeper.QueryServer
	bank *mockBank
	dist *mockDistr
	coll *mockCollection
}

func setup(t *testing.T) *fixture {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	testCtx := testutil.DefaultContextWithDB(t, key, tkey)
	ctx := testCtx.Ctx.WithBlockTime(startTime)

	bank := newMockBank()
	dist := &mockDistr{bank: bank, pool: sdkmath.ZeroInt()}
	coll := &mockCollection{owners: make(map[string]string)}
	minter := &mockMinter{params: types.MinterParams{
		BasePrice:       sdkmath.NewInt(100_000_000),
		MinNameLength:   3,
		MaxNameLength:   63,
		FairBurnPercent: sdkmath.LegacyNewDecWithPrec(5, 1),
	}}

	k := keeper.NewKeeper(key, log.NewNopLogger(), authority, bank, dist)
	k.SetCollectionKeeper(coll)
	k.SetMinterKeeper(minter)

	params := types.DefaultParams()
	params.Operator = operator
	require.NoError(t, k.SetParams(ctx, params))
	require.NoError(t, k.SudoSetup(ctx, authority, types.Config{
		Minter:     minterAddr,
		Collection: collAddr,
	}))

	return &fixture{
		t:    t,
		ctx:  ctx,
		k:    k,
		ms:   keeper.NewMsgServerImpl(k),
		qs:   keeper.NewQueryServerImpl(k),
		bank: bank,
		dist: dist,
		coll: coll,
	}
}

// mintAndList registers a name in the mock collection and lists it the
// way the minter module would.
func (f *fixture) mintAndList(tokenId, owner string) types.Ask {
	f.t.Helper()
	f.coll.owners[tokenId] = owner
	resp, err := f.ms.SetAsk(f.ctx, &types.MsgSetAsk{
		Sender:  minterAddr,
		TokenId: tokenId,
		Seller:  owner,
	})
	require.NoError(f.t, err)
	ask, err := f.k.GetAsk(f.ctx, tokenId)
	require.NoError(f.t, err)
	require.Equal(f.t, resp.AskId, ask.Id)
	return ask
}

func (f *fixture) placeBid(bdr, tokenId string, amount int64) {
	f.t.Helper()
	f.bank.fund(bdr, amount)
	_, err := f.ms.SetBid(f.ctx, &types.MsgSetBid{
		Sender:  bdr,
		TokenId: tokenId,
		Amount:  sdk.NewCoin(types.NativeDenom, sdkmath.NewInt(amount)),
	})
	require.NoError(f.t, err)
}

func (f *fixture) advance(d time.Duration) {
	f.ctx = f.ctx.WithBlockTime(f.ctx.BlockTime().Add(d))
}

func (f *fixture) requireInvariants() {
	f.t.Helper()
	for name, inv := range map[string]sdk.Invariant{
		"module-escrow": keeper.ModuleEscrowInvariant(*f.k),
		"ask-indices":   keeper.AskIndicesInvariant(*f.k),
		"renewal-queue": keeper.RenewalQueueInvariant(*f.k),
	} {
		msg, broken := inv(f.ctx)
		require.False(f.t, broken, "%s invariant broken: %s", name, msg)
	}
}

func TestSetupOnce(t *testing.T) {
	f := setup(t)

	err := f.k.SudoSetup(f.ctx, authority, types.Config{Minter: minterAddr, Collection: collAddr})
	require.ErrorIs(t, err, types.ErrAlreadySetup)

	config, err := f.k.GetConfig(f.ctx)
	require.NoError(t, err)
	require.Equal(t, minterAddr, config.Minter)
	require.Equal(t, collAddr, config.Collection)
}

func TestSetupRequiresAuthority(t *testing.T) {
	f := setup(t)
	err := f.k.SudoSetup(f.ctx, seller, types.Config{Minter: minterAddr, Collection: collAddr})
	require.ErrorIs(t, err, types.ErrUnauthorized)
}

func TestAskIdsMonotonic(t *testing.T) {
	f := setup(t)

	first := f.mintAndList("alice", seller)
	second := f.mintAndList("bobby", seller)
	third := f.mintAndList("carol", bidder)

	require.Equal(t, uint64(1), first.Id)
	require.Equal(t, uint64(2), second.Id)
	require.Equal(t, uint64(3), third.Id)
	require.Equal(t, uint64(3), f.k.AskCount(f.ctx))
	f.requireInvariants()
}

func TestAskSellerIndex(t *testing.T) {
	f := setup(t)
	f.mintAndList("alice", seller)
	f.mintAndList("bobby", seller)
	f.mintAndList("carol", bidder)

	asks := f.qs.AsksBySeller(f.ctx, seller, "", 0)
	require.Len(t, asks, 2)
	for _, ask := range asks {
		require.Equal(t, seller, ask.Seller)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	f := setup(t)
	f.mintAndList("alice", seller)
	f.mintAndList("bobby", seller)
	f.placeBid(bidder, "alice", 50_000_000)
	f.placeBid(bidder2, "alice", 70_000_000)

	exported := f.k.ExportGenesis(f.ctx)
	require.Len(t, exported.Asks, 2)
	require.Len(t, exported.Bids, 2)
	require.Equal(t, uint64(2), exported.AskCount)
	require.NotNil(t, exported.Config)

	// Import into a fresh store and compare a re-export.
	g := setup(t)
	require.NoError(t, g.k.InitGenesis(g.ctx, exported))
	reexported := g.k.ExportGenesis(g.ctx)
	require.Equal(t, exported.Params, reexported.Params)
	require.Equal(t, exported.Asks, reexported.Asks)
	require.Equal(t, exported.Bids, reexported.Bids)
	require.Equal(t, exported.AskCount, reexported.AskCount)

	// Derived state must be rebuilt, not just the primaries.
	ask, err := g.k.GetAsk(g.ctx, "alice")
	require.NoError(t, err)
	entries := g.k.RenewalQueueEntries(g.ctx, uint64(ask.RenewalTime.Unix()))
	require.Contains(t, entries, "alice")
}

func TestGenesisValidateRejectsOrphanBid(t *testing.T) {
	gs := types.DefaultGenesis()
	gs.Bids = []types.Bid{{TokenId: "ghost", Bidder: bidder, Amount: sdkmath.NewInt(1), CreatedTime: startTime}}
	require.Error(t, gs.Validate())
}
