package keeper_test

import (
	"context"
	"errors"
	"testing"

	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"
	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"
	authtypes "github.com/cosmos/cosmos-sdk/x/auth/types"
	"github.com/stretchr/testify/require"

	markettypes "github.com/names-chain/names/x/marketplace/types"
	"github.com/names-chain/names/x/minter/keeper"
	"github.com/names-chain/names/x/minter/types"
)

var (
	authority = sdk.AccAddress([]byte("authority___________")).String()
	admin     = sdk.AccAddress([]byte("admin_______________")).String()
	alice     = sdk.AccAddress([]byte("alice_______________")).String()
	bob       = sdk.AccAddress([]byte("bob_________________")).String()
)

// mockBank tracks per-address balances plus a running burn total.
type mockBank struct {
	balances map[string]sdkmath.Int
	burned   sdkmath.Int
}

func newMockBank() *mockBank {
	return &mockBank{balances: map[string]sdkmath.Int{}, burned: sdkmath.ZeroInt()}
}

func (b *mockBank) fund(addr string, amount int64) {
	b.balances[addr] = b.balanceOf(addr).Add(sdkmath.NewInt(amount))
}

func (b *mockBank) balanceOf(addr string) sdkmath.Int {
	bal, ok := b.balances[addr]
	if !ok {
		return sdkmath.ZeroInt()
	}
	return bal
}

func (b *mockBank) move(from, to string, amount sdkmath.Int) error {
	bal := b.balanceOf(from)
	if bal.LT(amount) {
		return errors.New("insufficient funds")
	}
	b.balances[from] = bal.Sub(amount)
	b.balances[to] = b.balanceOf(to).Add(amount)
	return nil
}

func (b *mockBank) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return b.move(senderAddr.String(), authtypes.NewModuleAddress(recipientModule).String(), amt.AmountOf(markettypes.NativeDenom))
}

func (b *mockBank) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	amount := amt.AmountOf(markettypes.NativeDenom)
	moduleAddr := authtypes.NewModuleAddress(moduleName).String()
	bal := b.balanceOf(moduleAddr)
	if bal.LT(amount) {
		return errors.New("insufficient funds to burn")
	}
	b.balances[moduleAddr] = bal.Sub(amount)
	b.burned = b.burned.Add(amount)
	return nil
}

type mockDistr struct {
	bank *mockBank
	pool sdkmath.Int
}

func (d *mockDistr) FundCommunityPool(_ context.Context, amount sdk.Coins, sender sdk.AccAddress) error {
	amt := amount.AmountOf(markettypes.NativeDenom)
	bal := d.bank.balanceOf(sender.String())
	if bal.LT(amt) {
		return errors.New("insufficient funds for pool")
	}
	d.bank.balances[sender.String()] = bal.Sub(amt)
	d.pool = d.pool.Add(amt)
	return nil
}

type mintedName struct {
	sender  string
	tokenId string
	owner   string
}

type mockCollection struct {
	minted []mintedName
}

func (c *mockCollection) MintName(_ sdk.Context, sender, tokenId, owner string) error {
	for _, m := range c.minted {
		if m.tokenId == tokenId {
			return errors.New("token already minted")
		}
	}
	c.minted = append(c.minted, mintedName{sender: sender, tokenId: tokenId, owner: owner})
	return nil
}

type mockMarketplace struct {
	asks []*markettypes.MsgSetAsk
}

func (m *mockMarketplace) SetAsk(_ sdk.Context, msg *markettypes.MsgSetAsk) (*markettypes.MsgSetAskResponse, error) {
	m.asks = append(m.asks, msg)
	return &markettypes.MsgSetAskResponse{AskId: uint64(len(m.asks))}, nil
}

type fixture struct {
	ctx    sdk.Context
	k      *keeper.Keeper
	ms     *keeper.MsgServer
	qs     *keeper.QueryServer
	bank   *mockBank
	dist   *mockDistr
	coll   *mockCollection
	market *mockMarketplace
}

func setup(t *testing.T) *fixture {
	t.Helper()
	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey("transient_test")
	testCtx := testutil.DefaultContextWithDB(t, key, tkey)

	bank := newMockBank()
	dist := &mockDistr{bank: bank, pool: sdkmath.ZeroInt()}
	coll := &mockCollection{}
	market := &mockMarketplace{}

	k := keeper.NewKeeper(runtime.NewKVStoreService(key), log.NewNopLogger(), authority, bank, dist)
	k.SetCollectionKeeper(coll)
	k.SetMarketplaceKeeper(market)

	ctx := testCtx.Ctx
	require.NoError(t, k.SetParams(ctx, types.DefaultParams()))

	return &fixture{
		ctx:    ctx,
		k:      k,
		ms:     keeper.NewMsgServerImpl(k),
		qs:     keeper.NewQueryServerImpl(k),
		bank:   bank,
		dist:   dist,
		coll:   coll,
		market: market,
	}
}

// mint funds the sender and submits a mint-and-list with an exact payment.
// A negative amount sends no payment at all.
func (f *fixture) mint(t *testing.T, sender, name string, amount int64) (*types.MsgMintAndListResponse, error) {
	t.Helper()
	msg := &types.MsgMintAndList{Sender: sender, Name: name}
	if amount >= 0 {
		f.bank.fund(sender, amount)
		payment := sdk.NewCoin(markettypes.NativeDenom, sdkmath.NewInt(amount))
		msg.Payment = &payment
	}
	return f.ms.MintAndList(f.ctx, msg)
}

func TestMintAndList(t *testing.T) {
	f := setup(t)

	resp, err := f.mint(t, alice, "alice", 100_000_000)
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Name)
	require.Equal(t, sdkmath.NewInt(100_000_000), resp.Price)

	moduleAddr := keeper.ModuleAddress().String()
	require.Len(t, f.coll.minted, 1)
	require.Equal(t, mintedName{sender: moduleAddr, tokenId: "alice", owner: alice}, f.coll.minted[0])

	require.Len(t, f.market.asks, 1)
	require.Equal(t, moduleAddr, f.market.asks[0].Sender)
	require.Equal(t, "alice", f.market.asks[0].TokenId)
	require.Equal(t, alice, f.market.asks[0].Seller)

	// 50% burned, 50% to the community pool, nothing left anywhere.
	require.Equal(t, sdkmath.NewInt(50_000_000), f.bank.burned)
	require.Equal(t, sdkmath.NewInt(50_000_000), f.dist.pool)
	require.True(t, f.bank.balanceOf(alice).IsZero())
	require.True(t, f.bank.balanceOf(moduleAddr).IsZero())
}

func TestMintNormalizesName(t *testing.T) {
	f := setup(t)

	resp, err := f.mint(t, alice, "  ALICE \n", 100_000_000)
	require.NoError(t, err)
	require.Equal(t, "alice", resp.Name)
	require.Equal(t, "alice", f.coll.minted[0].tokenId)
}

func TestMintPricingTiers(t *testing.T) {
	f := setup(t)

	price, err := f.qs.MintPrice(f.ctx, "abc")
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(10_000_000_000), price)

	price, err = f.qs.MintPrice(f.ctx, "abcd")
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(1_000_000_000), price)

	price, err = f.qs.MintPrice(f.ctx, "abcde")
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(100_000_000), price)

	resp, err := f.mint(t, alice, "abc", 10_000_000_000)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(10_000_000_000), resp.Price)
}

func TestMintRejectsInvalidNames(t *testing.T) {
	f := setup(t)

	_, err := f.mint(t, alice, "ab", 100_000_000)
	require.ErrorIs(t, err, types.ErrNameTooShort)

	_, err = f.mint(t, alice, "bad_name", 100_000_000)
	require.ErrorIs(t, err, types.ErrInvalidName)

	_, err = f.mint(t, alice, "xn--abc", 100_000_000)
	require.ErrorIs(t, err, types.ErrInvalidName)
}

func TestMintExactPaymentRequired(t *testing.T) {
	f := setup(t)

	_, err := f.mint(t, alice, "alice", 99_999_999)
	require.ErrorIs(t, err, types.ErrIncorrectPayment)

	_, err = f.mint(t, alice, "alice", 100_000_001)
	require.ErrorIs(t, err, types.ErrIncorrectPayment)

	// No payment while the price is positive.
	_, err = f.mint(t, alice, "alice", -1)
	require.ErrorIs(t, err, types.ErrIncorrectPayment)

	f.bank.fund(alice, 100_000_000)
	payment := sdk.NewCoin("uother", sdkmath.NewInt(100_000_000))
	_, err = f.ms.MintAndList(f.ctx, &types.MsgMintAndList{Sender: alice, Name: "alice", Payment: &payment})
	require.ErrorIs(t, err, types.ErrIncorrectPayment)

	require.Empty(t, f.coll.minted)
}

func TestMintPaused(t *testing.T) {
	f := setup(t)

	require.ErrorIs(t, f.ms.SetPaused(f.ctx, &types.MsgSetPaused{Sender: alice, Paused: true}), types.ErrUnauthorized)

	require.NoError(t, f.ms.SetPaused(f.ctx, &types.MsgSetPaused{Sender: authority, Paused: true}))
	require.True(t, f.qs.Paused(f.ctx))

	_, err := f.mint(t, alice, "alice", 100_000_000)
	require.ErrorIs(t, err, types.ErrMintingPaused)

	require.NoError(t, f.ms.SetPaused(f.ctx, &types.MsgSetPaused{Sender: authority, Paused: false}))
	_, err = f.ms.MintAndList(f.ctx, &types.MsgMintAndList{
		Sender:  alice,
		Name:    "alice",
		Payment: ptr(sdk.NewCoin(markettypes.NativeDenom, sdkmath.NewInt(100_000_000))),
	})
	require.NoError(t, err)
}

func TestWhitelistGatesMinting(t *testing.T) {
	f := setup(t)

	id, err := f.k.AddWhitelist(f.ctx, authority, types.Whitelist{
		Addresses:       []string{alice},
		PerAddressLimit: 2,
	})
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	_, err = f.mint(t, bob, "bobby", 100_000_000)
	require.ErrorIs(t, err, types.ErrNotWhitelisted)

	_, err = f.mint(t, alice, "alice", 100_000_000)
	require.NoError(t, err)
	_, err = f.mint(t, alice, "alice2", 100_000_000)
	require.NoError(t, err)
	require.Equal(t, uint64(2), f.qs.MintCount(f.ctx, id, alice))

	_, err = f.mint(t, alice, "alice3", 100_000_000)
	require.ErrorIs(t, err, types.ErrMintLimitReached)

	// Dropping the last whitelist reopens minting for everyone.
	require.NoError(t, f.k.RemoveWhitelist(f.ctx, authority, id))
	_, err = f.mint(t, bob, "bobby", 100_000_000)
	require.NoError(t, err)
}

func TestWhitelistFlatrateDiscount(t *testing.T) {
	f := setup(t)

	_, err := f.k.AddWhitelist(f.ctx, authority, types.Whitelist{
		Addresses:       []string{alice},
		PerAddressLimit: 5,
		Discount:        &types.Discount{Type: types.DiscountFlatrate, Flatrate: sdkmath.NewInt(40_000_000)},
	})
	require.NoError(t, err)

	resp, err := f.mint(t, alice, "alice", 60_000_000)
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(60_000_000), resp.Price)
	require.Equal(t, sdkmath.NewInt(30_000_000), f.bank.burned)
	require.Equal(t, sdkmath.NewInt(30_000_000), f.dist.pool)
}

func TestWhitelistFullDiscountMintsFree(t *testing.T) {
	f := setup(t)

	_, err := f.k.AddWhitelist(f.ctx, authority, types.Whitelist{
		Addresses:       []string{alice},
		PerAddressLimit: 1,
		Discount:        &types.Discount{Type: types.DiscountPercent, Percent: sdkmath.LegacyOneDec()},
	})
	require.NoError(t, err)

	resp, err := f.ms.MintAndList(f.ctx, &types.MsgMintAndList{Sender: alice, Name: "alice"})
	require.NoError(t, err)
	require.True(t, resp.Price.IsZero())
	require.True(t, f.bank.burned.IsZero())
	require.True(t, f.dist.pool.IsZero())
	require.Len(t, f.coll.minted, 1)
}

func TestWhitelistIdsMonotonic(t *testing.T) {
	f := setup(t)

	wl := types.Whitelist{Addresses: []string{alice}, PerAddressLimit: 1}
	id1, err := f.k.AddWhitelist(f.ctx, authority, wl)
	require.NoError(t, err)
	id2, err := f.k.AddWhitelist(f.ctx, authority, wl)
	require.NoError(t, err)
	require.Equal(t, id1+1, id2)

	require.NoError(t, f.k.RemoveWhitelist(f.ctx, authority, id2))
	_, err = f.k.GetWhitelist(f.ctx, id2)
	require.ErrorIs(t, err, types.ErrWhitelistNotFound)

	// Ids are never reused.
	id3, err := f.k.AddWhitelist(f.ctx, authority, wl)
	require.NoError(t, err)
	require.Equal(t, id2+1, id3)
}

func TestWhitelistPrivileged(t *testing.T) {
	f := setup(t)

	wl := types.Whitelist{Addresses: []string{alice}, PerAddressLimit: 1}
	_, err := f.k.AddWhitelist(f.ctx, alice, wl)
	require.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, f.k.SudoSetAdmin(f.ctx, authority, admin))
	id, err := f.k.AddWhitelist(f.ctx, admin, wl)
	require.NoError(t, err)

	require.ErrorIs(t, f.k.RemoveWhitelist(f.ctx, bob, id), types.ErrUnauthorized)
	require.NoError(t, f.k.RemoveWhitelist(f.ctx, admin, id))
}

func TestSudoSetAdmin(t *testing.T) {
	f := setup(t)

	require.ErrorIs(t, f.k.SudoSetAdmin(f.ctx, alice, admin), types.ErrUnauthorized)

	require.NoError(t, f.k.SudoSetAdmin(f.ctx, authority, admin))
	require.Equal(t, admin, f.qs.Admin(f.ctx))
	require.NoError(t, f.ms.SetPaused(f.ctx, &types.MsgSetPaused{Sender: admin, Paused: true}))

	// Clearing the admin revokes its privileges.
	require.NoError(t, f.k.SudoSetAdmin(f.ctx, authority, ""))
	require.ErrorIs(t, f.ms.SetPaused(f.ctx, &types.MsgSetPaused{Sender: admin, Paused: false}), types.ErrUnauthorized)
}

func TestSudoUpdateParams(t *testing.T) {
	f := setup(t)

	params := types.DefaultParams()
	params.BasePrice = sdkmath.NewInt(200_000_000)
	require.ErrorIs(t, f.k.SudoUpdateParams(f.ctx, alice, params), types.ErrUnauthorized)

	require.NoError(t, f.k.SudoUpdateParams(f.ctx, authority, params))
	require.Equal(t, sdkmath.NewInt(200_000_000), f.qs.Params(f.ctx).BasePrice)

	price, err := f.qs.MintPrice(f.ctx, "abcde")
	require.NoError(t, err)
	require.Equal(t, sdkmath.NewInt(200_000_000), price)
}

func TestGenesisRoundTrip(t *testing.T) {
	f := setup(t)

	require.NoError(t, f.k.SudoSetAdmin(f.ctx, authority, admin))
	id, err := f.k.AddWhitelist(f.ctx, authority, types.Whitelist{
		Addresses:       []string{alice},
		PerAddressLimit: 3,
	})
	require.NoError(t, err)
	_, err = f.mint(t, alice, "alice", 100_000_000)
	require.NoError(t, err)
	require.NoError(t, f.ms.SetPaused(f.ctx, &types.MsgSetPaused{Sender: admin, Paused: true}))

	exported, err := f.k.ExportGenesis(f.ctx)
	require.NoError(t, err)
	require.NoError(t, exported.Validate())
	require.True(t, exported.Paused)
	require.Equal(t, admin, exported.Admin)
	require.Equal(t, id, exported.WhitelistCount)
	require.Len(t, exported.Whitelists, 1)
	require.Equal(t, []types.MintCount{{WhitelistId: id, Address: alice, Count: 1}}, exported.MintCounts)

	f2 := setup(t)
	require.NoError(t, f2.k.InitGenesis(f2.ctx, exported))
	reExported, err := f2.k.ExportGenesis(f2.ctx)
	require.NoError(t, err)
	require.Equal(t, exported, reExported)
}

func TestGenesisValidateRejectsOrphanCounts(t *testing.T) {
	gs := types.DefaultGenesis()
	gs.MintCounts = []types.MintCount{{WhitelistId: 7, Address: alice, Count: 1}}
	require.ErrorIs(t, gs.Validate(), types.ErrWhitelistNotFound)
}

func ptr[T any](v T) *T { return &v }
