package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BankKeeper is the subset of the bank module the marketplace escrow uses.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	SendCoinsFromModuleToAccount(ctx context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
	GetBalance(ctx context.Context, addr sdk.AccAddress, denom string) sdk.Coin
}

// DistributionKeeper funds the community pool with the non-burned fee share.
type DistributionKeeper interface {
	FundCommunityPool(ctx context.Context, amount sdk.Coins, sender sdk.AccAddress) error
}

// CollectionKeeper is the name NFT collection boundary.
type CollectionKeeper interface {
	OwnerOf(ctx sdk.Context, tokenId string) (string, error)
	TransferNFT(ctx sdk.Context, tokenId, recipient string) error
	BurnNFT(ctx sdk.Context, tokenId string) error
}

// MinterKeeper exposes the minter parameters the marketplace consumes for
// renewal pricing and the fair burn split.
type MinterKeeper interface {
	MarketplaceParams(ctx sdk.Context) (MinterParams, error)
}

// HookRouter delivers observer notifications to registered hook targets.
// Implementations may dispatch to other modules or contracts; errors are
// swallowed by the caller, so a router can never abort a transaction.
type HookRouter interface {
	DispatchAskHook(ctx sdk.Context, target string, action HookAction, ask Ask) error
	DispatchBidHook(ctx sdk.Context, target string, action HookAction, bid Bid) error
	DispatchSaleHook(ctx sdk.Context, target string, sale SaleHookData) error
}
