package types

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	markettypes "github.com/names-chain/names/x/marketplace/types"
)

// BankKeeper moves mint payments into the module account for burning and
// pool funding.
type BankKeeper interface {
	SendCoinsFromAccountToModule(ctx context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error
	BurnCoins(ctx context.Context, moduleName string, amt sdk.Coins) error
}

type DistributionKeeper interface {
	FundCommunityPool(ctx context.Context, amount sdk.Coins, sender sdk.AccAddress) error
}

// CollectionKeeper mints the name NFT.
type CollectionKeeper interface {
	MintName(ctx sdk.Context, sender, tokenId, owner string) error
}

// MarketplaceKeeper lists a freshly minted name for its owner.
type MarketplaceKeeper interface {
	SetAsk(ctx sdk.Context, msg *markettypes.MsgSetAsk) (*markettypes.MsgSetAskResponse, error)
}
