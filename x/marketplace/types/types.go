package types

import (
	"time"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	ModuleName = "marketplace"
	StoreKey   = ModuleName

	// NativeDenom is the only denomination the marketplace escrows.
	NativeDenom = "uname"

	// SecondsPerYear is the renewal cycle for every name.
	SecondsPerYear = 31536000

	// MaxHooksPerKind caps each observer registry.
	MaxHooksPerKind = 5

	// Basis point fees can not exceed 100%.
	MaxFeeBps = 10000
)

// TokenId is a registered name. Validation happens at mint time in the
// minter module; the marketplace treats it as an opaque key.
type TokenId = string

// Ask is a listing of a name. One ask exists per minted name for as long
// as the name exists; a sale rewrites it in place with a new seller.
type Ask struct {
	TokenId     TokenId     `json:"token_id"`
	Id          uint64      `json:"id"`
	Seller      string      `json:"seller"`
	RenewalTime time.Time   `json:"renewal_time"`
	RenewalFund sdkmath.Int `json:"renewal_fund"`
}

// Bid is an escrowed offer on a name by a specific bidder.
type Bid struct {
	TokenId     TokenId     `json:"token_id"`
	Bidder      string      `json:"bidder"`
	Amount      sdkmath.Int `json:"amount"`
	CreatedTime time.Time   `json:"created_time"`
}

func NewBid(tokenId TokenId, bidder string, amount sdkmath.Int, createdTime time.Time) Bid {
	return Bid{
		TokenId:     tokenId,
		Bidder:      bidder,
		Amount:      amount,
		CreatedTime: createdTime,
	}
}

// SudoParams are the governance-tunable marketplace parameters.
type SudoParams struct {
	// Fair Burn + Community Pool fee taken from every winning bid
	TradingFeePercent sdkmath.LegacyDec `json:"trading_fee_percent"`
	// Min value for a bid
	MinPrice sdkmath.Int `json:"min_price"`
	// Interval to rate limit setting asks (in seconds)
	AskInterval uint64 `json:"ask_interval"`
	// The maximum number of renewals that can be processed in each block
	MaxRenewalsPerBlock uint32 `json:"max_renewals_per_block"`
	// The number of bids to scan when searching for the highest valid bid
	ValidBidQueryLimit uint32 `json:"valid_bid_query_limit"`
	// The number of seconds a bid must have aged before the current block
	// time in order to count toward renewal pricing
	RenewWindow uint64 `json:"renew_window"`
	// The fraction of the winning bid that must be paid to renew a name
	RenewalBidPercentage sdkmath.LegacyDec `json:"renewal_bid_percentage"`
	// The address with permission to invoke ProcessRenewals
	Operator string `json:"operator"`
	// Seconds after creation at which a bid becomes stale
	StaleBidDuration uint64 `json:"stale_bid_duration"`
	// Fraction of a stale bid paid to whoever removes it
	BidRemovalRewardPercent sdkmath.LegacyDec `json:"bid_removal_reward_percent"`
}

func DefaultParams() SudoParams {
	return SudoParams{
		TradingFeePercent:       sdkmath.LegacyNewDecWithPrec(2, 2),  // 2%
		MinPrice:                sdkmath.NewInt(5_000_000),
		AskInterval:             60,
		MaxRenewalsPerBlock:     20,
		ValidBidQueryLimit:      10,
		RenewWindow:             60 * 60 * 24 * 30, // 30 days
		RenewalBidPercentage:    sdkmath.LegacyNewDecWithPrec(5, 3), // 0.5%
		Operator:                "",
		StaleBidDuration:        60 * 60 * 24 * 180,
		BidRemovalRewardPercent: sdkmath.LegacyNewDecWithPrec(5, 3),
	}
}

func (p SudoParams) Validate() error {
	if p.TradingFeePercent.IsNegative() || p.TradingFeePercent.GT(sdkmath.LegacyOneDec()) {
		return ErrInvalidTradingFeeBps.Wrapf("%s", p.TradingFeePercent)
	}
	if p.BidRemovalRewardPercent.IsNegative() || p.BidRemovalRewardPercent.GT(sdkmath.LegacyOneDec()) {
		return ErrInvalidBidRemovalRewardBps.Wrapf("%s", p.BidRemovalRewardPercent)
	}
	if p.RenewalBidPercentage.IsNegative() || p.RenewalBidPercentage.GT(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrapf("renewal bid percentage %s", p.RenewalBidPercentage)
	}
	if p.MinPrice.IsNil() || p.MinPrice.IsNegative() {
		return ErrInvalidPrice
	}
	if p.MaxRenewalsPerBlock == 0 {
		return ErrInvalidParams.Wrap("max renewals per block cannot be zero")
	}
	if p.ValidBidQueryLimit == 0 {
		return ErrInvalidParams.Wrap("valid bid query limit cannot be zero")
	}
	if p.Operator != "" {
		if _, err := sdk.AccAddressFromBech32(p.Operator); err != nil {
			return ErrInvalidParams.Wrapf("operator: %s", err)
		}
	}
	return nil
}

// Config holds the collaborator addresses stored by the one-time Setup call.
type Config struct {
	Minter     string `json:"minter"`
	Collection string `json:"collection"`
}

// MinterParams is the slice of the minter's parameters the marketplace
// consumes for renewal pricing and fee splitting.
type MinterParams struct {
	BasePrice       sdkmath.Int       `json:"base_price"`
	MinNameLength   uint32            `json:"min_name_length"`
	MaxNameLength   uint32            `json:"max_name_length"`
	FairBurnPercent sdkmath.LegacyDec `json:"fair_burn_percent"`
}

// BidOffset is the pagination cursor for price-sorted bid queries.
type BidOffset struct {
	Price   sdkmath.Int `json:"price"`
	TokenId TokenId     `json:"token_id"`
	Bidder  string      `json:"bidder"`
}

func NewBidOffset(price sdkmath.Int, tokenId TokenId, bidder string) BidOffset {
	return BidOffset{Price: price, TokenId: tokenId, Bidder: bidder}
}

// AskRenewPrice is a renewal quote for one name.
type AskRenewPrice struct {
	TokenId TokenId  `json:"token_id"`
	Price   sdk.Coin `json:"price"`
	Bid     *Bid     `json:"bid,omitempty"`
}

// CharPrice returns the registration/renewal floor price for a name of the
// given length. Three character names are the most expensive tier; names
// shorter than three characters are rejected at mint time.
func CharPrice(basePrice sdkmath.Int, nameLen int) sdkmath.Int {
	switch nameLen {
	case 3:
		return basePrice.MulRaw(100)
	case 4:
		return basePrice.MulRaw(10)
	default:
		return basePrice
	}
}
