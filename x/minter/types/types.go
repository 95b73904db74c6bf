package types

import (
	sdkmath "cosmossdk.io/math"
)

const (
	ModuleName = "minter"
	StoreKey   = ModuleName
)

// Params are the registration pricing knobs.
type Params struct {
	// Floor price for a 5+ character name; shorter names cost 10x / 100x.
	BasePrice     sdkmath.Int `json:"base_price"`
	MinNameLength uint32      `json:"min_name_length"`
	MaxNameLength uint32      `json:"max_name_length"`
	// Share of protocol revenue that is burned; the rest funds the
	// community pool.
	FairBurnPercent sdkmath.LegacyDec `json:"fair_burn_percent"`
}

func DefaultParams() Params {
	return Params{
		BasePrice:       sdkmath.NewInt(100_000_000),
		MinNameLength:   3,
		MaxNameLength:   63,
		FairBurnPercent: sdkmath.LegacyNewDecWithPrec(5, 1),
	}
}

func (p Params) Validate() error {
	if p.BasePrice.IsNil() || !p.BasePrice.IsPositive() {
		return ErrInvalidParams.Wrap("base price must be positive")
	}
	if p.MinNameLength < 3 {
		return ErrInvalidParams.Wrap("min name length cannot be below 3")
	}
	if p.MaxNameLength < p.MinNameLength {
		return ErrInvalidParams.Wrap("max name length below min")
	}
	if p.FairBurnPercent.IsNegative() || p.FairBurnPercent.GT(sdkmath.LegacyOneDec()) {
		return ErrInvalidParams.Wrapf("fair burn percent %s", p.FairBurnPercent)
	}
	return nil
}

// DiscountType selects how a whitelist discount is applied.
type DiscountType string

const (
	DiscountFlatrate DiscountType = "flatrate"
	DiscountPercent  DiscountType = "percent"
)

// Discount reduces the mint price for whitelisted addresses. Flatrate
// subtracts an absolute amount (floored at zero); Percent scales the
// price down.
type Discount struct {
	Type     DiscountType      `json:"type"`
	Flatrate sdkmath.Int       `json:"flatrate,omitempty"`
	Percent  sdkmath.LegacyDec `json:"percent,omitempty"`
}

func (d Discount) Validate() error {
	switch d.Type {
	case DiscountFlatrate:
		if d.Flatrate.IsNil() || d.Flatrate.IsNegative() {
			return ErrInvalidDiscount.Wrap("flatrate must be non-negative")
		}
	case DiscountPercent:
		if d.Percent.IsNil() || d.Percent.IsNegative() || d.Percent.GT(sdkmath.LegacyOneDec()) {
			return ErrInvalidDiscount.Wrapf("percent %s out of range", d.Percent)
		}
	default:
		return ErrInvalidDiscount.Wrapf("unknown type %q", d.Type)
	}
	return nil
}

// Apply returns the discounted price.
func (d Discount) Apply(price sdkmath.Int) sdkmath.Int {
	switch d.Type {
	case DiscountFlatrate:
		out := price.Sub(d.Flatrate)
		if out.IsNegative() {
			return sdkmath.ZeroInt()
		}
		return out
	case DiscountPercent:
		return sdkmath.LegacyOneDec().Sub(d.Percent).MulInt(price).TruncateInt()
	default:
		return price
	}
}

// Whitelist grants its members discounted or rationed minting. While any
// whitelist exists, only members may mint.
type Whitelist struct {
	Id              uint64    `json:"id"`
	Addresses       []string  `json:"addresses"`
	PerAddressLimit uint32    `json:"per_address_limit"`
	Discount        *Discount `json:"discount,omitempty"`
}

func (w Whitelist) Validate() error {
	if len(w.Addresses) == 0 {
		return ErrInvalidParams.Wrap("whitelist requires at least one address")
	}
	if w.PerAddressLimit == 0 {
		return ErrInvalidParams.Wrap("per address limit cannot be zero")
	}
	if w.Discount != nil {
		return w.Discount.Validate()
	}
	return nil
}

// IncludesAddress reports membership.
func (w Whitelist) IncludesAddress(addr string) bool {
	for _, a := range w.Addresses {
		if a == addr {
			return true
		}
	}
	return false
}

// MintCount records how many names an address minted through a
// whitelist.
type MintCount struct {
	WhitelistId uint64 `json:"whitelist_id"`
	Address     string `json:"address"`
	Count       uint32 `json:"count"`
}
