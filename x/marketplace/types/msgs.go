package types

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgSetAsk          = "set_ask"
	TypeMsgSyncAsk         = "sync_ask"
	TypeMsgSetBid          = "set_bid"
	TypeMsgRemoveBid       = "remove_bid"
	TypeMsgAcceptBid       = "accept_bid"
	TypeMsgFundRenewal     = "fund_renewal"
	TypeMsgRefundRenewal   = "refund_renewal"
	TypeMsgRenew           = "renew"
	TypeMsgProcessRenewals = "process_renewals"
	TypeMsgRemoveStaleBid  = "remove_stale_bid"
)

func validateTokenId(tokenId string) error {
	if tokenId == "" {
		return ErrAskNotFound.Wrap("token id cannot be empty")
	}
	return nil
}

func validatePayment(amount sdk.Coin) error {
	if amount.Denom != NativeDenom {
		return ErrInvalidPayment.Wrapf("payment must be in %s", NativeDenom)
	}
	if !amount.Amount.IsPositive() {
		return ErrInvalidPayment.Wrap("payment must be positive")
	}
	return nil
}

func signers(addr string) []sdk.AccAddress {
	acc, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{acc}
}

// MsgSetAsk lists a freshly minted name. Only the registered minter may
// send it.
type MsgSetAsk struct {
	Sender  string  `json:"sender"`
	TokenId TokenId `json:"token_id"`
	Seller  string  `json:"seller"`
}

func (msg MsgSetAsk) Route() string { return ModuleName }
func (msg MsgSetAsk) Type() string  { return TypeMsgSetAsk }
func (msg MsgSetAsk) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Seller); err != nil {
		return ErrInvalidParams.Wrapf("seller: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return nil
}
func (msg MsgSetAsk) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgSetAsk) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgSyncAsk refreshes an ask's seller to the current NFT owner after an
// external transfer. Anyone may send it.
type MsgSyncAsk struct {
	Sender  string  `json:"sender"`
	TokenId TokenId `json:"token_id"`
}

func (msg MsgSyncAsk) Route() string { return ModuleName }
func (msg MsgSyncAsk) Type() string  { return TypeMsgSyncAsk }
func (msg MsgSyncAsk) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return nil
}
func (msg MsgSyncAsk) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgSyncAsk) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgSetBid escrows an offer on a name. The attached amount is the bid.
type MsgSetBid struct {
	Sender  string   `json:"sender"`
	TokenId TokenId  `json:"token_id"`
	Amount  sdk.Coin `json:"amount"`
}

func (msg MsgSetBid) Route() string { return ModuleName }
func (msg MsgSetBid) Type() string  { return TypeMsgSetBid }
func (msg MsgSetBid) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return validatePayment(msg.Amount)
}
func (msg MsgSetBid) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgSetBid) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgRemoveBid withdraws the sender's bid and refunds the escrow.
type MsgRemoveBid struct {
	Sender  string  `json:"sender"`
	TokenId TokenId `json:"token_id"`
}

func (msg MsgRemoveBid) Route() string { return ModuleName }
func (msg MsgRemoveBid) Type() string  { return TypeMsgRemoveBid }
func (msg MsgRemoveBid) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return nil
}
func (msg MsgRemoveBid) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgRemoveBid) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgAcceptBid sells the name to a bidder. Only the current NFT owner may
// send it.
type MsgAcceptBid struct {
	Sender  string  `json:"sender"`
	TokenId TokenId `json:"token_id"`
	Bidder  string  `json:"bidder"`
}

func (msg MsgAcceptBid) Route() string { return ModuleName }
func (msg MsgAcceptBid) Type() string  { return TypeMsgAcceptBid }
func (msg MsgAcceptBid) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Bidder); err != nil {
		return ErrInvalidParams.Wrapf("bidder: %s", err)
	}
	return nil
}
func (msg MsgAcceptBid) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgAcceptBid) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgFundRenewal adds the attached amount to a name's renewal escrow.
type MsgFundRenewal struct {
	Sender  string   `json:"sender"`
	TokenId TokenId  `json:"token_id"`
	Amount  sdk.Coin `json:"amount"`
}

func (msg MsgFundRenewal) Route() string { return ModuleName }
func (msg MsgFundRenewal) Type() string  { return TypeMsgFundRenewal }
func (msg MsgFundRenewal) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return validatePayment(msg.Amount)
}
func (msg MsgFundRenewal) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgFundRenewal) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgRefundRenewal returns the full renewal escrow to the seller.
type MsgRefundRenewal struct {
	Sender  string  `json:"sender"`
	TokenId TokenId `json:"token_id"`
}

func (msg MsgRefundRenewal) Route() string { return ModuleName }
func (msg MsgRefundRenewal) Type() string  { return TypeMsgRefundRenewal }
func (msg MsgRefundRenewal) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return nil
}
func (msg MsgRefundRenewal) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgRefundRenewal) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgRenew tops up the renewal escrow and triggers an immediate renewal
// when the fund covers the current renewal price. Only valid inside the
// renew window. The attached amount may be zero coins' worth of nothing:
// a fully prefunded name renews with no payment.
type MsgRenew struct {
	Sender  string    `json:"sender"`
	TokenId TokenId   `json:"token_id"`
	Amount  *sdk.Coin `json:"amount,omitempty"`
}

func (msg MsgRenew) Route() string { return ModuleName }
func (msg MsgRenew) Type() string  { return TypeMsgRenew }
func (msg MsgRenew) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	if msg.Amount != nil {
		return validatePayment(*msg.Amount)
	}
	return nil
}
func (msg MsgRenew) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgRenew) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgProcessRenewals walks the renewal queue. Operator only.
type MsgProcessRenewals struct {
	Sender string `json:"sender"`
	Limit  uint32 `json:"limit"`
}

func (msg MsgProcessRenewals) Route() string { return ModuleName }
func (msg MsgProcessRenewals) Type() string  { return TypeMsgProcessRenewals }
func (msg MsgProcessRenewals) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	if msg.Limit == 0 {
		return ErrInvalidParams.Wrap("limit cannot be zero")
	}
	return nil
}
func (msg MsgProcessRenewals) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgProcessRenewals) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgRemoveStaleBid refunds an aged-out bid, rewarding the caller.
type MsgRemoveStaleBid struct {
	Sender  string  `json:"sender"`
	TokenId TokenId `json:"token_id"`
	Bidder  string  `json:"bidder"`
}

func (msg MsgRemoveStaleBid) Route() string { return ModuleName }
func (msg MsgRemoveStaleBid) Type() string  { return TypeMsgRemoveStaleBid }
func (msg MsgRemoveStaleBid) ValidateBasic() error {
	if err := validateTokenId(msg.TokenId); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(msg.Bidder); err != nil {
		return ErrInvalidParams.Wrapf("bidder: %s", err)
	}
	return nil
}
func (msg MsgRemoveStaleBid) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgRemoveStaleBid) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}
