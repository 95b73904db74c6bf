package types

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgMintAndList = "mint_and_list"
	TypeMsgSetPaused   = "set_paused"
)

func signers(addr string) []sdk.AccAddress {
	acc, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{acc}
}

// MsgMintAndList registers a name and lists it on the marketplace in one
// shot. Payment must exactly match the (possibly discounted) mint price.
type MsgMintAndList struct {
	Sender  string    `json:"sender"`
	Name    string    `json:"name"`
	Payment *sdk.Coin `json:"payment,omitempty"`
}

func (msg MsgMintAndList) Route() string { return ModuleName }
func (msg MsgMintAndList) Type() string  { return TypeMsgMintAndList }
func (msg MsgMintAndList) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	if CleanName(msg.Name) == "" {
		return ErrInvalidName.Wrap("name cannot be empty")
	}
	if msg.Payment != nil && msg.Payment.Amount.IsNegative() {
		return ErrIncorrectPayment.Wrap("payment cannot be negative")
	}
	return nil
}
func (msg MsgMintAndList) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgMintAndList) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgSetPaused toggles minting. Admin only.
type MsgSetPaused struct {
	Sender string `json:"sender"`
	Paused bool   `json:"paused"`
}

func (msg MsgSetPaused) Route() string { return ModuleName }
func (msg MsgSetPaused) Type() string  { return TypeMsgSetPaused }
func (msg MsgSetPaused) ValidateBasic() error {
	if _, err := sdk.AccAddressFromBech32(msg.Sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return nil
}
func (msg MsgSetPaused) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgSetPaused) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}
