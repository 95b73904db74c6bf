package types

import (
	"encoding/json"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	TypeMsgTransferName     = "transfer_name"
	TypeMsgAssociateAddress = "associate_address"
	TypeMsgUpdateBio        = "update_bio"
	TypeMsgUpdateProfileNFT = "update_profile_nft"
	TypeMsgAddTextRecord    = "add_text_record"
	TypeMsgUpdateTextRecord = "update_text_record"
	TypeMsgRemoveTextRecord = "remove_text_record"
)

func validateName(name string) error {
	if name == "" {
		return ErrNameNotFound.Wrap("name cannot be empty")
	}
	return nil
}

func validateSender(sender string) error {
	if _, err := sdk.AccAddressFromBech32(sender); err != nil {
		return ErrInvalidParams.Wrapf("sender: %s", err)
	}
	return nil
}

func signers(addr string) []sdk.AccAddress {
	acc, _ := sdk.AccAddressFromBech32(addr)
	return []sdk.AccAddress{acc}
}

// MsgTransferName moves a name to a new owner. Owner only; the
// associated address is cleared on transfer.
type MsgTransferName struct {
	Sender    string `json:"sender"`
	TokenId   string `json:"token_id"`
	Recipient string `json:"recipient"`
}

func (msg MsgTransferName) Route() string { return ModuleName }
func (msg MsgTransferName) Type() string  { return TypeMsgTransferName }
func (msg MsgTransferName) ValidateBasic() error {
	if err := validateName(msg.TokenId); err != nil {
		return err
	}
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if _, err := sdk.AccAddressFromBech32(msg.Recipient); err != nil {
		return ErrInvalidParams.Wrapf("recipient: %s", err)
	}
	return nil
}
func (msg MsgTransferName) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgTransferName) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgAssociateAddress points a name at an account for reverse lookup.
// An empty address clears the association.
type MsgAssociateAddress struct {
	Sender  string `json:"sender"`
	TokenId string `json:"token_id"`
	Address string `json:"address,omitempty"`
}

func (msg MsgAssociateAddress) Route() string { return ModuleName }
func (msg MsgAssociateAddress) Type() string  { return TypeMsgAssociateAddress }
func (msg MsgAssociateAddress) ValidateBasic() error {
	if err := validateName(msg.TokenId); err != nil {
		return err
	}
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if msg.Address != "" {
		if _, err := sdk.AccAddressFromBech32(msg.Address); err != nil {
			return ErrInvalidAssociation.Wrapf("%s", err)
		}
	}
	return nil
}
func (msg MsgAssociateAddress) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgAssociateAddress) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

type MsgUpdateBio struct {
	Sender  string `json:"sender"`
	TokenId string `json:"token_id"`
	Bio     string `json:"bio"`
}

func (msg MsgUpdateBio) Route() string { return ModuleName }
func (msg MsgUpdateBio) Type() string  { return TypeMsgUpdateBio }
func (msg MsgUpdateBio) ValidateBasic() error {
	if err := validateName(msg.TokenId); err != nil {
		return err
	}
	return validateSender(msg.Sender)
}
func (msg MsgUpdateBio) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgUpdateBio) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

// MsgUpdateProfileNFT sets or clears the profile picture reference.
type MsgUpdateProfileNFT struct {
	Sender  string `json:"sender"`
	TokenId string `json:"token_id"`
	Profile *NFT   `json:"profile,omitempty"`
}

func (msg MsgUpdateProfileNFT) Route() string { return ModuleName }
func (msg MsgUpdateProfileNFT) Type() string  { return TypeMsgUpdateProfileNFT }
func (msg MsgUpdateProfileNFT) ValidateBasic() error {
	if err := validateName(msg.TokenId); err != nil {
		return err
	}
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if msg.Profile != nil && (msg.Profile.Collection == "" || msg.Profile.TokenId == "") {
		return ErrInvalidProfileNFT.Wrap("collection and token id required")
	}
	return nil
}
func (msg MsgUpdateProfileNFT) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgUpdateProfileNFT) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

type MsgAddTextRecord struct {
	Sender  string     `json:"sender"`
	TokenId string     `json:"token_id"`
	Record  TextRecord `json:"record"`
}

func (msg MsgAddTextRecord) Route() string { return ModuleName }
func (msg MsgAddTextRecord) Type() string  { return TypeMsgAddTextRecord }
func (msg MsgAddTextRecord) ValidateBasic() error {
	if err := validateName(msg.TokenId); err != nil {
		return err
	}
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if msg.Record.Name == "" {
		return ErrInvalidTextRecord.Wrap("record name cannot be empty")
	}
	return nil
}
func (msg MsgAddTextRecord) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgAddTextRecord) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

type MsgUpdateTextRecord struct {
	Sender  string     `json:"sender"`
	TokenId string     `json:"token_id"`
	Record  TextRecord `json:"record"`
}

func (msg MsgUpdateTextRecord) Route() string { return ModuleName }
func (msg MsgUpdateTextRecord) Type() string  { return TypeMsgUpdateTextRecord }
func (msg MsgUpdateTextRecord) ValidateBasic() error {
	if err := validateName(msg.TokenId); err != nil {
		return err
	}
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if msg.Record.Name == "" {
		return ErrInvalidTextRecord.Wrap("record name cannot be empty")
	}
	return nil
}
func (msg MsgUpdateTextRecord) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgUpdateTextRecord) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}

type MsgRemoveTextRecord struct {
	Sender     string `json:"sender"`
	TokenId    string `json:"token_id"`
	RecordName string `json:"record_name"`
}

func (msg MsgRemoveTextRecord) Route() string { return ModuleName }
func (msg MsgRemoveTextRecord) Type() string  { return TypeMsgRemoveTextRecord }
func (msg MsgRemoveTextRecord) ValidateBasic() error {
	if err := validateName(msg.TokenId); err != nil {
		return err
	}
	if err := validateSender(msg.Sender); err != nil {
		return err
	}
	if msg.RecordName == "" {
		return ErrInvalidTextRecord.Wrap("record name cannot be empty")
	}
	return nil
}
func (msg MsgRemoveTextRecord) GetSigners() []sdk.AccAddress { return signers(msg.Sender) }
func (msg MsgRemoveTextRecord) GetSignBytes() []byte {
	bz, _ := json.Marshal(msg)
	return bz
}
