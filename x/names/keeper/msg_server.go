package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/names/types"
)

type MsgServer struct {
	keeper *Keeper
}

func NewMsgServerImpl(k *Keeper) *MsgServer {
	return &MsgServer{keeper: k}
}

// TransferName moves a name between accounts. Owner only; trading
// through the marketplace uses the keeper-level transfer instead.
func (ms *MsgServer) TransferName(ctx sdk.Context, msg *types.MsgTransferName) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	if _, err := ms.keeper.assertOwner(ctx, msg.TokenId, msg.Sender); err != nil {
		return err
	}
	return ms.keeper.TransferNFT(ctx, msg.TokenId, msg.Recipient)
}

func (ms *MsgServer) AssociateAddress(ctx sdk.Context, msg *types.MsgAssociateAddress) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.AssociateAddress(ctx, msg.Sender, msg.TokenId, msg.Address)
}

func (ms *MsgServer) UpdateBio(ctx sdk.Context, msg *types.MsgUpdateBio) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.UpdateBio(ctx, msg.Sender, msg.TokenId, msg.Bio)
}

func (ms *MsgServer) UpdateProfileNFT(ctx sdk.Context, msg *types.MsgUpdateProfileNFT) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.UpdateProfileNFT(ctx, msg.Sender, msg.TokenId, msg.Profile)
}

func (ms *MsgServer) AddTextRecord(ctx sdk.Context, msg *types.MsgAddTextRecord) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.AddTextRecord(ctx, msg.Sender, msg.TokenId, msg.Record)
}

func (ms *MsgServer) UpdateTextRecord(ctx sdk.Context, msg *types.MsgUpdateTextRecord) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.UpdateTextRecord(ctx, msg.Sender, msg.TokenId, msg.Record)
}

func (ms *MsgServer) RemoveTextRecord(ctx sdk.Context, msg *types.MsgRemoveTextRecord) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.RemoveTextRecord(ctx, msg.Sender, msg.TokenId, msg.RecordName)
}
