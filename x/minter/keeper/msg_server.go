package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/minter/types"
)

type MsgServer struct {
	keeper *Keeper
}

func NewMsgServerImpl(k *Keeper) *MsgServer {
	return &MsgServer{keeper: k}
}

func (ms *MsgServer) MintAndList(ctx sdk.Context, msg *types.MsgMintAndList) (*types.MsgMintAndListResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}
	price, err := ms.keeper.MintAndList(ctx, msg.Sender, msg.Name, msg.Payment)
	if err != nil {
		return nil, err
	}
	return &types.MsgMintAndListResponse{Name: types.CleanName(msg.Name), Price: price}, nil
}

func (ms *MsgServer) SetPaused(ctx sdk.Context, msg *types.MsgSetPaused) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return ms.keeper.SetPaused(ctx, msg.Sender, msg.Paused)
}
