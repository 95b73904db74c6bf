package keeper

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/marketplace/types"
)

// Sudo operations require the module authority, typically the governance
// module account.

func (k Keeper) assertAuthority(sender string) error {
	if sender != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, sender)
	}
	return nil
}

// SudoUpdateParams replaces the marketplace parameters wholesale.
func (k Keeper) SudoUpdateParams(ctx sdk.Context, sender string, params types.SudoParams) error {
	if err := k.assertAuthority(sender); err != nil {
		return err
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeUpdateParams))
	return nil
}

// SudoSetup wires the minter and collection addresses. One shot; the
// marketplace refuses to be re-pointed at a different collection once
// asks exist against the first one.
func (k Keeper) SudoSetup(ctx sdk.Context, sender string, config types.Config) error {
	if err := k.assertAuthority(sender); err != nil {
		return err
	}
	if k.IsSetup(ctx) {
		return types.ErrAlreadySetup
	}
	if _, err := sdk.AccAddressFromBech32(config.Minter); err != nil {
		return types.ErrInvalidParams.Wrapf("minter: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(config.Collection); err != nil {
		return types.ErrInvalidParams.Wrapf("collection: %s", err)
	}
	k.SetConfig(ctx, config)

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeSetup,
		sdk.NewAttribute(types.AttributeKeyMinter, config.Minter),
		sdk.NewAttribute(types.AttributeKeyCollection, config.Collection),
	))
	return nil
}

func (k Keeper) SudoAddHook(ctx sdk.Context, sender string, kind types.HookKind, addr string) error {
	if err := k.assertAuthority(sender); err != nil {
		return err
	}
	if err := k.AddHook(ctx, kind, addr); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddHook,
		sdk.NewAttribute(types.AttributeKeyHookKind, string(kind)),
		sdk.NewAttribute(types.AttributeKeyHook, addr),
	))
	return nil
}

func (k Keeper) SudoRemoveHook(ctx sdk.Context, sender string, kind types.HookKind, addr string) error {
	if err := k.assertAuthority(sender); err != nil {
		return err
	}
	if err := k.RemoveHook(ctx, kind, addr); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveHook,
		sdk.NewAttribute(types.AttributeKeyHookKind, string(kind)),
		sdk.NewAttribute(types.AttributeKeyHook, addr),
	))
	return nil
}
