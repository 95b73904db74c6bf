package keeper

import (
	"fmt"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/minter/types"
)

func (k Keeper) assertAuthority(sender string) error {
	if sender != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, sender)
	}
	return nil
}

func (k Keeper) SudoUpdateParams(ctx sdk.Context, sender string, params types.Params) error {
	if err := k.assertAuthority(sender); err != nil {
		return err
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeUpdateParams))
	return nil
}

// SudoSetAdmin delegates day-to-day control (pause, whitelists) to an
// operational account.
func (k Keeper) SudoSetAdmin(ctx sdk.Context, sender, admin string) error {
	if err := k.assertAuthority(sender); err != nil {
		return err
	}
	if admin != "" {
		if _, err := sdk.AccAddressFromBech32(admin); err != nil {
			return types.ErrInvalidParams.Wrapf("admin: %s", err)
		}
	}
	if err := k.admin.Set(ctx, admin); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateAdmin,
		sdk.NewAttribute(types.AttributeKeyAdmin, admin),
	))
	return nil
}

// AddWhitelist registers a whitelist and returns its assigned id.
// Authority or admin.
func (k Keeper) AddWhitelist(ctx sdk.Context, sender string, wl types.Whitelist) (uint64, error) {
	if !k.isPrivileged(ctx, sender) {
		return 0, types.ErrUnauthorized.Wrap(sender)
	}
	if err := wl.Validate(); err != nil {
		return 0, err
	}
	for _, addr := range wl.Addresses {
		if _, err := sdk.AccAddressFromBech32(addr); err != nil {
			return 0, types.ErrInvalidParams.Wrapf("whitelist member %s: %s", addr, err)
		}
	}

	next, err := k.whitelistSeq.Next(ctx)
	if err != nil {
		return 0, err
	}
	wl.Id = next + 1
	if err := k.whitelists.Set(ctx, wl.Id, wl); err != nil {
		return 0, err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddWhitelist,
		sdk.NewAttribute(types.AttributeKeyWhitelistId, fmt.Sprintf("%d", wl.Id)),
	))
	return wl.Id, nil
}

// RemoveWhitelist drops a whitelist; its mint counts are left behind as
// historical data. Authority or admin.
func (k Keeper) RemoveWhitelist(ctx sdk.Context, sender string, id uint64) error {
	if !k.isPrivileged(ctx, sender) {
		return types.ErrUnauthorized.Wrap(sender)
	}
	if _, err := k.GetWhitelist(ctx, id); err != nil {
		return err
	}
	if err := k.whitelists.Remove(ctx, id); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveWhitelist,
		sdk.NewAttribute(types.AttributeKeyWhitelistId, fmt.Sprintf("%d", id)),
	))
	return nil
}
