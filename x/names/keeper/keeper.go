package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/names-chain/names/x/names/types"
)

type Keeper struct {
	logger    log.Logger
	authority string

	schema  collections.Schema
	params  collections.Item[types.Params]
	config  collections.Item[types.Config]
	names   collections.Map[string, types.Name]
	reverse collections.Map[string, string]
}

func NewKeeper(storeService store.KVStoreService, logger log.Logger, authority string) *Keeper {
	sb := collections.NewSchemaBuilder(storeService)
	k := &Keeper{
		logger:    logger.With("module", "x/"+types.ModuleName),
		authority: authority,
		params:    collections.NewItem(sb, collections.NewPrefix(0), "params", types.JSONValue[types.Params]("params")),
		config:    collections.NewItem(sb, collections.NewPrefix(1), "config", types.JSONValue[types.Config]("config")),
		names:     collections.NewMap(sb, collections.NewPrefix(2), "names", collections.StringKey, types.JSONValue[types.Name]("name")),
		reverse:   collections.NewMap(sb, collections.NewPrefix(3), "reverse", collections.StringKey, collections.StringValue),
	}
	schema, err := sb.Build()
	if err != nil {
		panic(err)
	}
	k.schema = schema
	return k
}

func (k Keeper) GetAuthority() string { return k.authority }

func (k Keeper) Logger() log.Logger { return k.logger }

// ---------------------------------------------------------------------
// Params / config

func (k Keeper) GetParams(ctx sdk.Context) types.Params {
	params, err := k.params.Get(ctx)
	if err != nil {
		return types.DefaultParams()
	}
	return params
}

func (k Keeper) SetParams(ctx sdk.Context, params types.Params) error {
	if err := params.Validate(); err != nil {
		return err
	}
	return k.params.Set(ctx, params)
}

func (k Keeper) GetConfig(ctx sdk.Context) (types.Config, error) {
	config, err := k.config.Get(ctx)
	if err != nil {
		return types.Config{}, types.ErrNotSetup
	}
	return config, nil
}

// SudoSetup wires the minter and marketplace addresses, once.
func (k Keeper) SudoSetup(ctx sdk.Context, sender string, config types.Config) error {
	if sender != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, sender)
	}
	if ok, _ := k.config.Has(ctx); ok {
		return types.ErrAlreadySetup
	}
	if _, err := sdk.AccAddressFromBech32(config.Minter); err != nil {
		return types.ErrInvalidParams.Wrapf("minter: %s", err)
	}
	if _, err := sdk.AccAddressFromBech32(config.Marketplace); err != nil {
		return types.ErrInvalidParams.Wrapf("marketplace: %s", err)
	}
	return k.config.Set(ctx, config)
}

func (k Keeper) SudoUpdateParams(ctx sdk.Context, sender string, params types.Params) error {
	if sender != k.authority {
		return types.ErrUnauthorized.Wrapf("expected authority %s, got %s", k.authority, sender)
	}
	if err := k.SetParams(ctx, params); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(types.EventTypeUpdateParams))
	return nil
}

// ---------------------------------------------------------------------
// Names

func (k Keeper) GetName(ctx sdk.Context, tokenId string) (types.Name, error) {
	name, err := k.names.Get(ctx, tokenId)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return types.Name{}, types.ErrNameNotFound.Wrap(tokenId)
		}
		return types.Name{}, err
	}
	return name, nil
}

func (k Keeper) HasName(ctx sdk.Context, tokenId string) bool {
	ok, _ := k.names.Has(ctx, tokenId)
	return ok
}

func (k Keeper) setName(ctx sdk.Context, name types.Name) error {
	return k.names.Set(ctx, name.TokenId, name)
}

// MintName creates a name token. Only the registered minter may call it,
// and the token id must be fresh. A name burned at renewal expiry frees
// its id for minting again.
func (k Keeper) MintName(ctx sdk.Context, sender, tokenId, owner string) error {
	config, err := k.GetConfig(ctx)
	if err != nil {
		return err
	}
	if sender != config.Minter {
		return types.ErrUnauthorizedMinter.Wrap(sender)
	}
	if k.HasName(ctx, tokenId) {
		return types.ErrNameAlreadyExists.Wrap(tokenId)
	}
	if err := k.setName(ctx, types.Name{TokenId: tokenId, Owner: owner}); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeMintName,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyOwner, owner),
	))
	return nil
}

// OwnerOf resolves the current owner of a name.
func (k Keeper) OwnerOf(ctx sdk.Context, tokenId string) (string, error) {
	name, err := k.GetName(ctx, tokenId)
	if err != nil {
		return "", err
	}
	return name.Owner, nil
}

// TransferNFT moves a name to a new owner without sender checks. This is
// the module-to-module path: the marketplace settles sales through it.
// The associated address is cleared so a buyer never inherits the
// seller's reverse lookup.
func (k Keeper) TransferNFT(ctx sdk.Context, tokenId, recipient string) error {
	name, err := k.GetName(ctx, tokenId)
	if err != nil {
		return err
	}
	if err := k.clearAssociation(ctx, &name); err != nil {
		return err
	}
	name.Owner = recipient
	if err := k.setName(ctx, name); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeTransferName,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyRecipient, recipient),
	))
	return nil
}

// BurnNFT destroys a name without sender checks. Module-to-module path:
// the marketplace burns names whose renewal lapsed with no buyer. The
// associated address is released along with the record.
func (k Keeper) BurnNFT(ctx sdk.Context, tokenId string) error {
	name, err := k.GetName(ctx, tokenId)
	if err != nil {
		return err
	}
	if err := k.clearAssociation(ctx, &name); err != nil {
		return err
	}
	if err := k.names.Remove(ctx, tokenId); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeBurnName,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyOwner, name.Owner),
	))
	return nil
}

func (k Keeper) assertOwner(ctx sdk.Context, tokenId, sender string) (types.Name, error) {
	name, err := k.GetName(ctx, tokenId)
	if err != nil {
		return types.Name{}, err
	}
	if name.Owner != sender {
		return types.Name{}, types.ErrUnauthorized.Wrapf("%s does not own %s", sender, tokenId)
	}
	return name, nil
}

// ---------------------------------------------------------------------
// Address association

func (k Keeper) clearAssociation(ctx sdk.Context, name *types.Name) error {
	if name.AssociatedAddress == "" {
		return nil
	}
	if err := k.reverse.Remove(ctx, name.AssociatedAddress); err != nil {
		return err
	}
	name.AssociatedAddress = ""
	return nil
}

// AssociateAddress points a name at an account. An address maps to at
// most one name; re-associating steals the address from its previous
// name. Empty address clears.
func (k Keeper) AssociateAddress(ctx sdk.Context, sender, tokenId, address string) error {
	name, err := k.assertOwner(ctx, tokenId, sender)
	if err != nil {
		return err
	}
	if err := k.clearAssociation(ctx, &name); err != nil {
		return err
	}

	if address != "" {
		if prevToken, err := k.reverse.Get(ctx, address); err == nil && prevToken != tokenId {
			prev, err := k.GetName(ctx, prevToken)
			if err != nil {
				return err
			}
			if err := k.clearAssociation(ctx, &prev); err != nil {
				return err
			}
			if err := k.setName(ctx, prev); err != nil {
				return err
			}
		}
		if err := k.reverse.Set(ctx, address, tokenId); err != nil {
			return err
		}
		name.AssociatedAddress = address
	}
	if err := k.setName(ctx, name); err != nil {
		return err
	}

	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAssociateAddress,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyAddress, address),
	))
	return nil
}

// NameByAddress is the reverse lookup.
func (k Keeper) NameByAddress(ctx sdk.Context, address string) (string, error) {
	tokenId, err := k.reverse.Get(ctx, address)
	if err != nil {
		return "", types.ErrAddressNotFound.Wrap(address)
	}
	return tokenId, nil
}

// ---------------------------------------------------------------------
// Metadata

func (k Keeper) UpdateBio(ctx sdk.Context, sender, tokenId, bio string) error {
	params := k.GetParams(ctx)
	if uint32(len(bio)) > params.MaxTextLength {
		return types.ErrTextTooLong.Wrapf("bio is %d bytes, max %d", len(bio), params.MaxTextLength)
	}
	name, err := k.assertOwner(ctx, tokenId, sender)
	if err != nil {
		return err
	}
	name.Bio = bio
	if err := k.setName(ctx, name); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateBio,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
	))
	return nil
}

func (k Keeper) UpdateProfileNFT(ctx sdk.Context, sender, tokenId string, profile *types.NFT) error {
	name, err := k.assertOwner(ctx, tokenId, sender)
	if err != nil {
		return err
	}
	name.ProfileNFT = profile
	if err := k.setName(ctx, name); err != nil {
		return err
	}
	event := sdk.NewEvent(
		types.EventTypeUpdateProfileNFT,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
	)
	if profile != nil {
		event = event.AppendAttributes(sdk.NewAttribute(types.AttributeKeyCollection, profile.Collection))
	}
	ctx.EventManager().EmitEvent(event)
	return nil
}

func (k Keeper) validateRecord(ctx sdk.Context, record types.TextRecord) error {
	params := k.GetParams(ctx)
	if record.Name == "" {
		return types.ErrInvalidTextRecord.Wrap("record name cannot be empty")
	}
	if uint32(len(record.Name)) > params.MaxTextLength || uint32(len(record.Value)) > params.MaxTextLength {
		return types.ErrTextTooLong.Wrapf("record fields capped at %d bytes", params.MaxTextLength)
	}
	return nil
}

func (k Keeper) AddTextRecord(ctx sdk.Context, sender, tokenId string, record types.TextRecord) error {
	if err := k.validateRecord(ctx, record); err != nil {
		return err
	}
	name, err := k.assertOwner(ctx, tokenId, sender)
	if err != nil {
		return err
	}
	if name.HasTextRecord(record.Name) {
		return types.ErrRecordAlreadyExists.Wrap(record.Name)
	}
	params := k.GetParams(ctx)
	if uint32(len(name.TextRecords)) >= params.MaxTextRecords {
		return types.ErrTooManyTextRecords.Wrapf("max %d", params.MaxTextRecords)
	}
	name.TextRecords = append(name.TextRecords, record)
	if err := k.setName(ctx, name); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeAddTextRecord,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyRecordName, record.Name),
	))
	return nil
}

func (k Keeper) UpdateTextRecord(ctx sdk.Context, sender, tokenId string, record types.TextRecord) error {
	if err := k.validateRecord(ctx, record); err != nil {
		return err
	}
	name, err := k.assertOwner(ctx, tokenId, sender)
	if err != nil {
		return err
	}
	updated := false
	for i, r := range name.TextRecords {
		if r.Name == record.Name {
			name.TextRecords[i] = record
			updated = true
			break
		}
	}
	if !updated {
		return types.ErrRecordNotFound.Wrap(record.Name)
	}
	if err := k.setName(ctx, name); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeUpdateTextRecord,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyRecordName, record.Name),
	))
	return nil
}

func (k Keeper) RemoveTextRecord(ctx sdk.Context, sender, tokenId, recordName string) error {
	name, err := k.assertOwner(ctx, tokenId, sender)
	if err != nil {
		return err
	}
	idx := -1
	for i, r := range name.TextRecords {
		if r.Name == recordName {
			idx = i
			break
		}
	}
	if idx < 0 {
		return types.ErrRecordNotFound.Wrap(recordName)
	}
	name.TextRecords = append(name.TextRecords[:idx], name.TextRecords[idx+1:]...)
	if err := k.setName(ctx, name); err != nil {
		return err
	}
	ctx.EventManager().EmitEvent(sdk.NewEvent(
		types.EventTypeRemoveTextRecord,
		sdk.NewAttribute(types.AttributeKeyTokenId, tokenId),
		sdk.NewAttribute(types.AttributeKeyRecordName, recordName),
	))
	return nil
}

// ---------------------------------------------------------------------
// Iteration

// IterateNames visits names in token id order, starting after the
// cursor when provided.
func (k Keeper) IterateNames(ctx sdk.Context, startAfter string, fn func(name types.Name) bool) error {
	rng := new(collections.Range[string])
	if startAfter != "" {
		rng = rng.StartExclusive(startAfter)
	}
	return k.names.Walk(ctx, rng, func(_ string, name types.Name) (bool, error) {
		return fn(name), nil
	})
}
