package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrUnauthorized       = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrUnauthorizedMinter = errorsmod.Register(ModuleName, 3, "unauthorized minter")
	ErrInvalidParams      = errorsmod.Register(ModuleName, 4, "invalid params")

	ErrNameNotFound      = errorsmod.Register(ModuleName, 10, "name not found")
	ErrNameAlreadyExists = errorsmod.Register(ModuleName, 11, "name already exists")
	ErrAddressNotFound   = errorsmod.Register(ModuleName, 12, "no name associated with address")

	ErrTextTooLong         = errorsmod.Register(ModuleName, 20, "text exceeds max length")
	ErrTooManyTextRecords  = errorsmod.Register(ModuleName, 21, "too many text records")
	ErrRecordAlreadyExists = errorsmod.Register(ModuleName, 22, "text record already exists")
	ErrRecordNotFound      = errorsmod.Register(ModuleName, 23, "text record not found")
	ErrInvalidTextRecord   = errorsmod.Register(ModuleName, 24, "invalid text record")
	ErrInvalidProfileNFT   = errorsmod.Register(ModuleName, 25, "invalid profile nft")
	ErrNotSetup            = errorsmod.Register(ModuleName, 26, "collection not setup")
	ErrAlreadySetup        = errorsmod.Register(ModuleName, 27, "collection already setup")
	ErrInvalidAssociation  = errorsmod.Register(ModuleName, 28, "invalid address association")
)
