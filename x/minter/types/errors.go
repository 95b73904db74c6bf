package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrUnauthorized  = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrInvalidParams = errorsmod.Register(ModuleName, 3, "invalid params")

	ErrInvalidName  = errorsmod.Register(ModuleName, 10, "invalid name")
	ErrNameTooShort = errorsmod.Register(ModuleName, 11, "name too short")
	ErrNameTooLong  = errorsmod.Register(ModuleName, 12, "name too long")

	ErrMintingPaused     = errorsmod.Register(ModuleName, 20, "minting paused")
	ErrIncorrectPayment  = errorsmod.Register(ModuleName, 21, "incorrect payment")
	ErrNotWhitelisted    = errorsmod.Register(ModuleName, 22, "address not whitelisted")
	ErrMintLimitReached  = errorsmod.Register(ModuleName, 23, "per address mint limit reached")
	ErrWhitelistNotFound = errorsmod.Register(ModuleName, 24, "whitelist not found")
	ErrInvalidDiscount   = errorsmod.Register(ModuleName, 25, "invalid discount")
	ErrNotSetup          = errorsmod.Register(ModuleName, 26, "minter not setup")
)
