package types

import errorsmod "cosmossdk.io/errors"

var (
	ErrUnauthorized         = errorsmod.Register(ModuleName, 2, "unauthorized")
	ErrUnauthorizedMinter   = errorsmod.Register(ModuleName, 3, "unauthorized minter")
	ErrUnauthorizedOwner    = errorsmod.Register(ModuleName, 4, "unauthorized owner")
	ErrUnauthorizedOperator = errorsmod.Register(ModuleName, 5, "unauthorized operator")

	ErrInvalidPrice               = errorsmod.Register(ModuleName, 10, "invalid price")
	ErrInvalidDuration            = errorsmod.Register(ModuleName, 11, "invalid duration")
	ErrInvalidListingFee          = errorsmod.Register(ModuleName, 12, "invalid listing fee")
	ErrInvalidTradingFeeBps       = errorsmod.Register(ModuleName, 13, "invalid trading fee bps")
	ErrInvalidBidRemovalRewardBps = errorsmod.Register(ModuleName, 14, "invalid bid removal reward bps")
	ErrPriceTooSmall              = errorsmod.Register(ModuleName, 15, "price too small")
	ErrInvalidReserveAddress      = errorsmod.Register(ModuleName, 16, "invalid reserve address")
	ErrInvalidFinder              = errorsmod.Register(ModuleName, 17, "invalid finder")
	ErrInvalidParams              = errorsmod.Register(ModuleName, 18, "invalid params")

	ErrAlreadySetup               = errorsmod.Register(ModuleName, 20, "already setup")
	ErrNotSetup                   = errorsmod.Register(ModuleName, 21, "not setup")
	ErrAskNotFound                = errorsmod.Register(ModuleName, 22, "ask not found")
	ErrAskNotActive               = errorsmod.Register(ModuleName, 23, "ask not active")
	ErrAskExpired                 = errorsmod.Register(ModuleName, 24, "ask expired")
	ErrAskUnchanged               = errorsmod.Register(ModuleName, 25, "ask unchanged")
	ErrBidNotFound                = errorsmod.Register(ModuleName, 26, "bid not found")
	ErrBidExpired                 = errorsmod.Register(ModuleName, 27, "bid expired")
	ErrBidNotStale                = errorsmod.Register(ModuleName, 28, "bid not stale")
	ErrNoRenewalFund              = errorsmod.Register(ModuleName, 29, "no renewal fund")
	ErrTokenReserved              = errorsmod.Register(ModuleName, 30, "token reserved")
	ErrCannotProcessFutureHeight  = errorsmod.Register(ModuleName, 31, "cannot process future height")
	ErrCannotProcessFutureRenewal = errorsmod.Register(ModuleName, 32, "cannot process future renewal")
	ErrHookAlreadyRegistered      = errorsmod.Register(ModuleName, 33, "hook already registered")
	ErrHookNotRegistered          = errorsmod.Register(ModuleName, 34, "hook not registered")
	ErrHookLimitReached           = errorsmod.Register(ModuleName, 35, "hook limit reached")
	ErrInsufficientRenewalFunds   = errorsmod.Register(ModuleName, 36, "insufficient renewal funds")
	ErrExcessiveRenewalFunds      = errorsmod.Register(ModuleName, 37, "renewal fund exceeds renewal price")

	ErrInvalidPayment         = errorsmod.Register(ModuleName, 40, "invalid payment")
	ErrFeeExceedsPayment      = errorsmod.Register(ModuleName, 41, "fees exceed payment")
	ErrInvalidContractVersion = errorsmod.Register(ModuleName, 42, "invalid contract version")
)
