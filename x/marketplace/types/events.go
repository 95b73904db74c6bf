package types

// Event types emitted by the marketplace, mirroring the wire-level names
// downstream indexers already consume.
const (
	EventTypeSetAsk         = "set-ask"
	EventTypeUpdateAsk      = "update-ask"
	EventTypeSetBid         = "set-bid"
	EventTypeRemoveBid      = "remove-bid"
	EventTypeAcceptBid      = "accept-bid"
	EventTypeFundRenewal    = "fund-renewal"
	EventTypeRefundRenewal  = "refund-renewal"
	EventTypeProcessRenewal = "process-renewal"
	EventTypeRenewName      = "renew-name"
	EventTypeFinalizeSale   = "finalize-sale"
	EventTypeBurn           = "burn"
	EventTypeRemoveStaleBid = "remove-stale-bid"
	EventTypeUpdateParams   = "update-params"
	EventTypeSetup          = "setup"
	EventTypeAddHook        = "add-hook"
	EventTypeRemoveHook     = "remove-hook"
	EventTypeMigrate        = "migrate"

	EventTypeAskHookFailed  = "ask-hook-failed"
	EventTypeBidHookFailed  = "bid-hook-failed"
	EventTypeSaleHookFailed = "sale-hook-failed"
)

const (
	AttributeKeyTokenId     = "token_id"
	AttributeKeyAskId       = "ask_id"
	AttributeKeySeller      = "seller"
	AttributeKeyBidder      = "bidder"
	AttributeKeyBuyer       = "buyer"
	AttributeKeyPrice       = "price"
	AttributeKeyAmount      = "amount"
	AttributeKeyAction      = "action"
	AttributeKeyRenewalTime = "renewal_time"
	AttributeKeyRenewalFund = "renewal_fund"
	AttributeKeyOperator    = "operator"
	AttributeKeyReward      = "reward"
	AttributeKeyHook        = "hook"
	AttributeKeyHookKind    = "kind"
	AttributeKeyError       = "error"
	AttributeKeyMinter      = "minter"
	AttributeKeyCollection  = "collection"

	AttributeKeyTokenIdBurned = "token_id-burned"
)

const (
	AttributeValueRenew = "renew"
	AttributeValueSell  = "sell"
	AttributeValueBurn  = "burn"
)
