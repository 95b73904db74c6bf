package types

// HookKind selects one of the three observer registries.
type HookKind string

const (
	HookKindAsk  HookKind = "ask"
	HookKindBid  HookKind = "bid"
	HookKindSale HookKind = "sale"
)

// Prefix returns the store prefix backing the registry.
func (k HookKind) Prefix() []byte {
	switch k {
	case HookKindAsk:
		return AskHooksKeyPrefix
	case HookKindBid:
		return BidHooksKeyPrefix
	default:
		return SaleHooksKeyPrefix
	}
}

func (k HookKind) FailureEvent() string {
	switch k {
	case HookKindAsk:
		return EventTypeAskHookFailed
	case HookKindBid:
		return EventTypeBidHookFailed
	default:
		return EventTypeSaleHookFailed
	}
}

// HookAction distinguishes create/update/delete notifications.
type HookAction string

const (
	HookActionCreate HookAction = "create"
	HookActionUpdate HookAction = "update"
	HookActionDelete HookAction = "delete"
)

// SaleHookData is the payload delivered to sale observers.
type SaleHookData struct {
	TokenId TokenId `json:"token_id"`
	Seller  string  `json:"seller"`
	Buyer   string  `json:"buyer"`
}
