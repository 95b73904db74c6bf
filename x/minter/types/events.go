package types

const (
	EventTypeMintAndList     = "mint-and-list"
	EventTypeSetPaused       = "set-paused"
	EventTypeUpdateParams    = "update-params"
	EventTypeUpdateAdmin     = "update-admin"
	EventTypeAddWhitelist    = "add-whitelist"
	EventTypeRemoveWhitelist = "remove-whitelist"
)

const (
	AttributeKeyName        = "name"
	AttributeKeyOwner       = "owner"
	AttributeKeyPrice       = "price"
	AttributeKeyPaused      = "paused"
	AttributeKeyAdmin       = "admin"
	AttributeKeyWhitelistId = "whitelist_id"
)
