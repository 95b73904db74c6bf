package types

const (
	EventTypeMintName         = "mint-name"
	EventTypeTransferName     = "transfer-name"
	EventTypeBurnName         = "burn-name"
	EventTypeAssociateAddress = "associate-address"
	EventTypeUpdateBio        = "update-bio"
	EventTypeUpdateProfileNFT = "update-profile-nft"
	EventTypeAddTextRecord    = "add-text-record"
	EventTypeUpdateTextRecord = "update-text-record"
	EventTypeRemoveTextRecord = "remove-text-record"
	EventTypeUpdateParams     = "update-params"
)

const (
	AttributeKeyTokenId    = "token_id"
	AttributeKeyOwner      = "owner"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyAddress    = "address"
	AttributeKeyRecordName = "record_name"
	AttributeKeyCollection = "collection"
)
