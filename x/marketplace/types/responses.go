package types

import sdkmath "cosmossdk.io/math"

type MsgSetAskResponse struct {
	AskId uint64 `json:"ask_id"`
}

type MsgSyncAskResponse struct{}

type MsgSetBidResponse struct{}

type MsgRemoveBidResponse struct{}

type MsgAcceptBidResponse struct{}

type MsgFundRenewalResponse struct {
	RenewalFund sdkmath.Int `json:"renewal_fund"`
}

type MsgRefundRenewalResponse struct {
	Refunded sdkmath.Int `json:"refunded"`
}

type MsgRenewResponse struct {
	RenewalPrice sdkmath.Int `json:"renewal_price"`
}

type MsgProcessRenewalsResponse struct {
	Processed uint32 `json:"processed"`
}

type MsgRemoveStaleBidResponse struct {
	Reward sdkmath.Int `json:"reward"`
}
