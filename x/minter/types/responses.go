package types

import sdkmath "cosmossdk.io/math"

type MsgMintAndListResponse struct {
	Name  string      `json:"name"`
	Price sdkmath.Int `json:"price"`
}
