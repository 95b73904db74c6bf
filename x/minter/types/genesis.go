package types

// GenesisState carries the minter's params, pause flag, whitelists and
// per-address mint counts.
type GenesisState struct {
	Params         Params      `json:"params"`
	Paused         bool        `json:"paused"`
	Admin          string      `json:"admin,omitempty"`
	WhitelistCount uint64      `json:"whitelist_count"`
	Whitelists     []Whitelist `json:"whitelists"`
	MintCounts     []MintCount `json:"mint_counts"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	ids := make(map[uint64]struct{}, len(gs.Whitelists))
	for _, wl := range gs.Whitelists {
		if err := wl.Validate(); err != nil {
			return err
		}
		if _, ok := ids[wl.Id]; ok {
			return ErrInvalidParams.Wrapf("duplicate whitelist id %d", wl.Id)
		}
		if wl.Id > gs.WhitelistCount {
			return ErrInvalidParams.Wrapf("whitelist id %d exceeds count %d", wl.Id, gs.WhitelistCount)
		}
		ids[wl.Id] = struct{}{}
	}
	for _, mc := range gs.MintCounts {
		if _, ok := ids[mc.WhitelistId]; !ok {
			return ErrWhitelistNotFound.Wrapf("mint count for unknown whitelist %d", mc.WhitelistId)
		}
	}
	return nil
}
