package types

// GenesisState holds the full marketplace state for import/export.
// Secondary indices and the renewal queue are rebuilt on import.
type GenesisState struct {
	Params   SudoParams `json:"params"`
	Asks     []Ask      `json:"asks"`
	Bids     []Bid      `json:"bids"`
	AskCount uint64     `json:"ask_count"`
	Config   *Config    `json:"config,omitempty"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Params: DefaultParams(),
	}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Asks))
	for _, ask := range gs.Asks {
		if _, ok := seen[ask.TokenId]; ok {
			return ErrInvalidParams.Wrapf("duplicate ask for %s", ask.TokenId)
		}
		seen[ask.TokenId] = struct{}{}
		if ask.Id > gs.AskCount {
			return ErrInvalidParams.Wrapf("ask id %d exceeds ask count %d", ask.Id, gs.AskCount)
		}
		if ask.RenewalFund.IsNil() || ask.RenewalFund.IsNegative() {
			return ErrInvalidParams.Wrapf("negative renewal fund for %s", ask.TokenId)
		}
	}
	for _, bid := range gs.Bids {
		if _, ok := seen[bid.TokenId]; !ok {
			return ErrInvalidParams.Wrapf("bid on unknown ask %s", bid.TokenId)
		}
		if bid.Amount.IsNil() || !bid.Amount.IsPositive() {
			return ErrInvalidParams.Wrapf("non-positive bid on %s", bid.TokenId)
		}
	}
	return nil
}
