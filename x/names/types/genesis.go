package types

// GenesisState holds the collection's full state. The reverse address
// index is rebuilt from the Name records on import.
type GenesisState struct {
	Params Params  `json:"params"`
	Config *Config `json:"config,omitempty"`
	Names  []Name  `json:"names"`
}

func DefaultGenesis() *GenesisState {
	return &GenesisState{Params: DefaultParams()}
}

func (gs GenesisState) Validate() error {
	if err := gs.Params.Validate(); err != nil {
		return err
	}
	seen := make(map[string]struct{}, len(gs.Names))
	associated := make(map[string]struct{})
	for _, name := range gs.Names {
		if name.TokenId == "" || name.Owner == "" {
			return ErrInvalidParams.Wrap("name requires token id and owner")
		}
		if _, ok := seen[name.TokenId]; ok {
			return ErrInvalidParams.Wrapf("duplicate name %s", name.TokenId)
		}
		seen[name.TokenId] = struct{}{}
		if name.AssociatedAddress != "" {
			if _, ok := associated[name.AssociatedAddress]; ok {
				return ErrInvalidAssociation.Wrapf("address %s associated twice", name.AssociatedAddress)
			}
			associated[name.AssociatedAddress] = struct{}{}
		}
		recordNames := make(map[string]struct{}, len(name.TextRecords))
		for _, r := range name.TextRecords {
			if _, ok := recordNames[r.Name]; ok {
				return ErrInvalidTextRecord.Wrapf("duplicate record %s on %s", r.Name, name.TokenId)
			}
			recordNames[r.Name] = struct{}{}
		}
	}
	return nil
}
