package types

const (
	ModuleName = "names"
	StoreKey   = ModuleName
)

const (
	// DefaultMaxTextLength bounds bios and text record names/values.
	DefaultMaxTextLength = 512
	// DefaultMaxTextRecords bounds the records attached to one name.
	DefaultMaxTextRecords = 10
)

// NFT references a token in some collection, used for profile pictures.
type NFT struct {
	Collection string `json:"collection"`
	TokenId    string `json:"token_id"`
}

// TextRecord is an arbitrary (name, value) pair attached to a name,
// e.g. a twitter handle or a website. Record names are unique per name.
type TextRecord struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Name is a minted name token with its metadata. Names are never
// burned.
type Name struct {
	TokenId           string       `json:"token_id"`
	Owner             string       `json:"owner"`
	AssociatedAddress string       `json:"associated_address,omitempty"`
	Bio               string       `json:"bio,omitempty"`
	ProfileNFT        *NFT         `json:"profile_nft,omitempty"`
	TextRecords       []TextRecord `json:"text_records,omitempty"`
}

// HasTextRecord reports whether a record with the given name exists.
func (n Name) HasTextRecord(recordName string) bool {
	for _, r := range n.TextRecords {
		if r.Name == recordName {
			return true
		}
	}
	return false
}

// Params are the collection's governance-tunable limits.
type Params struct {
	MaxTextLength  uint32 `json:"max_text_length"`
	MaxTextRecords uint32 `json:"max_text_records"`
}

func DefaultParams() Params {
	return Params{
		MaxTextLength:  DefaultMaxTextLength,
		MaxTextRecords: DefaultMaxTextRecords,
	}
}

func (p Params) Validate() error {
	if p.MaxTextLength == 0 {
		return ErrInvalidParams.Wrap("max text length cannot be zero")
	}
	if p.MaxTextRecords == 0 {
		return ErrInvalidParams.Wrap("max text records cannot be zero")
	}
	return nil
}

// Config holds the privileged collaborator addresses.
type Config struct {
	Minter      string `json:"minter"`
	Marketplace string `json:"marketplace"`
}
