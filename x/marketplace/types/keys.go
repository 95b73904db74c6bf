package types

import (
	"encoding/binary"
	"math/big"

	sdkmath "cosmossdk.io/math"
)

var (
	ParamsKey   = []byte{0x00}
	AskCountKey = []byte{0x01}

	// token_id -> Ask
	AskKeyPrefix = []byte{0x02}
	// id (8 byte BE) -> token_id
	AskByIdKeyPrefix = []byte{0x03}
	// seller || 0x00 || token_id -> nil
	AskBySellerKeyPrefix = []byte{0x04}

	// token_id || 0x00 || bidder -> Bid
	BidKeyPrefix = []byte{0x10}
	// token_id || 0x00 || amount (16 byte BE) || bidder -> nil
	BidByPriceKeyPrefix = []byte{0x11}
	// bidder || 0x00 || token_id -> nil
	BidByBidderKeyPrefix = []byte{0x12}

	// renewal_time (8 byte BE) || ask_id (8 byte BE) -> token_id
	RenewalQueueKeyPrefix = []byte{0x20}

	AskHooksKeyPrefix  = []byte{0x30}
	BidHooksKeyPrefix  = []byte{0x31}
	SaleHooksKeyPrefix = []byte{0x32}

	ConfigKey  = []byte{0x40}
	IsSetupKey = []byte{0x41}
	VersionKey = []byte{0x42}
)

// keySeparator terminates variable-length key segments. Token ids and
// bech32 addresses never contain a zero byte.
const keySeparator = byte(0x00)

func concat(parts ...[]byte) []byte {
	size := 0
	for _, p := range parts {
		size += len(p)
	}
	out := make([]byte, 0, size)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func sep() []byte { return []byte{keySeparator} }

// EncodeUint64 encodes big-endian so lexicographic key order matches
// numeric order.
func EncodeUint64(v uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, v)
	return bz
}

func DecodeUint64(bz []byte) uint64 {
	return binary.BigEndian.Uint64(bz)
}

// EncodeAmount encodes an amount as a fixed 16 byte big-endian value so
// price indexes sort numerically. Amounts are bounded to 128 bits.
func EncodeAmount(amount sdkmath.Int) []byte {
	bz := make([]byte, 16)
	raw := amount.BigInt().Bytes()
	copy(bz[16-len(raw):], raw)
	return bz
}

func DecodeAmount(bz []byte) sdkmath.Int {
	return sdkmath.NewIntFromBigInt(new(big.Int).SetBytes(bz))
}

func AskKey(tokenId TokenId) []byte {
	return concat(AskKeyPrefix, []byte(tokenId))
}

func AskByIdKey(id uint64) []byte {
	return concat(AskByIdKeyPrefix, EncodeUint64(id))
}

func AskBySellerKey(seller string, tokenId TokenId) []byte {
	return concat(AskBySellerKeyPrefix, []byte(seller), sep(), []byte(tokenId))
}

func AskBySellerIterPrefix(seller string) []byte {
	return concat(AskBySellerKeyPrefix, []byte(seller), sep())
}

func BidKey(tokenId TokenId, bidder string) []byte {
	return concat(BidKeyPrefix, []byte(tokenId), sep(), []byte(bidder))
}

func BidIterPrefix(tokenId TokenId) []byte {
	return concat(BidKeyPrefix, []byte(tokenId), sep())
}

func BidByPriceKey(tokenId TokenId, amount sdkmath.Int, bidder string) []byte {
	return concat(BidByPriceKeyPrefix, []byte(tokenId), sep(), EncodeAmount(amount), []byte(bidder))
}

func BidByPriceIterPrefix(tokenId TokenId) []byte {
	return concat(BidByPriceKeyPrefix, []byte(tokenId), sep())
}

func BidByBidderKey(bidder string, tokenId TokenId) []byte {
	return concat(BidByBidderKeyPrefix, []byte(bidder), sep(), []byte(tokenId))
}

func BidByBidderIterPrefix(bidder string) []byte {
	return concat(BidByBidderKeyPrefix, []byte(bidder), sep())
}

func RenewalQueueKey(renewalTime uint64, askId uint64) []byte {
	return concat(RenewalQueueKeyPrefix, EncodeUint64(renewalTime), EncodeUint64(askId))
}

func RenewalQueueTimeIterPrefix(renewalTime uint64) []byte {
	return concat(RenewalQueueKeyPrefix, EncodeUint64(renewalTime))
}

// ParseRenewalQueueKey splits a full store key back into its components.
func ParseRenewalQueueKey(key []byte) (renewalTime uint64, askId uint64) {
	rest := key[len(RenewalQueueKeyPrefix):]
	return DecodeUint64(rest[:8]), DecodeUint64(rest[8:16])
}

// ParseBidByPriceKey extracts (amount, bidder) from a price index key,
// given the token prefix it was scanned under.
func ParseBidByPriceKey(key []byte, tokenId TokenId) (amount sdkmath.Int, bidder string) {
	rest := key[len(BidByPriceIterPrefix(tokenId)):]
	return DecodeAmount(rest[:16]), string(rest[16:])
}

func HookKey(prefix []byte, addr string) []byte {
	return concat(prefix, []byte(addr))
}
