package model

import "strconv"

// TokenRequest identifies the token or NFT whose icon is being resolved.
// Values are never mutated; a changed request is a new value.
type TokenRequest struct {
	Network     Network `json:"network"`
	Type        string  `json:"type"`
	ExplicitURL string  `json:"url,omitempty"`
	Symbol      string  `json:"symbol,omitempty"`
}

// StaticKey is the lookup key into the bundled icon map: the type on mainnet, the symbol elsewhere.
func (r TokenRequest) StaticKey() string {
	if r.Network.IsMainnet() {
		return r.Type
	}
	return r.Symbol
}

// Key returns the composite cache key. Symbol is not part of it.
func (r TokenRequest) Key() CacheKey {
	return CacheKey{Network: r.Network, Type: r.Type, ExplicitURL: r.ExplicitURL}
}

// CacheKey is comparable, so two keys are equal iff all three components are equal.
type CacheKey struct {
	Network     Network
	Type        string
	ExplicitURL string
}

// String encodes the key for string-keyed structures. Each part is quoted so the
// encoding stays injective even when parts contain the separator.
func (k CacheKey) String() string {
	return strconv.Quote(string(k.Network)) + "-" + strconv.Quote(k.Type) + "-" + strconv.Quote(k.ExplicitURL)
}
