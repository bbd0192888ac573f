package registry

import "github.com/goodnatureofminers/tokenicon-backend/internal/model"

// OriginList is an ordered per-network collection of bridged token types.
// Lookups scan in order and return the first match.
type OriginList struct {
	entries map[model.Network][]model.OriginEntry
}

// NewOriginList copies entries, preserving order.
func NewOriginList(entries map[model.Network][]model.OriginEntry) *OriginList {
	cp := make(map[model.Network][]model.OriginEntry, len(entries))
	for network, list := range entries {
		cp[network] = append([]model.OriginEntry(nil), list...)
	}
	return &OriginList{entries: cp}
}

// Wormhole is the primary bridge registry.
func Wormhole() *OriginList {
	return NewOriginList(wormholeTokens)
}

// SuiBridge is the secondary bridge registry.
func SuiBridge() *OriginList {
	return NewOriginList(suiBridgeTokens)
}

// ChainOf returns the origin chain of coinType on network.
func (l *OriginList) ChainOf(network model.Network, coinType string) (model.Chain, bool) {
	for _, entry := range l.entries[network] {
		if entry.Type == coinType {
			return entry.Chain, true
		}
	}
	return "", false
}
