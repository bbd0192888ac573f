// Package registry holds the read-only token registries consulted by icon resolution.
package registry

import "github.com/goodnatureofminers/tokenicon-backend/internal/model"

// StaticIcons maps (network, key) to a bundled icon. Mainnet keys are on-chain types,
// other networks key by symbol.
type StaticIcons struct {
	icons map[model.Network]map[string]model.ImageRef
}

// NewStaticIcons returns the icons bundled with the service.
func NewStaticIcons() *StaticIcons {
	return NewStaticIconsFrom(bundledIcons)
}

// NewStaticIconsFrom copies icons so later changes to the argument are not observed.
func NewStaticIconsFrom(icons map[model.Network]map[string]model.ImageRef) *StaticIcons {
	cp := make(map[model.Network]map[string]model.ImageRef, len(icons))
	for network, byKey := range icons {
		inner := make(map[string]model.ImageRef, len(byKey))
		for key, ref := range byKey {
			inner[key] = ref
		}
		cp[network] = inner
	}
	return &StaticIcons{icons: cp}
}

// Lookup returns the bundled icon for key on network. Empty keys never match.
func (s *StaticIcons) Lookup(network model.Network, key string) (model.ImageRef, bool) {
	if key == "" {
		return model.ImageRef{}, false
	}
	ref, ok := s.icons[network][key]
	return ref, ok
}
