package registry

import (
	"sync"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// VerifiedStore is the set of verified NFT and collection types, independent of the
// curated token registry.
type VerifiedStore struct {
	mu    sync.RWMutex
	types map[model.Network]map[string]struct{}
}

func NewVerifiedStore() *VerifiedStore {
	return &VerifiedStore{types: make(map[model.Network]map[string]struct{})}
}

// Load installs the verified set for network once; later calls return false.
func (s *VerifiedStore) Load(network model.Network, types []string) bool {
	set := make(map[string]struct{}, len(types))
	for _, t := range types {
		if t != "" {
			set[t] = struct{}{}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, loaded := s.types[network]; loaded {
		return false
	}
	s.types[network] = set
	return true
}

func (s *VerifiedStore) Contains(network model.Network, coinType string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.types[network][coinType]
	return ok
}

func (s *VerifiedStore) Loaded(network model.Network) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.types[network]
	return ok
}
