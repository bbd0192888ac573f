package registry

import (
	"sync"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

// CuratedStore is the strict token registry. Each network is filled once per session
// and is read-only afterwards; readers see an empty registry until then.
type CuratedStore struct {
	mu     sync.RWMutex
	tokens map[model.Network]map[string]model.StrictToken
}

func NewCuratedStore() *CuratedStore {
	return &CuratedStore{tokens: make(map[model.Network]map[string]model.StrictToken)}
}

// Load installs the strict tokens for network. It returns false, leaving the store
// untouched, when the network was already loaded. Entries without a type are dropped
// and the first entry for a duplicated type wins. Chain tags are kept as listed.
func (s *CuratedStore) Load(network model.Network, tokens []model.StrictToken) bool {
	byType := make(map[string]model.StrictToken, len(tokens))
	for _, token := range tokens {
		if token.Type == "" {
			continue
		}
		if _, exists := byType[token.Type]; exists {
			continue
		}
		byType[token.Type] = token
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, loaded := s.tokens[network]; loaded {
		return false
	}
	s.tokens[network] = byType
	return true
}

// StrictToken returns the curated entry for coinType on network.
func (s *CuratedStore) StrictToken(network model.Network, coinType string) (model.StrictToken, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	token, ok := s.tokens[network][coinType]
	return token, ok
}

// Loaded reports whether network has been populated.
func (s *CuratedStore) Loaded(network model.Network) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.tokens[network]
	return ok
}
