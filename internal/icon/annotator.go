package icon

import "github.com/goodnatureofminers/tokenicon-backend/internal/model"

// Annotator derives the chain badge and verified badge of a request. Both are
// pure reads of loaded registries; a nil registry reads as empty.
type Annotator struct {
	curated  CuratedRegistry
	verified VerifiedRegistry
	origins  []OriginRegistry
}

// NewAnnotator consults origins in the given order after the curated chain.
func NewAnnotator(curated CuratedRegistry, verified VerifiedRegistry, origins ...OriginRegistry) *Annotator {
	return &Annotator{curated: curated, verified: verified, origins: origins}
}

// OriginOf returns the chain a bridged token came from. The curated entry's chain
// wins when declared; otherwise the origin lists are scanned in order.
func (a *Annotator) OriginOf(req model.TokenRequest) (model.Chain, bool) {
	if a.curated != nil {
		if token, ok := a.curated.StrictToken(req.Network, req.Type); ok && token.Chain != "" {
			// A declared chain ends the lookup even when no badge exists for it.
			return model.ParseChain(string(token.Chain))
		}
	}
	for _, origin := range a.origins {
		if origin == nil {
			continue
		}
		if chain, ok := origin.ChainOf(req.Network, req.Type); ok {
			return chain, true
		}
	}
	return "", false
}

// IsVerified reports membership in the verified set or the curated registry.
func (a *Annotator) IsVerified(req model.TokenRequest) bool {
	if req.Type == "" {
		return false
	}
	if a.verified != nil && a.verified.Contains(req.Network, req.Type) {
		return true
	}
	if a.curated != nil {
		_, ok := a.curated.StrictToken(req.Network, req.Type)
		return ok
	}
	return false
}
