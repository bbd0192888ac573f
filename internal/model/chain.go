package model

// Chain is the chain a bridged or wrapped asset originally came from.
type Chain string

var (
	ETH   Chain = "ETH"
	BSC   Chain = "BSC"
	SOL   Chain = "SOL"
	AVAX  Chain = "AVAX"
	ARB   Chain = "ARB"
	BTC   Chain = "BTC"
	FTM   Chain = "FTM"
	MATIC Chain = "MATIC"
)

var knownChains = map[Chain]struct{}{
	ETH: {}, BSC: {}, SOL: {}, AVAX: {}, ARB: {}, BTC: {}, FTM: {}, MATIC: {},
}

// ParseChain returns the chain for a registry tag. Unknown tags are reported as absent.
func ParseChain(s string) (Chain, bool) {
	c := Chain(s)
	if _, ok := knownChains[c]; !ok {
		return "", false
	}
	return c, true
}
