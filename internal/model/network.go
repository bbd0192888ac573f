package model

type Network string

var (
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

// IsMainnet reports whether static icons for n are keyed by on-chain type rather than symbol.
func (n Network) IsMainnet() bool {
	return n == Mainnet
}

// ParseNetwork accepts the bare network name as well as the "sui:" prefixed wallet form.
func ParseNetwork(s string) (Network, bool) {
	switch s {
	case "mainnet", "sui:mainnet":
		return Mainnet, true
	case "testnet", "sui:testnet":
		return Testnet, true
	default:
		return "", false
	}
}
