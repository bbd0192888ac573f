package model

// StrictToken is a curated registry entry. Only LogoURL and Chain feed icon resolution;
// the remaining fields are carried for API consumers.
type StrictToken struct {
	Type     string `json:"type"`
	Symbol   string `json:"symbol,omitempty"`
	Name     string `json:"name,omitempty"`
	Decimals int    `json:"decimals,omitempty"`
	LogoURL  string `json:"logoUrl,omitempty"`
	Chain    Chain  `json:"chain,omitempty"`
}

// OriginEntry maps a bridged token type to the chain it came from.
type OriginEntry struct {
	Type  string
	Chain Chain
}
