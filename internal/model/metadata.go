package model

import "time"

// CoinMetadata is the remote metadata returned for a type that no registry knows.
type CoinMetadata struct {
	Network   Network   `json:"-"`
	Type      string    `json:"type"`
	Symbol    string    `json:"symbol,omitempty"`
	Name      string    `json:"name,omitempty"`
	Decimals  int       `json:"decimals"`
	IconURL   string    `json:"iconUrl,omitempty"`
	UpdatedAt time.Time `json:"-"`
}
