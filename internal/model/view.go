package model

const (
	DefaultSize       = "1.5rem"
	DefaultLoaderSize = 16
	DefaultBg         = "black"
)

// Hints are presentation options passed through to the consumer unchanged,
// except Simple which suppresses the chain badge.
type Hints struct {
	Size       string `json:"size"`
	LoaderSize int    `json:"loaderSize"`
	Rounded    bool   `json:"rounded"`
	WithBg     bool   `json:"withBg"`
	Bg         string `json:"bg,omitempty"`
	Simple     bool   `json:"simple"`
}

// WithDefaults fills the zero values the same way for every consumer.
func (h Hints) WithDefaults() Hints {
	if h.Size == "" {
		h.Size = DefaultSize
	}
	if h.LoaderSize <= 0 {
		h.LoaderSize = DefaultLoaderSize
	}
	if h.WithBg && h.Bg == "" {
		h.Bg = DefaultBg
	}
	return h
}

// View is everything a consumer needs for one render.
type View struct {
	Request    TokenRequest `json:"request"`
	Source     IconSource   `json:"source"`
	Pending    bool         `json:"pending"`
	LoadState  LoadState    `json:"loadState"`
	Fallback   bool         `json:"fallback"`
	Origin     Chain        `json:"origin,omitempty"`
	ChainBadge Chain        `json:"chainBadge,omitempty"`
	Verified   bool         `json:"verified"`
	Hints      Hints        `json:"hints"`
}
