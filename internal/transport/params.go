package transport

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/goodnatureofminers/tokenicon-backend/internal/model"
)

func parseNetwork(raw string) (model.Network, error) {
	if raw == "" {
		return "", fmt.Errorf("network is required")
	}
	network, ok := model.ParseNetwork(raw)
	if !ok {
		return "", fmt.Errorf("unknown network %q", raw)
	}
	return network, nil
}

func parseBool(q url.Values, name string) (bool, error) {
	raw := q.Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

func parseHints(q url.Values) (model.Hints, error) {
	var (
		hints model.Hints
		err   error
	)
	hints.Size = q.Get("size")
	hints.Bg = q.Get("bg")
	if raw := q.Get("loaderSize"); raw != "" {
		if hints.LoaderSize, err = strconv.Atoi(raw); err != nil {
			return model.Hints{}, fmt.Errorf("invalid loaderSize: %w", err)
		}
	}
	if hints.Rounded, err = parseBool(q, "rounded"); err != nil {
		return model.Hints{}, err
	}
	if hints.WithBg, err = parseBool(q, "withBg"); err != nil {
		return model.Hints{}, err
	}
	if hints.Simple, err = parseBool(q, "simple"); err != nil {
		return model.Hints{}, err
	}
	return hints, nil
}

func parseTokenRequest(q url.Values) (model.TokenRequest, error) {
	network, err := parseNetwork(q.Get("network"))
	if err != nil {
		return model.TokenRequest{}, err
	}
	return model.TokenRequest{
		Network:     network,
		Type:        q.Get("type"),
		ExplicitURL: q.Get("url"),
		Symbol:      q.Get("symbol"),
	}, nil
}

func splitTypeList(raw string) []string {
	var types []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			types = append(types, t)
		}
	}
	return types
}
