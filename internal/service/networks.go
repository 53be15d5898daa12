package service

import (
	"fmt"
	"slices"
	"strings"

	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/samber/lo"
)

// NetworkInfo maps a public network name to its upstream identifiers.
type NetworkInfo struct {
	Name     string
	Platform string
	Category string
}

var knownNetworks = map[string]NetworkInfo{
	"ethereum":            {Name: "ethereum", Platform: "ethereum", Category: "ethereum-ecosystem"},
	"binance-smart-chain": {Name: "binance-smart-chain", Platform: "binance-smart-chain", Category: "binance-smart-chain"},
	"tron":                {Name: "tron", Platform: "tron", Category: "tron-ecosystem"},
	"filecoin":            {Name: "filecoin", Platform: "filecoin", Category: "filecoin-ecosystem"},
}

// KnownNetworks lists every network the registry can map, sorted.
func KnownNetworks() []string {
	names := lo.Keys(knownNetworks)
	slices.Sort(names)
	return names
}

// Networks is the allowlisted subset of the registry.
type Networks struct {
	allowed map[string]NetworkInfo
}

// NewNetworks builds the allowlist. Every name must be a known network.
func NewNetworks(allowlist []string) (*Networks, error) {
	if len(allowlist) == 0 {
		return nil, fmt.Errorf("network allowlist is empty")
	}
	allowed := make(map[string]NetworkInfo, len(allowlist))
	for _, name := range allowlist {
		key := strings.ToLower(strings.TrimSpace(name))
		info, ok := knownNetworks[key]
		if !ok {
			return nil, fmt.Errorf("network %q has no upstream mapping (known: %s)", name, strings.Join(KnownNetworks(), ", "))
		}
		allowed[key] = info
	}
	return &Networks{allowed: allowed}, nil
}

// Resolve looks a network up case-insensitively.
func (n *Networks) Resolve(name string) (NetworkInfo, error) {
	info, ok := n.allowed[strings.ToLower(name)]
	if !ok {
		return NetworkInfo{}, model.NewError(model.KindUnsupportedNetwork, name, nil)
	}
	return info, nil
}

// Names returns the allowlisted network names, sorted.
func (n *Networks) Names() []string {
	names := lo.Keys(n.allowed)
	slices.Sort(names)
	return names
}
