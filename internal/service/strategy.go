package service

import (
	"context"

	"github.com/AlexZinkM/sapphire-api/internal/client"
	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/samber/lo"
)

const (
	// StrategyPlatform filters the full coin list by platform contract.
	StrategyPlatform = "platform"
	// StrategyCategory lists the market rows of the network's ecosystem category.
	StrategyCategory = "category"

	networkTokenLimit = 50
	nativePlatform    = "native"
)

// ListingStrategy produces the token listing of one network.
type ListingStrategy interface {
	Name() string
	// Approximate is true when results are not guaranteed to be deployed on the network.
	Approximate() bool
	List(ctx context.Context, network NetworkInfo) ([]model.TokenInfo, error)
}

// PlatformStrategy lists coins that carry a contract on the network's platform.
// Results are exact but have no images, since the list endpoint carries none.
type PlatformStrategy struct {
	upstream Upstream
}

func NewPlatformStrategy(upstream Upstream) *PlatformStrategy {
	return &PlatformStrategy{upstream: upstream}
}

func (s *PlatformStrategy) Name() string { return StrategyPlatform }

func (s *PlatformStrategy) Approximate() bool { return false }

func (s *PlatformStrategy) List(ctx context.Context, network NetworkInfo) ([]model.TokenInfo, error) {
	coins, err := s.upstream.CoinList(ctx)
	if err != nil {
		return nil, err
	}

	onPlatform := lo.Filter(coins, func(c client.ListedCoin, _ int) bool {
		addr := c.Platforms[network.Platform]
		return addr != nil && *addr != ""
	})
	if len(onPlatform) > networkTokenLimit {
		onPlatform = onPlatform[:networkTokenLimit]
	}

	return lo.Map(onPlatform, func(c client.ListedCoin, _ int) model.TokenInfo {
		platforms := c.Platforms
		if platforms == nil {
			platforms = map[string]*string{}
		}
		return model.TokenInfo{
			ID:        c.ID,
			Symbol:    c.Symbol,
			Name:      c.Name,
			Platforms: platforms,
		}
	}), nil
}

// CategoryStrategy lists the top market rows of the network's ecosystem category.
// Results carry images, but category membership only approximates platform
// membership, and the platform map is a synthetic {platform: "native"} entry.
type CategoryStrategy struct {
	upstream Upstream
}

func NewCategoryStrategy(upstream Upstream) *CategoryStrategy {
	return &CategoryStrategy{upstream: upstream}
}

func (s *CategoryStrategy) Name() string { return StrategyCategory }

func (s *CategoryStrategy) Approximate() bool { return true }

func (s *CategoryStrategy) List(ctx context.Context, network NetworkInfo) ([]model.TokenInfo, error) {
	coins, err := s.upstream.Markets(ctx, client.MarketsQuery{
		Category: network.Category,
		PerPage:  networkTokenLimit,
	})
	if err != nil {
		return nil, err
	}

	return lo.Map(coins, func(c client.MarketCoin, _ int) model.TokenInfo {
		return model.TokenInfo{
			ID:        c.ID,
			Symbol:    c.Symbol,
			Name:      c.Name,
			Platforms: map[string]*string{network.Platform: lo.ToPtr(nativePlatform)},
			Image:     lo.ToPtr(c.Image),
		}
	}), nil
}
