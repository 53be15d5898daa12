// Package service turns CoinGecko responses into the wallet API schema.
package service

import (
	"context"
	"errors"
	"maps"
	"slices"
	"strings"

	"github.com/AlexZinkM/sapphire-api/internal/cache"
	"github.com/AlexZinkM/sapphire-api/internal/client"
	applog "github.com/AlexZinkM/sapphire-api/internal/logger"
	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

var majorCoinIDs = []string{"bitcoin", "ethereum", "binancecoin", "tron", "filecoin"}

// Upstream is the market data provider. *client.CoinGeckoClient implements it.
type Upstream interface {
	Markets(ctx context.Context, q client.MarketsQuery) ([]client.MarketCoin, error)
	CoinDetail(ctx context.Context, id string) (*client.CoinDetail, error)
	CoinList(ctx context.Context) ([]client.ListedCoin, error)
}

// Aggregator issues one upstream call per operation and normalizes the result.
// It holds no mutable state besides the cache and is safe for concurrent use.
type Aggregator struct {
	upstream        Upstream
	networks        *Networks
	cache           *cache.Store
	strategies      map[string]ListingStrategy
	defaultStrategy string
	logger          zerolog.Logger
}

// NewAggregator wires the aggregator. A nil store disables caching.
func NewAggregator(upstream Upstream, networks *Networks, store *cache.Store, defaultStrategy string, logger zerolog.Logger) (*Aggregator, error) {
	strategies := map[string]ListingStrategy{}
	for _, s := range []ListingStrategy{NewPlatformStrategy(upstream), NewCategoryStrategy(upstream)} {
		strategies[s.Name()] = s
	}
	if defaultStrategy == "" {
		defaultStrategy = StrategyPlatform
	}
	if _, ok := strategies[defaultStrategy]; !ok {
		return nil, model.NewError(model.KindInvalidStrategy, defaultStrategy, nil)
	}
	if store == nil {
		store = cache.New(0)
	}

	return &Aggregator{
		upstream:        upstream,
		networks:        networks,
		cache:           store,
		strategies:      strategies,
		defaultStrategy: defaultStrategy,
		logger:          applog.Component(logger, "aggregator"),
	}, nil
}

// Strategies returns the names of the available listing strategies, sorted.
func (a *Aggregator) Strategies() []string {
	names := lo.Keys(a.strategies)
	slices.Sort(names)
	return names
}

// MajorCoinPrices returns USD market data for the major coins keyed by coin id.
// Duplicate ids from the upstream resolve to the last row.
func (a *Aggregator) MajorCoinPrices(ctx context.Context) (map[string]model.CoinPrice, error) {
	key := cache.Key("major", strings.Join(majorCoinIDs, ","))
	prices, err := cache.Remember(ctx, a.cache, key, func(ctx context.Context) (map[string]model.CoinPrice, error) {
		coins, err := a.upstream.Markets(ctx, client.MarketsQuery{
			IDs:                   majorCoinIDs,
			PerPage:               100,
			PriceChangePercentage: "24h",
		})
		if err != nil {
			return nil, err
		}
		return lo.SliceToMap(coins, func(c client.MarketCoin) (string, model.CoinPrice) {
			return c.ID, model.CoinPrice{
				CoinID:                   c.ID,
				Symbol:                   c.Symbol,
				Name:                     c.Name,
				CurrentPrice:             c.CurrentPrice,
				PriceChange24h:           c.PriceChange24h,
				PriceChangePercentage24h: c.PriceChangePercentage24h,
				Image:                    c.Image,
				LastUpdated:              c.LastUpdated,
			}
		}), nil
	})
	if err != nil {
		return nil, a.fail(err, "major coin prices")
	}
	return maps.Clone(prices), nil
}

// TokenPrice returns the USD price of one token. The id is forwarded as is.
func (a *Aggregator) TokenPrice(ctx context.Context, tokenID string) (*model.TokenPrice, error) {
	price, err := cache.Remember(ctx, a.cache, cache.Key("token", tokenID), func(ctx context.Context) (model.TokenPrice, error) {
		detail, err := a.upstream.CoinDetail(ctx, tokenID)
		if err != nil {
			return model.TokenPrice{}, err
		}
		if detail.ID == "" {
			return model.TokenPrice{}, model.NewError(model.KindUpstreamMalformed, "coin detail has no id", nil)
		}
		return tokenPriceFromDetail(detail), nil
	})
	if err != nil {
		return nil, a.fail(err, "token price "+tokenID)
	}
	return &price, nil
}

func tokenPriceFromDetail(d *client.CoinDetail) model.TokenPrice {
	price := model.TokenPrice{
		TokenID: d.ID,
		Symbol:  d.Symbol,
		Name:    d.Name,
		Image:   d.Image.Large,
	}
	if md := d.MarketData; md != nil {
		price.CurrentPrice = md.CurrentPrice["usd"]
		price.PriceChange24h = md.PriceChange24h
		price.PriceChangePercentage24h = md.PriceChangePercentage24h
	}
	return price
}

// NetworkTokens lists tokens of a network with the named strategy.
// An empty strategy selects the configured default. Unknown strategies and
// networks fail before any upstream call.
func (a *Aggregator) NetworkTokens(ctx context.Context, network, strategy string) (*model.NetworkTokens, error) {
	if strategy == "" {
		strategy = a.defaultStrategy
	}
	lister, ok := a.strategies[strings.ToLower(strategy)]
	if !ok {
		return nil, model.NewError(model.KindInvalidStrategy, strategy, nil)
	}

	info, err := a.networks.Resolve(network)
	if err != nil {
		return nil, err
	}

	tokens, err := cache.Remember(ctx, a.cache, cache.Key("network", lister.Name(), info.Name), func(ctx context.Context) ([]model.TokenInfo, error) {
		return lister.List(ctx, info)
	})
	if err != nil {
		return nil, a.fail(err, "network tokens "+info.Name)
	}

	return &model.NetworkTokens{
		Network:     network,
		Tokens:      slices.Clone(tokens),
		Strategy:    lister.Name(),
		Approximate: lister.Approximate(),
	}, nil
}

// fail logs an upstream failure and makes sure it carries an error kind.
func (a *Aggregator) fail(err error, op string) error {
	if errors.Is(err, context.Canceled) {
		a.logger.Debug().Err(err).Str("op", op).Msg("request canceled")
		return err
	}
	if _, ok := lo.ErrorsAs[*model.Error](err); !ok {
		err = model.NewError(model.KindUpstreamUnavailable, "", err)
	}
	a.logger.Warn().Err(err).Str("op", op).Str("kind", model.KindOf(err).Code()).Msg("upstream call failed")
	return err
}
