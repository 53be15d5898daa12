package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/AlexZinkM/sapphire-api/internal/client"
)

// fakeUpstream records calls and serves canned responses.
type fakeUpstream struct {
	mu sync.Mutex

	markets   []client.MarketCoin
	detail    *client.CoinDetail
	list      []client.ListedCoin
	err       error
	marketsQ  []client.MarketsQuery
	detailIDs []string
	listCalls int

	// when gate is set, Markets signals entered and blocks until gate closes or ctx ends
	gate    chan struct{}
	entered chan struct{}
}

func (f *fakeUpstream) Markets(ctx context.Context, q client.MarketsQuery) ([]client.MarketCoin, error) {
	f.mu.Lock()
	f.marketsQ = append(f.marketsQ, q)
	gate, entered := f.gate, f.entered
	f.mu.Unlock()

	if gate != nil {
		select {
		case entered <- struct{}{}:
		default:
		}
		select {
		case <-gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return f.markets, nil
}

func (f *fakeUpstream) CoinDetail(_ context.Context, id string) (*client.CoinDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.detailIDs = append(f.detailIDs, id)
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeUpstream) CoinList(_ context.Context) ([]client.ListedCoin, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.listCalls++
	if f.err != nil {
		return nil, f.err
	}
	return f.list, nil
}

func (f *fakeUpstream) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.marketsQ) + len(f.detailIDs) + f.listCalls
}

func addr(s string) *string { return &s }

// listedCoins builds n coins on platform followed by other coins in between.
func listedCoins(n int, platform string) []client.ListedCoin {
	coins := make([]client.ListedCoin, 0, 2*n)
	for i := 0; i < n; i++ {
		coins = append(coins,
			client.ListedCoin{
				ID:        fmt.Sprintf("token-%d", i),
				Symbol:    fmt.Sprintf("t%d", i),
				Name:      fmt.Sprintf("Token %d", i),
				Platforms: map[string]*string{platform: addr(fmt.Sprintf("0x%04x", i))},
			},
			client.ListedCoin{
				ID:        fmt.Sprintf("other-%d", i),
				Symbol:    fmt.Sprintf("o%d", i),
				Name:      fmt.Sprintf("Other %d", i),
				Platforms: map[string]*string{"solana": addr("So1"), platform: addr("")},
			},
		)
	}
	return coins
}
