package model

// CoinPrice is the market snapshot of one major coin.
type CoinPrice struct {
	CoinID                   string  `json:"coin_id" example:"bitcoin"`
	Symbol                   string  `json:"symbol" example:"btc"`
	Name                     string  `json:"name" example:"Bitcoin"`
	CurrentPrice             float64 `json:"current_price"`
	PriceChange24h           float64 `json:"price_change_24h"`
	PriceChangePercentage24h float64 `json:"price_change_percentage_24h"`
	Image                    string  `json:"image"`
	LastUpdated              string  `json:"last_updated"`
}

// TokenPrice is the USD price of a single token.
// The 24h change fields are null when the upstream does not report them.
type TokenPrice struct {
	TokenID                  string   `json:"token_id" example:"chainlink"`
	Symbol                   string   `json:"symbol" example:"link"`
	Name                     string   `json:"name" example:"Chainlink"`
	CurrentPrice             float64  `json:"current_price"`
	PriceChange24h           *float64 `json:"price_change_24h"`
	PriceChangePercentage24h *float64 `json:"price_change_percentage_24h"`
	Image                    string   `json:"image"`
}

// PriceResponse represents response for GET /api/v1/prices/major-coins
type PriceResponse struct {
	Success   bool                 `json:"success"`
	Data      map[string]CoinPrice `json:"data"`
	Timestamp int64                `json:"timestamp"`
}

// TokenPriceResponse represents response for GET /api/v1/prices/token/{token_id}
type TokenPriceResponse struct {
	Success   bool       `json:"success"`
	Data      TokenPrice `json:"data"`
	Timestamp int64      `json:"timestamp"`
}
