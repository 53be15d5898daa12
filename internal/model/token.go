package model

// TokenInfo describes a token and the contracts it is deployed under.
// Platforms maps a platform id to a contract address, which may be null.
type TokenInfo struct {
	ID        string             `json:"id"`
	Symbol    string             `json:"symbol"`
	Name      string             `json:"name"`
	Platforms map[string]*string `json:"platforms"`
	Image     *string            `json:"image"`
}

// NetworkTokens is a token listing for one network.
type NetworkTokens struct {
	// Network echoes the identifier the caller asked for.
	Network string      `json:"network" example:"ethereum"`
	Tokens  []TokenInfo `json:"tokens"`
	// Strategy names the listing strategy that produced Tokens.
	Strategy string `json:"strategy" example:"platform"`
	// Approximate is true when membership is inferred from an upstream category
	// rather than from the token's actual platform deployments.
	Approximate bool `json:"approximate"`
}

// NetworkTokensResponse represents response for GET /api/v1/tokens/network/{network}
type NetworkTokensResponse struct {
	Success   bool          `json:"success"`
	Data      NetworkTokens `json:"data"`
	Timestamp int64         `json:"timestamp"`
}
