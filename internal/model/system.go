package model

// RootResponse represents response for GET /
type RootResponse struct {
	Message string `json:"message" example:"Sapphire Wallet API"`
	Version string `json:"version" example:"1.0.0"`
}

// HealthResponse represents response for GET /health
type HealthResponse struct {
	Status string `json:"status" example:"healthy"`
}
