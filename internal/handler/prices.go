package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/gorilla/mux"
)

// PriceService is the part of the aggregator the price routes need.
type PriceService interface {
	MajorCoinPrices(ctx context.Context) (map[string]model.CoinPrice, error)
	TokenPrice(ctx context.Context, tokenID string) (*model.TokenPrice, error)
}

// PriceHandler serves /api/v1/prices
type PriceHandler struct {
	prices PriceService
}

// NewPriceHandler creates a new PriceHandler
func NewPriceHandler(prices PriceService) *PriceHandler {
	return &PriceHandler{prices: prices}
}

// MajorCoins handles GET /api/v1/prices/major-coins
// @Summary      Get major coin prices
// @Description  Current USD prices for BTC, ETH, BNB, TRON and FIL keyed by coin id
// @Tags         prices
// @Produce      json
// @Success      200  {object}  model.PriceResponse
// @Failure      500  {object}  model.ErrorResponse
// @Router       /api/v1/prices/major-coins [get]
func (h *PriceHandler) MajorCoins(w http.ResponseWriter, r *http.Request) {
	prices, err := h.prices.MajorCoinPrices(r.Context())
	if err != nil {
		writeError(w, r, http.StatusInternalServerError, err)
		return
	}

	writeJSON(w, http.StatusOK, model.PriceResponse{
		Success:   true,
		Data:      prices,
		Timestamp: time.Now().Unix(),
	})
}

// Token handles GET /api/v1/prices/token/{token_id}
// @Summary      Get token price
// @Description  Current USD price of a token by its CoinGecko id
// @Tags         prices
// @Produce      json
// @Param        token_id  path      string  true  "CoinGecko coin id"
// @Success      200       {object}  model.TokenPriceResponse
// @Failure      404       {object}  model.ErrorResponse
// @Router       /api/v1/prices/token/{token_id} [get]
func (h *PriceHandler) Token(w http.ResponseWriter, r *http.Request) {
	tokenID := mux.Vars(r)["token_id"]

	price, err := h.prices.TokenPrice(r.Context(), tokenID)
	if err != nil {
		writeError(w, r, http.StatusNotFound, err)
		return
	}

	writeJSON(w, http.StatusOK, model.TokenPriceResponse{
		Success:   true,
		Data:      *price,
		Timestamp: time.Now().Unix(),
	})
}
