package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/AlexZinkM/sapphire-api/internal/model"

	"github.com/gorilla/mux"
)

// TokenService is the part of the aggregator the token routes need.
type TokenService interface {
	NetworkTokens(ctx context.Context, network, strategy string) (*model.NetworkTokens, error)
}

// TokenHandler serves /api/v1/tokens
type TokenHandler struct {
	tokens TokenService
}

// NewTokenHandler creates a new TokenHandler
func NewTokenHandler(tokens TokenService) *TokenHandler {
	return &TokenHandler{tokens: tokens}
}

// Network handles GET /api/v1/tokens/network/{network}
// @Summary      List network tokens
// @Description  Tokens available on a network. Supported networks: ethereum, binance-smart-chain, tron, filecoin.
// @Description  strategy=platform (default) filters by contract platform and has no images.
// @Description  strategy=category uses the network's ecosystem category; it has images but is approximate.
// @Tags         tokens
// @Produce      json
// @Param        network   path      string  true   "Network name"
// @Param        strategy  query     string  false  "Listing strategy: platform or category"
// @Success      200       {object}  model.NetworkTokensResponse
// @Failure      400       {object}  model.ErrorResponse
// @Router       /api/v1/tokens/network/{network} [get]
func (h *TokenHandler) Network(w http.ResponseWriter, r *http.Request) {
	network := mux.Vars(r)["network"]
	strategy := r.URL.Query().Get("strategy")

	tokens, err := h.tokens.NetworkTokens(r.Context(), network, strategy)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err)
		return
	}

	writeJSON(w, http.StatusOK, model.NetworkTokensResponse{
		Success:   true,
		Data:      *tokens,
		Timestamp: time.Now().Unix(),
	})
}
