package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type PriceUseCase interface {
	NormalizeQuery(raw map[string]string) domain.PriceQuery
	AveragePrice(ctx context.Context, q domain.PriceQuery) (domain.Quote, error)
}

type PriceHandler struct {
	prices PriceUseCase
	logger zerolog.Logger
}

func NewPriceHandler(prices PriceUseCase, logger zerolog.Logger) *PriceHandler {
	return &PriceHandler{
		prices: prices,
		logger: logger,
	}
}

// GetUSDTPrice answers 200 with the average price or 502 with the classified
// upstream failure. Malformed parameters never produce a 4xx.
func (h *PriceHandler) GetUSDTPrice(c *gin.Context) {
	q := h.prices.NormalizeQuery(firstValues(c))

	quote, err := h.prices.AveragePrice(c.Request.Context(), q)
	if err != nil {
		var pe *domain.PriceError
		if !errors.As(err, &pe) {
			pe = domain.NewNetworkError(err)
		}

		h.logger.Warn().
			Str("request_id", c.GetString(requestIDKey)).
			Str("kind", string(pe.Kind)).
			Str("trade_type", string(q.TradeType)).
			Str("fiat", q.Fiat).
			Msg(pe.Message)

		c.JSON(http.StatusBadGateway, toErrorResponse(q, pe))
		return
	}

	c.JSON(http.StatusOK, toPriceResponse(q, quote))
}

// first value wins for repeated keys
func firstValues(c *gin.Context) map[string]string {
	values := c.Request.URL.Query()
	raw := make(map[string]string, len(values))
	for k, v := range values {
		if len(v) > 0 {
			raw[k] = v[0]
		}
	}
	return raw
}
