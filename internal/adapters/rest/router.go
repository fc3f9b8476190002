package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const PricePath = "/usdt_p2p_price"

type RouterConfig struct {
	PriceHandler  *PriceHandler
	HealthHandler *HealthHandler
	Logger        zerolog.Logger
}

func NewRouter(cfg *RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(requestID(), accessLog(cfg.Logger), gin.Recovery())

	router.GET(PricePath, cfg.PriceHandler.GetUSDTPrice)
	router.GET("/health", cfg.HealthHandler.Check)

	return router
}
