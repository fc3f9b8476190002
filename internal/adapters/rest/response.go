package rest

import "github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"

type PriceResponse struct {
	OK          bool    `json:"ok"`
	Price       float64 `json:"price"`
	TradeType   string  `json:"tradeType"`
	Fiat        string  `json:"fiat"`
	Rows        int     `json:"rows"`
	TransAmount *int64  `json:"transAmount,omitempty"`
	Samples     int     `json:"samples"`
	Source      string  `json:"source"`
}

type ErrorResponse struct {
	OK        bool               `json:"ok"`
	Error     *domain.PriceError `json:"error"`
	TradeType string             `json:"tradeType"`
	Fiat      string             `json:"fiat"`
}

func toPriceResponse(q domain.PriceQuery, quote domain.Quote) PriceResponse {
	return PriceResponse{
		OK:          true,
		Price:       quote.Price,
		TradeType:   string(q.TradeType),
		Fiat:        q.Fiat,
		Rows:        q.Rows,
		TransAmount: q.TransAmount,
		Samples:     quote.Samples,
		Source:      domain.Source,
	}
}

func toErrorResponse(q domain.PriceQuery, pe *domain.PriceError) ErrorResponse {
	return ErrorResponse{
		OK:        false,
		Error:     pe,
		TradeType: string(q.TradeType),
		Fiat:      q.Fiat,
	}
}
