package domain

import "encoding/json"

type TradeType string

const (
	TradeBuy  TradeType = "BUY"
	TradeSell TradeType = "SELL"
)

const (
	Asset  = "USDT"
	Source = "binance_p2p"

	MinRows = 1
	MaxRows = 20
)

// PriceQuery is built per request from query parameters.
// TransAmount is nil when the minimum amount filter is disabled.
type PriceQuery struct {
	TradeType   TradeType
	Fiat        string
	Rows        int
	TransAmount *int64
}

// Offer is one raw upstream advertisement. Only adv.price is read from it.
type Offer = json.RawMessage

type OfferPage struct {
	Offers []Offer
	Raw    json.RawMessage // full upstream payload
}

type Quote struct {
	Price   float64 `json:"price"`
	Samples int     `json:"samples"`
}
