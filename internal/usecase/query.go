package usecase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
)

const (
	ParamTradeType = "tradeType"
	ParamFiat      = "fiat"
	ParamRows      = "rows"
	ParamAmount    = "amount"
)

// NormalizeQuery never rejects input. Unparsable numbers fall back to the
// profile defaults and an unknown trade type is passed through as given.
func (s *PriceService) NormalizeQuery(raw map[string]string) domain.PriceQuery {
	p := s.profile

	tradeType := string(p.DefaultTradeType)
	if v, ok := raw[ParamTradeType]; ok {
		tradeType = v
	}

	fiat := p.DefaultFiat
	if v, ok := raw[ParamFiat]; ok {
		fiat = v
	}

	rows := parseInt(raw[ParamRows], int64(p.DefaultRows))
	rows = max(domain.MinRows, min(rows, domain.MaxRows))

	q := domain.PriceQuery{
		TradeType: domain.TradeType(strings.ToUpper(tradeType)),
		Fiat:      strings.ToUpper(fiat),
		Rows:      int(rows),
	}

	if p.AmountFilter {
		amount := parseInt(raw[ParamAmount], p.DefaultTransAmount)
		q.TransAmount = &amount
	}

	return q
}

// parseInt saturates on overflow so huge row counts still clamp to the maximum.
func parseInt(s string, def int64) int64 {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return def
	}
	return v
}
