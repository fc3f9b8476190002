package usecase

import (
	"testing"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/adapters/parser"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serviceWith(p Profile) *PriceService {
	return NewPriceService(&fakeOffers{}, parser.NewPriceParser(), p, zerolog.Nop())
}

func TestNormalizeQueryDefaults(t *testing.T) {
	q := serviceWith(FilteredProfile()).NormalizeQuery(map[string]string{})

	assert.Equal(t, domain.TradeBuy, q.TradeType)
	assert.Equal(t, "VND", q.Fiat)
	assert.Equal(t, 3, q.Rows)
	require.NotNil(t, q.TransAmount)
	assert.Equal(t, int64(10_000_000), *q.TransAmount)
}

func TestNormalizeQueryMinimalProfile(t *testing.T) {
	q := serviceWith(MinimalProfile()).NormalizeQuery(map[string]string{ParamAmount: "5000"})

	assert.Equal(t, domain.TradeSell, q.TradeType)
	assert.Nil(t, q.TransAmount)
}

func TestNormalizeQueryUppercases(t *testing.T) {
	q := serviceWith(FilteredProfile()).NormalizeQuery(map[string]string{
		ParamTradeType: "sell",
		ParamFiat:      "usd",
	})

	assert.Equal(t, domain.TradeSell, q.TradeType)
	assert.Equal(t, "USD", q.Fiat)
}

func TestNormalizeQueryPassesUnknownTradeType(t *testing.T) {
	q := serviceWith(FilteredProfile()).NormalizeQuery(map[string]string{ParamTradeType: "hodl"})
	assert.Equal(t, domain.TradeType("HODL"), q.TradeType)
}

func TestNormalizeQueryRows(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"5", 5},
		{" 7 ", 7},
		{"+4", 4},
		{"50", 20},
		{"20", 20},
		{"1", 1},
		{"0", 1},
		{"-3", 1},
		{"abc", 3},
		{"2.5", 3},
		{"", 3},
		{"99999999999999999999999", 20},
		{"-99999999999999999999999", 1},
	}

	svc := serviceWith(FilteredProfile())
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q := svc.NormalizeQuery(map[string]string{ParamRows: tt.raw})
			assert.Equal(t, tt.want, q.Rows)
		})
	}
}

func TestNormalizeQueryAmount(t *testing.T) {
	tests := []struct {
		raw  string
		want int64
	}{
		{"5000000", 5_000_000},
		{"-1", -1},
		{"0", 0},
		{"lots", 10_000_000},
		{"1e6", 10_000_000},
	}

	svc := serviceWith(FilteredProfile())
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q := svc.NormalizeQuery(map[string]string{ParamAmount: tt.raw})
			require.NotNil(t, q.TransAmount)
			assert.Equal(t, tt.want, *q.TransAmount)
		})
	}
}

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("")
	require.NoError(t, err)
	assert.Equal(t, ProfileFiltered, p.Name)

	p, err = ProfileByName("Minimal")
	require.NoError(t, err)
	assert.False(t, p.AmountFilter)

	_, err = ProfileByName("legacy")
	assert.Error(t, err)
}
