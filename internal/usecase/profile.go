package usecase

import (
	"fmt"
	"strings"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
)

const (
	ProfileFiltered = "filtered"
	ProfileMinimal  = "minimal"

	DefaultFiat        = "VND"
	DefaultRows        = 3
	DefaultTransAmount = int64(10_000_000)
)

// Profile holds the defaults used when normalizing query parameters.
// AmountFilter controls whether transAmount is read, sent upstream and echoed.
type Profile struct {
	Name               string
	DefaultTradeType   domain.TradeType
	DefaultFiat        string
	DefaultRows        int
	AmountFilter       bool
	DefaultTransAmount int64
}

func FilteredProfile() Profile {
	return Profile{
		Name:               ProfileFiltered,
		DefaultTradeType:   domain.TradeBuy,
		DefaultFiat:        DefaultFiat,
		DefaultRows:        DefaultRows,
		AmountFilter:       true,
		DefaultTransAmount: DefaultTransAmount,
	}
}

func MinimalProfile() Profile {
	return Profile{
		Name:             ProfileMinimal,
		DefaultTradeType: domain.TradeSell,
		DefaultFiat:      DefaultFiat,
		DefaultRows:      DefaultRows,
	}
}

func ProfileByName(name string) (Profile, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ProfileFiltered:
		return FilteredProfile(), nil
	case ProfileMinimal:
		return MinimalProfile(), nil
	}
	return Profile{}, fmt.Errorf("unknown price profile %q", name)
}
