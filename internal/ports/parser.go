package ports

import (
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
	"github.com/shopspring/decimal"
)

type PriceParserPort interface {
	// Extract the advertised price of one offer; an error means the offer is skipped.
	ExtractPrice(offer domain.Offer) (decimal.Decimal, error)
}
