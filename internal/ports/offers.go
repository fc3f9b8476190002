package ports

import (
	"context"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
)

type OffersPort interface {
	// Performs exactly one upstream call. Failures are *domain.PriceError.
	FetchOffers(ctx context.Context, query domain.PriceQuery) (*domain.OfferPage, error)
}
