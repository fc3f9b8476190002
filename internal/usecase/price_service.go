package usecase

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/ports"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

type PriceService struct {
	offers  ports.OffersPort
	parser  ports.PriceParserPort
	profile Profile
	logger  zerolog.Logger
}

func NewPriceService(offers ports.OffersPort, parser ports.PriceParserPort, profile Profile, logger zerolog.Logger) *PriceService {
	return &PriceService{
		offers:  offers,
		parser:  parser,
		profile: profile,
		logger:  logger.With().Str("component", "price_service").Logger(),
	}
}

func (s *PriceService) Profile() Profile { return s.profile }

func (s *PriceService) Check(ctx context.Context, service string) (bool, string) {
	service = strings.TrimSpace(service)
	if service == "" {
		service = "p2p-price-proxy"
	}
	return true, "OK: " + service
}

// AveragePrice performs one upstream search and averages every offer whose
// price can be read. Failures are always *domain.PriceError.
func (s *PriceService) AveragePrice(ctx context.Context, q domain.PriceQuery) (domain.Quote, error) {
	page, err := s.offers.FetchOffers(ctx, q)
	if err != nil {
		var pe *domain.PriceError
		if !errors.As(err, &pe) {
			pe = domain.NewNetworkError(err)
		}
		return domain.Quote{}, pe
	}

	quote, ok := s.reduce(page.Offers)
	if !ok {
		s.logger.Warn().
			Int("offers", len(page.Offers)).
			Str("trade_type", string(q.TradeType)).
			Str("fiat", q.Fiat).
			Msg("no offer carried a usable price")
		return domain.Quote{}, domain.NewNoValidPricesError(page.Raw)
	}

	return quote, nil
}

// ===== helpers =====

func (s *PriceService) reduce(offers []domain.Offer) (domain.Quote, bool) {
	sum := decimal.Zero
	n := 0

	for i, offer := range offers {
		price, err := s.parser.ExtractPrice(offer)
		if err != nil {
			s.logger.Debug().Err(err).Int("index", i).Msg("skipping offer")
			continue
		}
		sum = sum.Add(price)
		n++
	}

	if n == 0 {
		return domain.Quote{}, false
	}

	avg := sum.Div(decimal.NewFromInt(int64(n))).InexactFloat64()
	if math.IsInf(avg, 0) || math.IsNaN(avg) {
		s.logger.Warn().Int("samples", n).Msg("average price is not a finite float64")
		return domain.Quote{}, false
	}
	return domain.Quote{Price: avg, Samples: n}, true
}
