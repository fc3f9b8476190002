package parser

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
	"github.com/shopspring/decimal"
)

// maxExponent bounds the decimal exponent so summing prices stays cheap.
const maxExponent = 30

var (
	ErrMalformedOffer = errors.New("offer is not an object with an adv object")
	ErrMissingPrice   = errors.New("offer has no adv.price")
	ErrNotNumeric     = errors.New("adv.price is not numeric")
)

// PriceParser reads adv.price from raw offers. The upstream sends the price as a
// decimal string; plain JSON numbers are accepted as well.
type PriceParser struct{}

func NewPriceParser() *PriceParser { return &PriceParser{} }

type offerEnvelope struct {
	Adv *struct {
		Price json.RawMessage `json:"price"`
	} `json:"adv"`
}

func (p *PriceParser) ExtractPrice(offer domain.Offer) (decimal.Decimal, error) {
	var env offerEnvelope
	if err := json.Unmarshal(offer, &env); err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrMalformedOffer, err)
	}
	if env.Adv == nil {
		return decimal.Zero, ErrMalformedOffer
	}

	raw := env.Adv.Price
	if len(raw) == 0 || string(raw) == "null" {
		return decimal.Zero, ErrMissingPrice
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return decimal.Zero, fmt.Errorf("%w: %v", ErrNotNumeric, err)
		}
		return parseDecimal(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return parseDecimal(string(raw))
	default:
		// booleans, objects, arrays
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNotNumeric, truncate(string(raw), 32))
	}
}

// strict parse: surrounding whitespace is tolerated, NaN, Inf and values
// outside float64 range are not
func parseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrNotNumeric
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, truncate(s, 32))
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotNumeric, truncate(s, 32))
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Zero, fmt.Errorf("%w: exponent %d out of range", ErrNotNumeric, exp)
	}
	return d, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
