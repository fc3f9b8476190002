package binance

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/cp25sy5-modjot/p2p-price-proxy/internal/domain"
	"github.com/rs/zerolog"
)

const (
	DefaultURL     = "https://p2p.binance.com/bapi/c2c/v2/friendly/c2c/adv/search"
	DefaultTimeout = 10 * time.Second

	firstPage    = 1
	snippetBytes = 500
	maxBodyBytes = 4 << 20
	userAgent    = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36"
)

type Config struct {
	URL       string
	Timeout   time.Duration
	Countries []string
}

// Client searches P2P advertisements. It makes one attempt per call and keeps
// no state besides the pooled http.Client.
type Client struct {
	url        string
	timeout    time.Duration
	countries  []string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.URL == "" {
		cfg.URL = DefaultURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		url:        cfg.URL,
		timeout:    cfg.Timeout,
		countries:  cfg.Countries,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.With().Str("adapter", "binance").Logger(),
	}
}

func (c *Client) FetchOffers(ctx context.Context, query domain.PriceQuery) (*domain.OfferPage, error) {
	payload := c.buildSearchRequest(query)

	body, status, err := c.sendRequest(ctx, query, payload)
	if err != nil {
		c.logger.Warn().Err(err).Msg("binance request failed")
		return nil, domain.NewNetworkError(err)
	}

	if status < 200 || status > 299 {
		c.logger.Warn().Int("status", status).Msg("binance responded with non-2xx status")
		return nil, domain.NewUpstreamHTTPError(status, snippet(body))
	}

	return parseSearchResponse(body)
}

func (c *Client) buildSearchRequest(query domain.PriceQuery) SearchRequest {
	countries := c.countries
	if countries == nil {
		countries = []string{}
	}

	return SearchRequest{
		Fiat:        query.Fiat,
		Page:        firstPage,
		Rows:        query.Rows,
		TradeType:   string(query.TradeType),
		Asset:       domain.Asset,
		Countries:   countries,
		FilterType:  "all",
		PayTypes:    []string{},
		Classifies:  []string{"mass", "profession"},
		TransAmount: query.TransAmount,
	}
}

func (c *Client) sendRequest(ctx context.Context, query domain.PriceQuery, payload SearchRequest) ([]byte, int, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, fmt.Errorf("marshal search request: %w", err)
	}

	// the inbound request context still cancels the call
	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodPost, c.url, bytes.NewReader(jsonPayload))
	if err != nil {
		return nil, 0, err
	}
	setBrowserHeaders(req, query)

	c.logger.Debug().
		Str("trade_type", payload.TradeType).
		Str("fiat", payload.Fiat).
		Int("rows", payload.Rows).
		Msg("searching binance p2p offers")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, maxBodyBytes))
	if err != nil {
		return nil, res.StatusCode, fmt.Errorf("read response body: %w", err)
	}

	return body, res.StatusCode, nil
}

// Binance rejects requests that do not look like they come from the P2P web page.
func setBrowserHeaders(req *http.Request, query domain.PriceQuery) {
	side := "sell"
	if query.TradeType == domain.TradeBuy {
		side = "buy"
	}

	req.Header.Set("Accept", "*/*")
	req.Header.Set("Accept-Language", "vi,vi-VN;q=0.9,en;q=0.8")
	req.Header.Set("C2CType", "c2c_web")
	req.Header.Set("ClientType", "web")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Lang", "vi")
	req.Header.Set("Origin", "https://p2p.binance.com")
	req.Header.Set("Referer", fmt.Sprintf("https://p2p.binance.com/trade/%s/USDT?fiat=%s&payment=all-payments", side, query.Fiat))
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("X-Passthrough-Token", "")
}

func parseSearchResponse(body []byte) (*domain.OfferPage, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.NewUpstreamJSONError(err, snippet(body))
	}

	raw := json.RawMessage(body)

	obj, ok := payload.(map[string]any)
	if !ok {
		return nil, domain.NewNoOffersError(raw)
	}
	data, ok := obj["data"]
	if !ok || isEmpty(data) {
		return nil, domain.NewNoOffersError(raw)
	}

	if _, ok := data.([]any); !ok {
		// a non-list data field yields no usable offers; the reducer reports it
		return &domain.OfferPage{Offers: []domain.Offer{}, Raw: raw}, nil
	}

	// decode again to keep each entry byte-for-byte
	var page searchResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, domain.NewUpstreamJSONError(err, snippet(body))
	}

	return &domain.OfferPage{Offers: page.Data, Raw: raw}, nil
}

func isEmpty(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case bool:
		return !t
	case float64:
		return t == 0
	case string:
		return t == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

func snippet(body []byte) string {
	if len(body) > snippetBytes {
		body = body[:snippetBytes]
	}
	s := string(body)
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	return s
}
