package domain

import (
	"encoding/json"
	"fmt"
)

type ErrorKind string

const (
	ErrKindNetwork       ErrorKind = "network_error"
	ErrKindUpstreamHTTP  ErrorKind = "binance_http_error"
	ErrKindUpstreamJSON  ErrorKind = "binance_json_error"
	ErrKindNoOffers      ErrorKind = "no_offers_from_binance"
	ErrKindNoValidPrices ErrorKind = "no_valid_prices"
)

// PriceError is the classified failure of one price request.
// Every kind is terminal for the request.
type PriceError struct {
	Kind       ErrorKind       `json:"kind"`
	Message    string          `json:"message"`
	Detail     string          `json:"detail,omitempty"`
	StatusCode int             `json:"status_code,omitempty"`
	Body       string          `json:"body,omitempty"`
	Raw        json.RawMessage `json:"raw,omitempty"`
}

func (e *PriceError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Detail)
	}
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func NewNetworkError(err error) *PriceError {
	return &PriceError{
		Kind:    ErrKindNetwork,
		Message: "upstream request failed",
		Detail:  err.Error(),
	}
}

func NewUpstreamHTTPError(status int, body string) *PriceError {
	return &PriceError{
		Kind:       ErrKindUpstreamHTTP,
		Message:    fmt.Sprintf("upstream responded with status %d", status),
		StatusCode: status,
		Body:       body,
	}
}

func NewUpstreamJSONError(err error, body string) *PriceError {
	return &PriceError{
		Kind:    ErrKindUpstreamJSON,
		Message: fmt.Sprintf("upstream body is not valid JSON: %v", err),
		Body:    body,
	}
}

func NewNoOffersError(raw json.RawMessage) *PriceError {
	return &PriceError{
		Kind:    ErrKindNoOffers,
		Message: "upstream returned no offers",
		Raw:     raw,
	}
}

func NewNoValidPricesError(raw json.RawMessage) *PriceError {
	return &PriceError{
		Kind:    ErrKindNoValidPrices,
		Message: "no offer carried a numeric price",
		Raw:     raw,
	}
}
