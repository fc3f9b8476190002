package binance

import "encoding/json"

// SearchRequest mirrors the payload the P2P web page posts to adv/search.
type SearchRequest struct {
	Fiat                      string   `json:"fiat"`
	Page                      int      `json:"page"`
	Rows                      int      `json:"rows"`
	TradeType                 string   `json:"tradeType"`
	Asset                     string   `json:"asset"`
	Countries                 []string `json:"countries"`
	ProMerchantAds            bool     `json:"proMerchantAds"`
	ShieldMerchantAds         bool     `json:"shieldMerchantAds"`
	FilterType                string   `json:"filterType"`
	AdditionalKycVerifyFilter int      `json:"additionalKycVerifyFilter"`
	PublisherType             *string  `json:"publisherType"`
	PayTypes                  []string `json:"payTypes"`
	Classifies                []string `json:"classifies"`
	TransAmount               *int64   `json:"transAmount,omitempty"`
}

// Only data is decoded; the remaining envelope fields drift between versions.
type searchResponse struct {
	Data []json.RawMessage `json:"data"`
}
