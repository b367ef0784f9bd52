package models

import "encoding/json"

// Result codes returned by the gateway.
const (
	ResultOK                  = 200
	ResultInvalidBlockchain   = 114
	ResultInsufficientBalance = 115
)

// Envelope is the common response wrapper of every gateway RPC.
// Response is either a structured object carrying the requested data or a
// plain string carrying a rejection reason, so it stays raw until the caller
// knows which one to expect.
type Envelope struct {
	Result   *int            `json:"Result"`
	Response json.RawMessage `json:"Response"`
}

// ResponseString returns Response decoded as a JSON string, with ok=false
// when Response is absent or not a string.
func (e *Envelope) ResponseString() (string, bool) {
	if len(e.Response) == 0 {
		return "", false
	}

	var s string
	if err := json.Unmarshal(e.Response, &s); err != nil {
		return "", false
	}
	return s, true
}

// ResponseObject decodes Response into target.
func (e *Envelope) ResponseObject(target interface{}) error {
	return json.Unmarshal(e.Response, target)
}

// NonceResponse is the Response object of a wallet nonce query.
type NonceResponse struct {
	Nonce *int64 `json:"Nonce"`
}

// TransactionStatus is the Status part of a transaction lookup Response.
type TransactionStatus struct {
	Status string `json:"Status"`
}

// NAGResponse is the network discovery response.
type NAGResponse struct {
	Status  string `json:"status"`
	URL     string `json:"url"`
	Message string `json:"message"`
}
