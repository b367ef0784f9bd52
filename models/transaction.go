package models

// TypeCertificate is the transaction type of a certificate submission.
const TypeCertificate = "C_TYPE_CERTIFICATE"

// ActionCertificate is the action tag wrapped around certificate payloads.
const ActionCertificate = "CP_CERTIFICATE"

// Transaction is the signed request envelope submitted to the gateway.
// Field names are part of the wire contract and must not change.
type Transaction struct {
	ID         string `json:"ID"`
	From       string `json:"From"`
	To         string `json:"To"`
	Timestamp  string `json:"Timestamp"`
	Payload    string `json:"Payload"`
	Nonce      string `json:"Nonce"`
	Signature  string `json:"Signature"`
	Blockchain string `json:"Blockchain"`
	Type       string `json:"Type"`
	Version    string `json:"Version"`
}

// CertPayload is the action object a certificate is wrapped in before the
// whole serialized form is hex-encoded for transmission.
type CertPayload struct {
	Action string `json:"Action"`
	Data   string `json:"Data"`
}

// NonceRequest is the wallet nonce query body.
type NonceRequest struct {
	Address    string `json:"Address"`
	Version    string `json:"Version"`
	Blockchain string `json:"Blockchain"`
}

// TransactionQuery is the transaction lookup body. Start and End bound the
// block range searched, as decimal strings.
type TransactionQuery struct {
	Blockchain string `json:"Blockchain"`
	ID         string `json:"ID"`
	Start      string `json:"Start"`
	End        string `json:"End"`
	Version    string `json:"Version"`
}
