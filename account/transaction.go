package account

import (
	"encoding/json"
	"strconv"

	"circular-enterprise/models"
	"circular-enterprise/signer"
	"circular-enterprise/util/hashutil"
	"circular-enterprise/util/hexutil"
)

// EncodePayload wraps data in the certificate action object and hex-encodes
// the whole serialized form. The data is hex-encoded first and the resulting
// JSON is hex-encoded again; this double encoding is a wire-format
// requirement of the gateway.
func EncodePayload(data string) string {
	obj := models.CertPayload{
		Action: models.ActionCertificate,
		Data:   hexutil.Encode(data),
	}

	// Marshaling two plain string fields cannot fail.
	raw, _ := json.Marshal(obj)

	return hexutil.Encode(string(raw))
}

// TransactionID derives the canonical transaction ID: the SHA-256 hex digest
// of the normalized chain, sender, recipient, encoded payload, decimal nonce
// and timestamp, concatenated in that order.
func TransactionID(blockchain, from, to, payloadHex string, nonce int64, timestamp string) string {
	strToHash := hexutil.Fix(blockchain) +
		hexutil.Fix(from) +
		hexutil.Fix(to) +
		payloadHex +
		strconv.FormatInt(nonce, 10) +
		timestamp

	return hashutil.Sha256Hex([]byte(strToHash))
}

// buildTransaction derives the transaction ID from the account snapshot and
// assembles the signed request envelope. The signature covers the bytes of
// the ID's hex string. No partial envelope is produced when signing fails.
func (a *Account) buildTransaction(data, privateKeyHex, timestamp string) (*models.Transaction, error) {
	payload := EncodePayload(data)
	id := TransactionID(a.Blockchain, a.Address, a.Address, payload, a.Nonce, timestamp)

	signature, err := signer.Sign(id, privateKeyHex)
	if err != nil {
		return nil, err
	}

	return &models.Transaction{
		ID:         id,
		From:       hexutil.Fix(a.Address),
		To:         hexutil.Fix(a.Address),
		Timestamp:  timestamp,
		Payload:    payload,
		Nonce:      strconv.FormatInt(a.Nonce, 10),
		Signature:  signature,
		Blockchain: hexutil.Fix(a.Blockchain),
		Type:       models.TypeCertificate,
		Version:    a.CodeVersion,
	}, nil
}
