// Package certificate models a notarization payload and its exported
// JSON form.
package certificate

import (
	"encoding/json"

	"circular-enterprise/config"
	"circular-enterprise/util/hexutil"
)

// Certificate is one notarization request before submission. Data is stored
// hex-encoded, the way it travels on the wire.
type Certificate struct {
	data          string
	previousTxID  string
	previousBlock string
	version       string
}

// certJSON is the exported wire form. The field set and naming are part of
// the wire contract. The previous-reference fields are omitted when unset.
type certJSON struct {
	Data          string `json:"data"`
	PreviousTxID  string `json:"previousTxID,omitempty"`
	PreviousBlock string `json:"previousBlock,omitempty"`
	Version       string `json:"version"`
}

// New creates an empty certificate stamped with the current library version.
func New() *Certificate {
	return &Certificate{version: config.LibVersion}
}

// SetData stores the payload, hex-encoding it internally.
func (c *Certificate) SetData(data string) {
	c.data = hexutil.Encode(data)
}

// Data returns the payload exactly as it was passed to SetData. Returns the
// empty string if the stored form does not decode.
func (c *Certificate) Data() string {
	s, err := hexutil.Decode(c.data)
	if err != nil {
		return ""
	}
	return s
}

// SetPreviousTxID links the certificate to the preceding transaction.
func (c *Certificate) SetPreviousTxID(txID string) {
	c.previousTxID = txID
}

// PreviousTxID returns the previous transaction reference.
func (c *Certificate) PreviousTxID() string {
	return c.previousTxID
}

// SetPreviousBlock links the certificate to the preceding block.
func (c *Certificate) SetPreviousBlock(block string) {
	c.previousBlock = block
}

// PreviousBlock returns the previous block reference.
func (c *Certificate) PreviousBlock() string {
	return c.previousBlock
}

// Version returns the protocol version the certificate was created with.
func (c *Certificate) Version() string {
	return c.version
}

// JSON returns the certificate's canonical JSON serialization. It always
// succeeds for a constructed certificate.
func (c *Certificate) JSON() string {
	out, err := json.Marshal(certJSON{
		Data:          c.data,
		PreviousTxID:  c.previousTxID,
		PreviousBlock: c.previousBlock,
		Version:       c.version,
	})
	if err != nil {
		return ""
	}
	return string(out)
}

// Size returns the byte length of the JSON serialization, recomputed on
// every call.
func (c *Certificate) Size() int {
	return len(c.JSON())
}
