// Package signer produces deterministic secp256k1 signatures over SHA-256
// message hashes. Identical key and message always yield an identical
// DER-encoded signature (RFC 6979 nonces, no external entropy).
package signer

import (
	"math/big"

	"circular-enterprise/apierr"
	"circular-enterprise/util/hashutil"
	"circular-enterprise/util/hexutil"

	"github.com/btcsuite/btcd/btcec"
)

const privateKeyLen = 32

// Sign hashes message with SHA-256 and signs the digest with the hex-encoded
// secp256k1 private key. The signature is returned DER-encoded in lowercase hex.
func Sign(message, privateKeyHex string) (string, error) {
	keyBytes, err := hexutil.DecodeBytes(hexutil.Fix(privateKeyHex))
	if err != nil {
		return "", apierr.Wrap(apierr.Signing, err, "invalid private key")
	}

	if len(keyBytes) != privateKeyLen {
		return "", apierr.New(apierr.Signing, "private key must be 32 bytes long")
	}

	if !validScalar(keyBytes) {
		return "", apierr.New(apierr.Signing, "invalid private key")
	}

	priv, _ := btcec.PrivKeyFromBytes(btcec.S256(), keyBytes)

	hash := hashutil.Sha256([]byte(message))

	sig, err := priv.Sign(hash)
	if err != nil {
		return "", apierr.Wrap(apierr.Signing, err, "failed to sign message")
	}

	return hexutil.EncodeBytes(sig.Serialize()), nil
}

// Verify checks a hex DER signature produced by Sign against the message and
// the public key of the given private key. Intended for round-trip checks.
func Verify(message, signatureHex, privateKeyHex string) (bool, error) {
	keyBytes, err := hexutil.DecodeBytes(hexutil.Fix(privateKeyHex))
	if err != nil || len(keyBytes) != privateKeyLen {
		return false, apierr.New(apierr.Signing, "invalid private key")
	}

	sigBytes, err := hexutil.DecodeBytes(signatureHex)
	if err != nil {
		return false, apierr.Wrap(apierr.Signing, err, "invalid signature encoding")
	}

	sig, err := btcec.ParseDERSignature(sigBytes, btcec.S256())
	if err != nil {
		return false, apierr.Wrap(apierr.Signing, err, "invalid DER signature")
	}

	_, pub := btcec.PrivKeyFromBytes(btcec.S256(), keyBytes)
	hash := hashutil.Sha256([]byte(message))

	return sig.Verify(hash, pub), nil
}

// validScalar reports whether key is in the range (0, N) of the curve order.
func validScalar(key []byte) bool {
	d := new(big.Int).SetBytes(key)
	if d.Sign() == 0 {
		return false
	}
	return d.Cmp(btcec.S256().N) < 0
}
