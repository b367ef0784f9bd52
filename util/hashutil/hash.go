package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
)

// Sha256 returns sha256 of input data bytes.
func Sha256(data []byte) []byte {
	sha256H := sha256.New()
	sha256H.Reset()
	sha256H.Write(data)
	return sha256H.Sum(nil)
}

// Sha256Hex returns the lowercase hex encoding of sha256(data).
func Sha256Hex(data []byte) string {
	return hex.EncodeToString(Sha256(data))
}
