package hexutil

import (
	"fmt"
	"strings"
)

// Fix normalizes a hex string: strips an optional "0x"/"0X" prefix,
// lower-cases it and left-pads with a single '0' if the length is odd.
// An empty input yields an empty output.
func Fix(hexStr string) string {
	if hexStr == "" {
		return ""
	}

	s := hexStr
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}

	s = strings.ToLower(s)

	if len(s)%2 != 0 {
		s = "0" + s
	}

	return s
}

// Encode converts each byte of s to two uppercase hex digits.
func Encode(s string) string {
	var sb strings.Builder
	for i := 0; i < len(s); i++ {
		sb.WriteString(fmt.Sprintf("%02X", s[i]))
	}
	return sb.String()
}

// Decode converts a hex string back to its original bytes. An optional
// "0x"/"0X" prefix is stripped first. Returns an error on odd length or
// non-hex-digit input, never partial data.
func Decode(hexStr string) (string, error) {
	if hexStr == "" {
		return "", nil
	}

	s := hexStr
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}

	if len(s)%2 != 0 {
		return "", fmt.Errorf("invalid hex string: odd length %d", len(s))
	}

	buf := make([]byte, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		hi, ok1 := hexDigit(s[i])
		lo, ok2 := hexDigit(s[i+1])
		if !ok1 || !ok2 {
			return "", fmt.Errorf("invalid hex character in %q", s[i:i+2])
		}
		buf = append(buf, hi<<4|lo)
	}

	return string(buf), nil
}

// DecodeBytes is Decode returning raw bytes.
func DecodeBytes(hexStr string) ([]byte, error) {
	s, err := Decode(hexStr)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// EncodeBytes converts raw bytes to a lowercase hex string.
func EncodeBytes(data []byte) string {
	var sb strings.Builder
	for _, b := range data {
		sb.WriteString(fmt.Sprintf("%02x", b))
	}
	return sb.String()
}

func hexDigit(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
