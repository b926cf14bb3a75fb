package evm

import (
	"bytes"
	"encoding/hex"
)

// ParseBytecode interprets raw file contents as EVM runtime code. Contents
// that decode as an ASCII hex string (optionally 0x-prefixed) are decoded;
// anything else is assumed to be a raw binary code image already and
// returned unchanged. Surrounding whitespace is trimmed before the hex
// attempt so that a trailing newline in a .bin-runtime file does not force
// the binary fallback.
func ParseBytecode(data []byte) []byte {
	s := bytes.TrimSpace(data)
	if bytes.HasPrefix(s, []byte("0x")) {
		s = s[2:]
	}
	dec, err := hex.DecodeString(string(s))
	if err != nil {
		return data
	}
	return dec
}
