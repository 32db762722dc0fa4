package random

import "encoding/hex"

// BytesToHex renders every byte as two lowercase hex characters.
func BytesToHex(b []byte) string {
	return hex.EncodeToString(b)
}
