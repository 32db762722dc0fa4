package random

import "strconv"

// RotateHash derives a new digest from hash and nonce: hex(sha1(hash + nonce)).
func RotateHash(hash string, nonce int) string {
	return BytesToHex(SHA1(hash + strconv.Itoa(nonce)))
}
