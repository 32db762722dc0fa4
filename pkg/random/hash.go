package random

import "crypto/sha1"

// SHA1 returns the SHA-1 digest of the MessagePack encoding of text.
func SHA1(text string) []byte {
	sum := sha1.Sum(serializeString(text))
	return sum[:]
}

// HashValue is SHA1 for arbitrary values, see Serialize.
func HashValue(v interface{}) ([]byte, error) {
	raw, err := Serialize(v)
	if err != nil {
		return nil, err
	}

	sum := sha1.Sum(raw)
	return sum[:], nil
}
