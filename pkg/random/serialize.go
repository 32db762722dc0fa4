package random

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"
)

func newEncoder(buf *bytes.Buffer) *msgpack.Encoder {
	enc := msgpack.NewEncoder(buf)
	enc.SetSortMapKeys(true)
	enc.UseCompactInts(true)
	return enc
}

// Serialize encodes v as canonical MessagePack: map keys are sorted and integers
// take their most compact form, so equal values always produce equal bytes.
func Serialize(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := newEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func serializeString(s string) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes never fail
	_ = newEncoder(&buf).EncodeString(s)
	return buf.Bytes()
}
