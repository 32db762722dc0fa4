package verify

import (
	"github.com/PxyUp/provably_fair/pkg/random"
)

// Draw is a published outcome: Result == RandLong(RotateHash(Hash, Nonce), Bound).
type Draw struct {
	Hash   string `json:"hash" msgpack:"hash"`
	Nonce  int    `json:"nonce" msgpack:"nonce"`
	Bound  int64  `json:"bound" msgpack:"bound"`
	Result int64  `json:"result" msgpack:"result"`
}

func NewDraw(hash string, nonce int, bound int64) (Draw, error) {
	d := Draw{
		Hash:  hash,
		Nonce: nonce,
		Bound: bound,
	}

	result, err := random.RandLong(d.Digest(), bound)
	if err != nil {
		return Draw{}, err
	}

	d.Result = result
	return d, nil
}

func (d Draw) Digest() string {
	return random.RotateHash(d.Hash, d.Nonce)
}

// Fingerprint is a stable receipt id for the draw.
func (d Draw) Fingerprint() (string, error) {
	sum, err := random.HashValue(d)
	if err != nil {
		return "", err
	}

	return random.BytesToHex(sum), nil
}

// Commit is the value published before the server seed is revealed.
func Commit(serverSeed string) string {
	return random.BytesToHex(random.SHA1(serverSeed))
}
