package encode

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/signadot/cs-format/ir"
)

type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// Sum returns the BLAKE3-256 digest of the CS serialization of root. Live
// raw sources are consumed.
func Sum(root *ir.Node, opts ...EncodeOption) (Digest, error) {
	var d Digest
	h := blake3.New()
	if _, err := NewSerializer(root, opts...).WriteTo(h); err != nil {
		return d, err
	}
	copy(d[:], h.Sum(nil))
	return d, nil
}
