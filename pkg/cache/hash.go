package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
)

// Hash returns the hex SHA-256 digest of data. Plans are identified by the
// Hash of their canonical JSON encoding.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// frameDigest returns "<namespace>:<digest>" where the digest covers the plan
// hash and the JSON form of opts. FrameKeyOpts has a fixed field order, so
// equal options always produce equal keys.
func frameDigest(namespace, planHash string, opts FrameKeyOpts) string {
	h := sha256.New()
	io.WriteString(h, planHash)
	h.Write([]byte{0})
	_ = json.NewEncoder(h).Encode(opts)
	return namespace + ":" + hex.EncodeToString(h.Sum(nil))
}
