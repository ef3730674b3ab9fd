package vocab

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/minio/highwayhash"

	"github.com/mvossen/protoglot/bitio"
)

// RelationKind selects which derivation a Relation leaf performs.
type RelationKind uint8

const (
	// SizeRelation yields the byte count of the target's emission.
	SizeRelation RelationKind = iota
	// ValueRelation yields a copy of the target's bytes.
	ValueRelation
	// HashRelation yields a digest of the target's bytes.
	HashRelation
)

func (k RelationKind) String() string {
	switch k {
	case SizeRelation:
		return "Size"
	case ValueRelation:
		return "Value"
	case HashRelation:
		return "Hash"
	}
	return "?"
}

// HashAlgorithm names a digest algorithm a Hash relation may use. sha1/
// sha256/md5 are the stdlib-idiomatic choices for a cryptographic digest;
// highwayhash64 is carried from the pack for a fast non-cryptographic
// digest (e.g. for checksums rather than integrity).
type HashAlgorithm string

const (
	SHA1         HashAlgorithm = "sha1"
	SHA256       HashAlgorithm = "sha256"
	MD5          HashAlgorithm = "md5"
	HighwayHash64 HashAlgorithm = "highwayhash64"
)

// highwayHashKey is the fixed 32-byte key highwayhash requires. It is not a
// secret — HashRelation is a checksum facility, not an authentication one.
var highwayHashKey = []byte("protoglot-hash-relation-key-0000")

func newHasher(algo HashAlgorithm) (hash.Hash, error) {
	switch algo {
	case SHA1:
		return sha1.New(), nil
	case SHA256:
		return sha256.New(), nil
	case MD5:
		return md5.New(), nil
	case HighwayHash64:
		return highwayhash.New64(highwayHashKey)
	case "":
		return sha256.New(), nil
	}
	return nil, fmt.Errorf("vocab: unknown hash algorithm %q", algo)
}

// Relation ties a derived leaf to its target variable(s). Relation leaves
// form a DAG over structural leaves (see dag.go) and must be resolvable:
// no cycles.
type Relation struct {
	Target *Variable
	Kind   RelationKind
	Algo   HashAlgorithm // only meaningful when Kind == HashRelation
}

// derive computes the relation's bytes from targetBytes, encoding the
// result per resultType (the Relation leaf's own DataType).
func (r *Relation) derive(targetBytes []byte, resultType DataType) ([]byte, error) {
	switch r.Kind {
	case SizeRelation:
		n := uint64(len(targetBytes))
		return bitio.EncodeUint(n, resultType.byteWidth()*8, resultType.Endian)
	case ValueRelation:
		cp := make([]byte, len(targetBytes))
		copy(cp, targetBytes)
		return cp, nil
	case HashRelation:
		h, err := newHasher(r.Algo)
		if err != nil {
			return nil, err
		}
		if _, err := h.Write(targetBytes); err != nil {
			return nil, err
		}
		digest := h.Sum(nil)
		width := resultType.byteWidth() * resultType.Range.Max
		if width == 0 {
			width = len(digest)
		}
		return bitio.PadLeft(digest, width), nil
	}
	return nil, fmt.Errorf("vocab: unknown relation kind %v", r.Kind)
}
