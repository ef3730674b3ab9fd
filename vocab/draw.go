package vocab

import (
	"github.com/mvossen/protoglot/bitio"
)

const defaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// drawData draws a random byte string satisfying t, used by specialize for
// a Data leaf that carries no preset.
func drawData(t DataType, rng randSource) ([]byte, error) {
	n := t.Range.Min
	if t.Range.Max > t.Range.Min {
		n = t.Range.Min + rng.Intn(t.Range.Max-t.Range.Min+1)
	}
	switch t.Kind {
	case Raw, BitArray:
		b := make([]byte, n*t.byteWidth())
		for i := range b {
			b[i] = byte(rng.Intn(256))
		}
		return b, nil
	case String:
		charset := t.Charset
		if charset == "" {
			charset = defaultCharset
		}
		b := make([]byte, n)
		for i := range b {
			b[i] = charset[rng.Intn(len(charset))]
		}
		return b, nil
	case Integer:
		width := t.byteWidth()
		max := uint64(1)
		if width < 8 {
			max <<= uint(width * 8)
		} else {
			max = ^uint64(0)
		}
		var v uint64
		if max > (1 << 31) {
			v = uint64(rng.Intn(1<<31)) | uint64(rng.Intn(1<<31))<<31
		} else {
			v = uint64(rng.Intn(int(max) + 1))
		}
		return bitio.EncodeUint(v, width*8, t.Endian)
	}
	return nil, nil
}
