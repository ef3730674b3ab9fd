package vocab

import "github.com/mvossen/protoglot/bitio"

// Kind distinguishes the four domains a Data leaf may carry.
type Kind uint8

const (
	Raw Kind = iota
	String
	Integer
	BitArray
)

func (k Kind) String() string {
	switch k {
	case Raw:
		return "Raw"
	case String:
		return "String"
	case Integer:
		return "Integer"
	case BitArray:
		return "BitArray"
	}
	return "Unknown"
}

// Range bounds the element count (bytes for Raw/String, units for
// Integer/BitArray) a Data leaf may take.
type Range struct {
	Min int
	Max int
}

// Fixed returns a Range accepting exactly n elements.
func Fixed(n int) Range { return Range{Min: n, Max: n} }

// Contains reports whether n falls within the range.
func (r Range) Contains(n int) bool { return n >= r.Min && n <= r.Max }

// DataType describes a Data leaf's concrete byte-level shape.
type DataType struct {
	Kind     Kind
	UnitSize int            // bits per element; e.g. 8/16/32/64 for Integer
	Endian   bitio.Endianness
	Signed   bool
	Charset  string // optional, for String; empty means no restriction
	Range    Range  // bounds on element count
}

// byteWidth returns the number of bytes one element of this type occupies.
func (t DataType) byteWidth() int {
	if t.UnitSize <= 0 {
		return 1
	}
	return (t.UnitSize + 7) / 8
}
