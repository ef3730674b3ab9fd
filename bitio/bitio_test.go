package bitio

import "testing"

func TestEncodeDecodeUintRoundTrip(t *testing.T) {
	b, err := EncodeUint(0x1234, 16, BigEndian)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(b) != 2 || b[0] != 0x12 || b[1] != 0x34 {
		t.Errorf("unexpected bytes %v", b)
	}
	v, err := DecodeUint(b, BigEndian)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v != 0x1234 {
		t.Errorf("round trip mismatch: got %d", v)
	}
}

func TestEncodeUintLittleEndian(t *testing.T) {
	b, _ := EncodeUint(0x1234, 16, LittleEndian)
	if b[0] != 0x34 || b[1] != 0x12 {
		t.Errorf("unexpected little-endian bytes %v", b)
	}
}

func TestDecodeIntNegative(t *testing.T) {
	b := []byte{0xFF, 0xFE} // -2 as int16 big-endian
	v, err := DecodeInt(b, BigEndian)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if v != -2 {
		t.Errorf("expected -2, got %d", v)
	}
}

func TestPadLeft(t *testing.T) {
	b := PadLeft([]byte{0x01, 0x02}, 4)
	if len(b) != 4 || b[0] != 0 || b[1] != 0 || b[2] != 1 || b[3] != 2 {
		t.Errorf("unexpected padded bytes %v", b)
	}
	b2 := PadLeft([]byte{1, 2, 3, 4, 5}, 3)
	if len(b2) != 3 {
		t.Errorf("expected truncation to 3 bytes, got %v", b2)
	}
}

func TestEncodeUintRejectsBadSize(t *testing.T) {
	if _, err := EncodeUint(1, 7, BigEndian); err == nil {
		t.Error("expected error for non-byte-aligned bit size")
	}
}
