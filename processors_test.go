package binstream

import (
	"bytes"
	"compress/zlib"
	"testing"
)

func TestProcessXorOneRoundTrip(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30, 0x40}
	enc := ProcessXorOne(data, 0xAA)
	dec := ProcessXorOne(enc, 0xAA)
	if !bytes.Equal(dec, data) {
		t.Fatalf("round trip failed: got %v, want %v", dec, data)
	}
}

func TestXorManyRoundTrip(t *testing.T) {
	data := []byte{0x10, 0x20, 0x30, 0x40}
	key := []byte{0xAA, 0xBB}
	want := []byte{0xBA, 0x9B, 0x9A, 0xFB}

	got, err := ProcessXorMany(data, key)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	back, err := ProcessXorMany(got, key)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(back, data) {
		t.Fatalf("round trip: got %v, want %v", back, data)
	}
}

func TestProcessXorManyEmptyKey(t *testing.T) {
	_, err := ProcessXorMany([]byte{1, 2, 3}, nil)
	assertKind(t, err, KindInvalidArgument)
}

func TestProcessRotateLeftRoundTrip(t *testing.T) {
	data := []byte{0x01, 0x80, 0xAB, 0xFF, 0x00}
	for a := 0; a <= 8; a++ {
		rotated, err := ProcessRotateLeft(data, a, 1)
		if err != nil {
			t.Fatalf("amount=%d: %v", a, err)
		}
		back, err := ProcessRotateLeft(rotated, 8-a, 1)
		if err != nil {
			t.Fatalf("amount=%d: %v", a, err)
		}
		if !bytes.Equal(back, data) {
			t.Errorf("amount=%d: round trip failed, got %v want %v", a, back, data)
		}
	}
}

func TestProcessRotateLeftZeroIsCopy(t *testing.T) {
	data := []byte{0x12, 0x34}
	got, err := ProcessRotateLeft(data, 0, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("got %v, want exact copy %v", got, data)
	}
}

func TestProcessRotateLeftGroupSizeRejected(t *testing.T) {
	_, err := ProcessRotateLeft([]byte{1, 2}, 4, 2)
	assertKind(t, err, KindInvalidArgument)
}

func TestProcessZlibRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	want := []byte("the quick brown fox jumps over the lazy dog")
	if _, err := w.Write(want); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	got, err := ProcessZlib(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestProcessZlibMalformed(t *testing.T) {
	_, err := ProcessZlib([]byte{0x00, 0x01, 0x02, 0x03})
	assertKind(t, err, KindDecompressionError)
}
