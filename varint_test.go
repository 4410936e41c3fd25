package binstream

import "testing"

func TestReadVlqBase128LE(t *testing.T) {
	// 300 = 0b1_0010_1100 -> groups (LSB first): 0101100 with cont bit, 0000010
	c := cursor([]byte{0b10101100, 0b00000010})
	v, err := c.ReadVlqBase128LE()
	if err != nil {
		t.Fatal(err)
	}
	if v != 300 {
		t.Fatalf("got %d, want 300", v)
	}
}

func TestReadVlqBase128LESingleByte(t *testing.T) {
	c := cursor([]byte{0x05})
	v, err := c.ReadVlqBase128LE()
	if err != nil {
		t.Fatal(err)
	}
	if v != 5 {
		t.Fatalf("got %d, want 5", v)
	}
}

func TestReadVlqBase128BE(t *testing.T) {
	// Same value 300 encoded MSB-group-first: 0b10000010, 0b00101100
	c := cursor([]byte{0b10000010, 0b00101100})
	v, err := c.ReadVlqBase128BE()
	if err != nil {
		t.Fatal(err)
	}
	if v != 300 {
		t.Fatalf("got %d, want 300", v)
	}
}

func TestReadVlqTooLong(t *testing.T) {
	data := make([]byte, 11)
	for i := range data {
		data[i] = 0x80
	}
	c := cursor(data)
	_, err := c.ReadVlqBase128LE()
	assertKind(t, err, KindInvalidArgument)
}

func TestReadVlqRequiresAlignment(t *testing.T) {
	c := cursor([]byte{0xFF, 0x01})
	if _, err := c.ReadBitsIntBE(1); err != nil {
		t.Fatal(err)
	}
	_, err := c.ReadVlqBase128LE()
	assertKind(t, err, KindUnalignedRead)
}
