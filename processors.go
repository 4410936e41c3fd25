package binstream

import (
	"bytes"
	"compress/zlib"
	"io"
)

// Processors are pure, stateless byte-array transforms applied after a raw
// read and before field interpretation. They take no cursor and carry no
// state of their own — unlike the BitCursor decoders, a failing call here
// never marks anything Failed, since there is nothing to invalidate.

// ProcessXorOne XORs every byte of data with keyByte.
func ProcessXorOne(data []byte, keyByte byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ keyByte
	}
	return out
}

// ProcessXorMany XORs byte i of data with keyBytes[i % len(keyBytes)].
func ProcessXorMany(data, keyBytes []byte) ([]byte, error) {
	if len(keyBytes) == 0 {
		return nil, newErr(KindInvalidArgument, "process_xor_many: key is empty")
	}
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = b ^ keyBytes[i%len(keyBytes)]
	}
	return out, nil
}

// ProcessRotateLeft rotates each group of groupSize bytes left by amount
// bits. This runtime only supports groupSize == 1: multi-byte groups would
// need a chosen group endianness, and there's no single unambiguous
// default, so anything else is InvalidArgument. amount is taken mod 8.
func ProcessRotateLeft(data []byte, amount int, groupSize int) ([]byte, error) {
	if groupSize != 1 {
		return nil, newErr(KindInvalidArgument, "process_rotate_left: group_size=%d unsupported (only 1)", groupSize)
	}
	amount = ((amount % 8) + 8) % 8
	out := make([]byte, len(data))
	if amount == 0 {
		copy(out, data)
		return out, nil
	}
	for i, b := range data {
		out[i] = (b << uint(amount)) | (b >> uint(8-amount))
	}
	return out, nil
}

// ProcessZlib decompresses zlib/deflate-framed data.
func ProcessZlib(data []byte) ([]byte, error) {
	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, wrapErr(KindDecompressionError, err, "zlib: invalid stream header")
	}
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, wrapErr(KindDecompressionError, err, "zlib: decompression failed")
	}
	return out, nil
}
