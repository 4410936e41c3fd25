package main

import (
	"fmt"

	"github.com/geal-ai/binstream"
)

// FieldResult is one decoded field, in descriptor order.
type FieldResult struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// decodeRecord runs a Descriptor's fields against data in order, applying
// the optional process step of bytes and str fields before interpretation
// (numeric and bit fields ignore it). It exercises
// every read kind the runtime exposes.
func decodeRecord(d *Descriptor, data []byte, tc binstream.Transcoder) ([]FieldResult, error) {
	c := binstream.NewBitCursor(binstream.NewMemorySource(data))
	results := make([]FieldResult, 0, len(d.Fields))

	for _, f := range d.Fields {
		v, err := decodeField(c, f, tc)
		if err != nil {
			return results, fmt.Errorf("field %q: %w", f.Name, err)
		}
		results = append(results, FieldResult{Name: f.Name, Value: v})
	}
	return results, nil
}

func decodeField(c *binstream.BitCursor, f FieldDescriptor, tc binstream.Transcoder) (any, error) {
	switch f.Kind {
	case "u1":
		return c.ReadU1()
	case "s1":
		return c.ReadS1()
	case "u2le":
		return c.ReadU2LE()
	case "u2be":
		return c.ReadU2BE()
	case "s2le":
		return c.ReadS2LE()
	case "s2be":
		return c.ReadS2BE()
	case "u4le":
		return c.ReadU4LE()
	case "u4be":
		return c.ReadU4BE()
	case "s4le":
		return c.ReadS4LE()
	case "s4be":
		return c.ReadS4BE()
	case "u8le":
		return c.ReadU8LE()
	case "u8be":
		return c.ReadU8BE()
	case "s8le":
		return c.ReadS8LE()
	case "s8be":
		return c.ReadS8BE()
	case "f4le":
		return c.ReadF4LE()
	case "f4be":
		return c.ReadF4BE()
	case "f8le":
		return c.ReadF8LE()
	case "f8be":
		return c.ReadF8BE()
	case "bits_be":
		return c.ReadBitsIntBE(f.Width)
	case "bits_le":
		return c.ReadBitsIntLE(f.Width)
	case "vlq_le":
		return c.ReadVlqBase128LE()
	case "vlq_be":
		return c.ReadVlqBase128BE()
	case "bytes":
		return decodeBytesField(c, f)
	case "str":
		return decodeStrField(c, f, tc)
	default:
		return nil, fmt.Errorf("unknown field kind %q", f.Kind)
	}
}

func decodeBytesField(c *binstream.BitCursor, f FieldDescriptor) ([]byte, error) {
	var raw []byte
	var err error
	switch {
	case f.ToEOF:
		raw, err = c.ReadBytesFull()
	case f.Terminator != nil:
		raw, err = c.ReadBytesTerm(*f.Terminator, f.Include, f.Consume, f.EOSError)
	default:
		raw, err = c.ReadBytes(uint64(f.Length))
	}
	if err != nil {
		return nil, err
	}
	return applyProcess(raw, f)
}

func decodeStrField(c *binstream.BitCursor, f FieldDescriptor, tc binstream.Transcoder) (string, error) {
	raw, err := decodeBytesField(c, f)
	if err != nil {
		return "", err
	}
	enc := f.Encoding
	if enc == "" {
		enc = "UTF-8"
	}
	return c.BytesToStr(raw, enc, tc)
}

func intsToBytes(xs []int) []byte {
	out := make([]byte, len(xs))
	for i, x := range xs {
		out[i] = byte(x)
	}
	return out
}

func applyProcess(raw []byte, f FieldDescriptor) ([]byte, error) {
	switch f.Process {
	case "":
		return raw, nil
	case "xor1":
		return binstream.ProcessXorOne(raw, byte(f.KeyByte)), nil
	case "xorn":
		return binstream.ProcessXorMany(raw, intsToBytes(f.Key))
	case "rotate":
		return binstream.ProcessRotateLeft(raw, f.Amount, 1)
	case "zlib":
		return binstream.ProcessZlib(raw)
	default:
		return nil, fmt.Errorf("unknown process %q", f.Process)
	}
}
