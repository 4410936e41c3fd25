package main

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// Descriptor is the smallest possible stand-in for "a format compiled by
// the (out-of-scope) declaration-language generator": a flat list of
// fields naming a primitive decoder, with optional process/encoding steps.
// It exists only to drive every binstream operation end to end from a CLI;
// it is not, and does not attempt to be, the excluded generator.
type Descriptor struct {
	Name   string            `json:"name"`
	Fields []FieldDescriptor `json:"fields"`
}

// FieldDescriptor names one field's decode step.
type FieldDescriptor struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // u1, u2le, u2be, ..., f8be, bits_be, bits_le, bytes, str, vlq_le, vlq_be

	// Width is the bit count for kind=bits_be/bits_le.
	Width uint8 `json:"width,omitempty"`

	// Length is the byte count for kind=bytes. 0 with ToEOF=false and no
	// Terminator means "read 0 bytes" — callers should set one of the three.
	Length int  `json:"length,omitempty"`
	ToEOF  bool `json:"to_eof,omitempty"`

	// Terminator applies to kind=bytes or kind=str: scan for this byte value.
	Terminator *byte `json:"terminator,omitempty"`
	Include    bool  `json:"include,omitempty"`
	Consume    bool  `json:"consume,omitempty"`
	EOSError   bool  `json:"eos_error,omitempty"`

	// Encoding applies to kind=str.
	Encoding string `json:"encoding,omitempty"`

	// Process is an optional post-read transform: "xor1", "xorn", "rotate", "zlib".
	// Key/KeyByte are plain ints (not []byte) so the YAML/JSON encoding is a
	// readable list of numbers rather than a base64 blob.
	Process string `json:"process,omitempty"`
	Key     []int  `json:"key,omitempty"`
	KeyByte int    `json:"key_byte,omitempty"`
	Amount  int    `json:"amount,omitempty"`
}

// LoadDescriptor reads and validates a YAML field descriptor.
func LoadDescriptor(path string) (*Descriptor, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read descriptor %q: %w", path, err)
	}
	var d Descriptor
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse descriptor %q: %w", path, err)
	}
	if len(d.Fields) == 0 {
		return nil, fmt.Errorf("descriptor %q: no fields", path)
	}
	for i, f := range d.Fields {
		if f.Name == "" {
			return nil, fmt.Errorf("descriptor %q: field %d has no name", path, i)
		}
		if f.Kind == "" {
			return nil, fmt.Errorf("descriptor %q: field %q has no kind", path, f.Name)
		}
	}
	return &d, nil
}
