package binstream

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/ianaindex"
)

// Transcoder converts raw bytes read by a BitCursor into a string under a
// named character set. Two backends implement it: a minimal one that only
// understands ASCII/UTF-8, and an extended one backed by golang.org/x/text
// that resolves any IANA-registered charset name.
type Transcoder interface {
	Decode(b []byte, enc string) (string, error)
}

// ASCIITranscoder is the minimal-mode backend: ASCII and UTF-8 passthrough,
// everything else is EncodingError.
type ASCIITranscoder struct{}

// NewASCIITranscoder constructs the minimal-mode transcoder.
func NewASCIITranscoder() *ASCIITranscoder { return &ASCIITranscoder{} }

func (ASCIITranscoder) Decode(b []byte, enc string) (string, error) {
	switch normalizeEncodingName(enc) {
	case "ascii", "us-ascii":
		for _, c := range b {
			if c > 0x7f {
				return "", newErr(KindEncodingError, "ascii: byte 0x%02x is not 7-bit", c)
			}
		}
		return string(b), nil
	case "utf-8", "utf8", "":
		if !utf8.Valid(b) {
			return "", newErr(KindEncodingError, "utf-8: invalid byte sequence")
		}
		return string(b), nil
	default:
		return "", newErr(KindEncodingError, "encoding %q not available in minimal mode", enc)
	}
}

// TableTranscoder is the extended-mode backend: any canonically named
// character set known to golang.org/x/text's IANA index.
type TableTranscoder struct{}

// NewTableTranscoder constructs the extended-mode transcoder.
func NewTableTranscoder() *TableTranscoder { return &TableTranscoder{} }

func (TableTranscoder) Decode(b []byte, enc string) (string, error) {
	switch normalizeEncodingName(enc) {
	case "ascii", "us-ascii":
		return ASCIITranscoder{}.Decode(b, enc)
	case "utf-8", "utf8", "":
		return ASCIITranscoder{}.Decode(b, enc)
	}
	e, err := ianaindex.IANA.Encoding(enc)
	if err != nil || e == nil {
		return "", wrapErr(KindEncodingError, err, "unknown encoding %q", enc)
	}
	out, err := e.NewDecoder().Bytes(b)
	if err != nil {
		return "", wrapErr(KindEncodingError, err, "transcode from %q failed", enc)
	}
	return string(out), nil
}

func normalizeEncodingName(enc string) string {
	return strings.ToLower(strings.TrimSpace(enc))
}
