// Command binstream decodes a byte-format descriptor against a file and
// prints the resulting fields.
//
// Usage:
//
//	binstream -descriptor fields.yaml -in data.bin
//	binstream -descriptor fields.yaml -in data.bin -json
//	binstream -descriptor fields.yaml -in data.bin -encoding full
//
// Examples:
//
//	binstream -descriptor testdata/header.yaml -in testdata/sample.bin
//	binstream -descriptor testdata/header.yaml -in testdata/sample.bin -json
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/geal-ai/binstream"
)

func main() {
	descPath := flag.String("descriptor", "", "Path to a YAML field descriptor (required)")
	inPath := flag.String("in", "", "Path to the binary input file (required)")
	asJSON := flag.Bool("json", false, "Output results as JSON")
	encMode := flag.String("encoding", "minimal", "String transcoder backend: \"minimal\" (ASCII/UTF-8) or \"full\" (any IANA charset)")
	mmapIn := flag.Bool("mmap", false, "Memory-map the input instead of loading it whole")
	flag.Usage = usage
	flag.Parse()

	if *descPath == "" || *inPath == "" {
		fmt.Fprintln(os.Stderr, "error: -descriptor and -in are required")
		usage()
		os.Exit(2)
	}

	desc, err := LoadDescriptor(*descPath)
	if err != nil {
		fatalf("%v", err)
	}

	var tc binstream.Transcoder
	switch *encMode {
	case "minimal":
		tc = binstream.NewASCIITranscoder()
	case "full":
		tc = binstream.NewTableTranscoder()
	default:
		fatalf("invalid -encoding %q: want \"minimal\" or \"full\"", *encMode)
	}

	data, err := loadInput(*inPath, *mmapIn)
	if err != nil {
		fatalf("%v", err)
	}

	results, err := decodeRecord(desc, data, tc)
	if err != nil {
		fatalf("decode %s: %v", desc.Name, err)
	}

	if *asJSON {
		emitJSON(results)
	} else {
		printResults(desc, results)
	}
}

func loadInput(path string, useMmap bool) ([]byte, error) {
	if !useMmap {
		return os.ReadFile(path)
	}
	src, err := binstream.NewMappedSource(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return src.ReadBytesFull()
}

func printResults(d *Descriptor, results []FieldResult) {
	maxName := 0
	for _, r := range results {
		if len(r.Name) > maxName {
			maxName = len(r.Name)
		}
	}
	fmt.Printf("\n  %s\n\n", d.Name)
	for _, r := range results {
		fmt.Printf("  %-*s  %v\n", maxName, r.Name, r.Value)
	}
	fmt.Printf("\n")
}

func emitJSON(results []FieldResult) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(results); err != nil {
		fatalf("json encode: %v", err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `binstream — decode a byte-format descriptor against a file

Usage:
  binstream -descriptor fields.yaml -in data.bin [-json] [-encoding minimal|full] [-mmap]

Flags:`)
	flag.PrintDefaults()
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
