package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/docbind/docbind/jsondoc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "convert":
		convertCmd(os.Args[2:])
	case "fingerprint":
		fingerprintCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "docbind CLI\n\nUsage:\n  docbind convert -from json|yaml|cbor -to json|yaml|cbor [-in file] [-out file]\n  docbind fingerprint [-from json|yaml|cbor] [-in file]\n\nReads stdin / writes stdout when -in/-out are omitted.")
}

func convertCmd(args []string) {
	fs := flag.NewFlagSet("convert", flag.ExitOnError)
	var from, to, in, out string
	fs.StringVar(&from, "from", "json", "input format: json, yaml or cbor")
	fs.StringVar(&to, "to", "json", "output format: json, yaml or cbor")
	fs.StringVar(&in, "in", "", "input filename (default stdin)")
	fs.StringVar(&out, "out", "", "output filename (default stdout)")
	_ = fs.Parse(args)

	data, err := readAll(in)
	if err != nil {
		fatal(err)
	}
	doc, err := unmarshalAs(from, data)
	if err != nil {
		fatal(err)
	}
	enc, err := marshalAs(to, doc)
	if err != nil {
		fatal(err)
	}
	if err := writeAll(out, enc); err != nil {
		fatal(err)
	}
}

func fingerprintCmd(args []string) {
	fs := flag.NewFlagSet("fingerprint", flag.ExitOnError)
	var from, in string
	fs.StringVar(&from, "from", "json", "input format: json, yaml or cbor")
	fs.StringVar(&in, "in", "", "input filename (default stdin)")
	_ = fs.Parse(args)

	data, err := readAll(in)
	if err != nil {
		fatal(err)
	}
	doc, err := unmarshalAs(from, data)
	if err != nil {
		fatal(err)
	}
	fp := jsondoc.Fingerprint(doc)
	fmt.Println(hex.EncodeToString(fp[:]))
}

func unmarshalAs(format string, data []byte) (jsondoc.Document, error) {
	switch format {
	case "json":
		return jsondoc.Unmarshal(data)
	case "yaml":
		return jsondoc.UnmarshalYAML(data)
	case "cbor":
		return jsondoc.UnmarshalCBOR(data)
	}
	return jsondoc.Document{}, fmt.Errorf("unknown format %q", format)
}

func marshalAs(format string, doc jsondoc.Document) ([]byte, error) {
	switch format {
	case "json":
		return jsondoc.Marshal(doc)
	case "yaml":
		return jsondoc.MarshalYAML(doc)
	case "cbor":
		return jsondoc.MarshalCBOR(doc)
	}
	return nil, fmt.Errorf("unknown format %q", format)
}

func readAll(name string) ([]byte, error) {
	if name == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

func writeAll(name string, data []byte) error {
	if name == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(name, data, 0o644)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "docbind:", err)
	os.Exit(1)
}
