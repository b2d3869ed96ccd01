// Command bbdump prints the value tree of a framed bbdata document.
//
// Usage:
//
//	bbdump [-max-items N] [-no-verify] FILE
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/arloliu/bbdata/document"
)

func main() {
	maxItems := flag.Int("max-items", 16, "Maximum elements printed per array or map (0 = all)")
	noVerify := flag.Bool("no-verify", false, "Skip payload checksum verification")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] FILE\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	log.SetFlags(0)
	log.SetPrefix("bbdump: ")

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	doc, err := document.Decode(data, document.WithVerifyChecksum(!*noVerify))
	if err != nil {
		log.Fatalf("failed to decode %s: %v", flag.Arg(0), err)
	}

	h := doc.Header()
	fmt.Printf("frame: compression=%s checksum=%t stored=%d payload=%d\n",
		h.Flag.Compression, h.Flag.HasChecksum(), h.StoredSize, h.UncompressedSize)

	p := &printer{w: os.Stdout, maxItems: *maxItems}
	if err := p.document(doc); err != nil {
		log.Fatal(err)
	}
}
