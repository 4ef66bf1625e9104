// Copyright (C) 2025 Michael J. Fromberger. All Rights Reserved.

// Program jpush reads JSON from stdin, parses it incrementally in chunks,
// and prints the resulting document tree to stdout.
//
// With -hujson, the input may contain comments and trailing commas, which
// are standardized away before parsing begins.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/creachadair/jpush"
	"github.com/creachadair/jpush/ast"
	"github.com/tailscale/hujson"
)

var (
	chunkSize = flag.Int("chunk", 4096, "Number of input bytes fed per parse call")
	doHuJSON  = flag.Bool("hujson", false, "Standardize HuJSON extensions before parsing")
)

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("jpush: ")
	if *chunkSize <= 0 {
		log.Fatal("The -chunk size must be positive")
	}

	in := io.Reader(os.Stdin)
	if *doHuJSON {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatalf("Reading input: %v", err)
		}
		std, err := hujson.Standardize(data)
		if err != nil {
			log.Fatalf("Standardizing input: %v", err)
		}
		in = bytes.NewReader(std)
	}

	b := ast.NewBuilder()
	src := jpush.NewSource()
	st := jpush.NewStream(src)

	buf := make([]byte, *chunkSize)
feed:
	for {
		n, rerr := in.Read(buf)
		if n > 0 {
			src.Feed(buf[:n])
		}
		switch {
		case rerr == io.EOF:
			src.Close()
			break feed
		case rerr != nil:
			log.Fatalf("Reading input: %v", rerr)
		}
		if err := st.Parse(b); err != nil && err != jpush.ErrMoreInput {
			log.Fatalf("Parse failed: %v", err)
		}
	}

	// After closure the parser may need more than one call to drain the
	// final token before it reaches a terminal result.
	for {
		err := st.Parse(b)
		if err == nil {
			break
		} else if err != jpush.ErrMoreInput {
			log.Fatalf("Parse failed: %v", err)
		}
	}
	fmt.Println(b.Root().JSON())
}
