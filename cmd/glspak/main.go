// glspak packs files into a pak archive, each entry stored under its
// base name. The demo loads overlay geometry from archives built here.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/devblok/glstream/pak"
)

func main() {
	out := flag.String("o", "assets.pak", "output archive path")
	author := flag.String("author", "", "author recorded in the archive header")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: glspak [-o archive] [-author name] file...")
		os.Exit(2)
	}

	builder := pak.NewBuilder(pak.Header{
		Author:  *author,
		Created: time.Now().Unix(),
		Version: 1,
	})
	for _, path := range flag.Args() {
		data, err := os.ReadFile(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		if err := builder.Add(filepath.Base(path), data); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	f, err := os.Create(*out)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	written, err := builder.WriteTo(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d entries, %d bytes\n", *out, flag.NArg(), written)
}
