// Command cmark reads CommonMark source from stdin and writes the
// rendered HTML to stdout.
package main

import (
	"io"
	"os"

	"pkt.systems/cmark"
)

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		os.Stderr.WriteString("cmark: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run(r io.Reader, w io.Writer) error {
	src, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, cmark.ToHTML(string(src)))
	return err
}
