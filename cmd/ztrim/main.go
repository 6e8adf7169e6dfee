package main

import (
	"bufio"
	"flag"
	"log/slog"
	"os"

	"github.com/ssungk/zstr/pkg/zstr"
)

// ztrim reads lines from stdin, strips the cutset from both ends of each
// line, and writes the result to stdout. One reused string buffer handles
// every line.
func main() {
	cutset := flag.String("cutset", " \t\r\n", "bytes to strip from both ends of each line")
	prefix := flag.String("prefix", "", "optional prefix added to every surviving line")
	flag.Parse()

	in := bufio.NewScanner(os.Stdin)
	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	var line zstr.S
	defer line.Free()

	for in.Scan() {
		if *prefix != "" {
			line.Putf("%s%s", *prefix, in.Bytes())
		} else {
			line.PutBytes(in.Bytes())
		}
		line.Trim(*cutset)
		if !line.Allocated() {
			slog.Error("Line buffer lost its allocation", "bytes", len(in.Bytes()))
			os.Exit(1)
		}
		out.Write(line.Bytes())
		out.WriteByte('\n')
	}
	if err := in.Err(); err != nil {
		slog.Error("Reading stdin failed", "error", err)
		os.Exit(1)
	}
}
