package main

import (
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/kk-code-lab/hugeless/internal/hugeapp"
)

func printHelp() {
	fmt.Print(`hugeless - terminal pager for very large log files

USAGE:
    hugeless [OPTIONS] <path>

OPTIONS:
    -h, --help    Show this help message and exit
`)
}

func main() {
	// Fall back to UTF-8 decoding for terminals that don't announce a
	// locale.
	tcell.SetEncodingFallback(tcell.EncodingFallbackUTF8)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "hugeless: missing file operand")
		printHelp()
		os.Exit(1)
	}

	arg := os.Args[1]
	if arg == "-h" || arg == "--help" {
		printHelp()
		os.Exit(0)
	}

	path := arg
	app, err := hugeapp.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hugeless: %s: %v\n", path, err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run()
}
