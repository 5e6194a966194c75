// Command clifquo enumerates optimal-length Clifford generator sequences
// for a given qubit count and writes the resulting prefix tree to a file.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	clifford "github.com/YuantianDing/clifquo"
	"github.com/YuantianDing/clifquo/persist"
)

func main() {
	log.SetFlags(log.Lmicroseconds)

	verbose := flag.Bool("verbose", false, "log search start, a summary and the output path")
	out := flag.String("out", "", "output file for the serialized tree (default: the positional after N, else <N>-qubit.tree)")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		log.Fatal("usage: clifquo search N [--verbose] [--out FILE]")
	}
	if args[0] != "search" {
		log.Fatalf("unknown command %q", args[0])
	}
	if len(args) < 2 {
		log.Fatal("usage: clifquo search N [--verbose] [--out FILE]")
	}

	n := parseN(args[1])

	// Flags may also follow N; whatever positional remains names the output.
	flag.CommandLine.Parse(args[2:])

	path := *out
	if path == "" {
		path = args[1] + "-qubit.tree"
		if flag.NArg() >= 1 {
			path = flag.Arg(0)
		}
	}

	if *verbose {
		log.Printf("searching N=%d qubits", n)
	}
	start := time.Now()
	tree, eqTotal := clifford.Search(n)
	if *verbose {
		log.Printf("search done in %v, %d layers, %d symplectic matrices accounted for", time.Since(start), tree.NLayers(), eqTotal)
	}

	f, err := os.Create(path)
	if err != nil {
		log.Fatalf("create output file: %v", err)
	}
	defer f.Close()

	if err := persist.WriteTree(f, tree); err != nil {
		log.Fatalf("write tree: %v", err)
	}
	if *verbose {
		log.Printf("wrote tree to %s", path)
	}
}

func parseN(s string) int {
	switch s {
	case "2":
		return 2
	case "3":
		return 3
	case "4":
		return 4
	case "5":
		return 5
	default:
		log.Fatalf("N must be one of 2,3,4,5, got %q", s)
		return 0
	}
}
