package main

import (
	"fmt"
	"io/ioutil"
	"log"
	"os"

	"github.com/evmlab/bbtools/evm"
	"github.com/evmlab/bbtools/evm/metadata"
	"github.com/evmlab/bbtools/utils/bblist"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s <bytecode_file> <bb_list_file>\n\n"+
		"    Removes all basic block addresses from the given bb_list file\n"+
		"    that are located at or after some form of metadata trailer in\n"+
		"    the original EVM bytecode (bin-runtime).\n", os.Args[0])
	os.Exit(1)
}

// run parses both inputs completely before touching the bb list file, so
// any failure leaves it unmodified.
func run(bytecodePath, bbListPath string) (int, error) {
	raw, err := ioutil.ReadFile(bytecodePath)
	if err != nil {
		return 0, err
	}
	code := evm.ParseBytecode(raw)
	bbs, err := bblist.ReadFile(bbListPath)
	if err != nil {
		return 0, err
	}
	kept := metadata.FilterAddrs(bbs, metadata.Find(code))
	if err := bblist.WriteFile(bbListPath, kept); err != nil {
		return 0, err
	}
	return len(bbs) - len(kept), nil
}

func main() {
	if len(os.Args) != 3 {
		usage()
	}
	removed, err := run(os.Args[1], os.Args[2])
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("filtered %d BB locs\n", removed)
}
