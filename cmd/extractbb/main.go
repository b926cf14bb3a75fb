package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"github.com/evmlab/bbtools/evm"
	"github.com/evmlab/bbtools/solc"
	"github.com/evmlab/bbtools/utils/bblist"
)

func loadCode(path, contract string) ([]byte, error) {
	if strings.HasSuffix(path, ".json") {
		comb, err := solc.ReadCombinedFile(path)
		if err != nil {
			return nil, err
		}
		c, err := comb.Contract(contract)
		if err != nil {
			return nil, err
		}
		return c.RuntimeCode()
	}
	raw, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return evm.ParseBytecode(raw), nil
}

func main() {
	contract := flag.String("contract", "", "contract name to pick from a combined.json input")
	reachable := flag.Bool("reachable", false, "only emit blocks reachable from offset 0 via fall-through and pushed jump targets")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-contract NAME] [-reachable] <bytecode_or_combined.json> <bb_list_file>\n\n"+
			"    Extracts basic block start addresses from EVM runtime code\n"+
			"    (bin-runtime or a solc combined.json) and writes them to the\n"+
			"    given bb_list file.\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}
	code, err := loadCode(flag.Arg(0), *contract)
	if err != nil {
		log.Fatal(err)
	}
	bbs := evm.BasicBlocks(code)
	if *reachable {
		bbs = evm.ReachableBlocks(code)
	}
	if err := bblist.WriteFile(flag.Arg(1), bbs); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("extracted %d BB locs\n", len(bbs))
}
