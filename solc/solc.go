package solc

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// Contract is one entry of a solc combined.json. solc and truffle disagree
// on key names across versions, so the bytecode fields accept the
// deployedBytecode-style aliases, and the ABI is normalized to its JSON
// text (old solc stores it as a string, 0.8+ embeds it as JSON).
type Contract struct {
	ABI           string
	Bin           string
	BinRuntime    string
	Srcmap        string
	SrcmapRuntime string
}

func (c *Contract) UnmarshalJSON(data []byte) error {
	var aux struct {
		ABI           json.RawMessage `json:"abi"`
		Bin           string          `json:"bin"`
		Bytecode      string          `json:"bytecode"`
		BinRuntime    string          `json:"bin-runtime"`
		Deployed      string          `json:"deployedBytecode"`
		Srcmap        string          `json:"srcmap"`
		SrcmapRuntime string          `json:"srcmap-runtime"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(aux.ABI) > 0 {
		var s string
		if json.Unmarshal(aux.ABI, &s) == nil {
			c.ABI = s
		} else {
			c.ABI = string(aux.ABI)
		}
	}
	c.Bin = aux.Bin
	if c.Bin == "" {
		c.Bin = aux.Bytecode
	}
	c.BinRuntime = aux.BinRuntime
	if c.BinRuntime == "" {
		c.BinRuntime = aux.Deployed
	}
	c.Srcmap = aux.Srcmap
	c.SrcmapRuntime = aux.SrcmapRuntime
	return nil
}

// RuntimeCode decodes the contract's deployed code from its hex encoding.
func (c *Contract) RuntimeCode() ([]byte, error) {
	s := strings.TrimSpace(c.BinRuntime)
	if s == "" {
		return nil, errors.New("contract has no runtime code")
	}
	if !strings.HasPrefix(s, "0x") {
		s = "0x" + s
	}
	return hexutil.Decode(s)
}

type Combined struct {
	Contracts  map[string]Contract `json:"contracts"`
	SourceList []string            `json:"sourceList"`
	Version    string              `json:"version"`
}

func ReadCombinedFile(path string) (*Combined, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Combined
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	if len(c.Contracts) == 0 {
		return nil, fmt.Errorf("%s: no contracts", path)
	}
	return &c, nil
}

// Contract looks up one contract. Keys have the form "file.sol:Name"; a
// bare name matches by suffix. An empty name is allowed when the file
// holds exactly one contract.
func (c *Combined) Contract(name string) (*Contract, error) {
	if name == "" {
		if len(c.Contracts) != 1 {
			return nil, fmt.Errorf("%d contracts present, name required", len(c.Contracts))
		}
		for _, ct := range c.Contracts {
			res := ct
			return &res, nil
		}
	}
	if ct, ok := c.Contracts[name]; ok {
		return &ct, nil
	}
	var found *Contract
	for k, ct := range c.Contracts {
		if strings.HasSuffix(k, ":"+name) {
			if found != nil {
				return nil, fmt.Errorf("contract name %q is ambiguous", name)
			}
			res := ct
			found = &res
		}
	}
	if found == nil {
		return nil, fmt.Errorf("contract %q not found", name)
	}
	return found, nil
}
