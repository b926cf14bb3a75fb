package bblist

import (
	"bufio"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strconv"
	"strings"
)

// ParseSet reads one basic-block address per line. Blank lines are
// skipped; any other line must be an integer literal in a base recognized
// by strconv with base 0 (0x hex, 0o octal, 0b binary, plain decimal).
// Duplicates collapse.
func ParseSet(r io.Reader) (map[uint64]struct{}, error) {
	set := make(map[uint64]struct{})
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(sc.Text())
		if s == "" {
			continue
		}
		v, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad address %q: %v", line, s, err)
		}
		set[v] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

func ReadFile(path string) (map[uint64]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseSet(f)
}

// Format renders the set as lowercase 0x-prefixed hex literals joined by
// newlines. Iteration order of the set is not part of the format; readers
// must compare membership, not text.
func Format(set map[uint64]struct{}) []byte {
	lines := make([]string, 0, len(set))
	for a := range set {
		lines = append(lines, fmt.Sprintf("0x%x", a))
	}
	return []byte(strings.Join(lines, "\n"))
}

func WriteFile(path string, set map[uint64]struct{}) error {
	return ioutil.WriteFile(path, Format(set), 0o644)
}
