package metadata

import "bytes"

// Known openings of the CBOR map solc appends after the runtime code.
// The encoding changed across compiler versions; these cover the swarm v0,
// swarm v1 and ipfs hash variants.
var signatures = [][]byte{
	{0xa1, 0x65, 'b', 'z', 'z', 'r', '0', 0x58, 0x20},
	{0xa2, 0x65, 'b', 'z', 'z', 'r', '1', 0x58, 0x20},
	{0xa2, 0x64, 'i', 'p', 'f', 's', 0x58, 0x22},
}

// FindAll returns the start offsets of the non-overlapping occurrences of
// sig in buf, scanning left to right. After a match at p the scan resumes
// at p+len(sig), so back-to-back repeats of the same signature are all
// found.
func FindAll(buf, sig []byte) []int {
	var offs []int
	start := 0
	for {
		i := bytes.Index(buf[start:], sig)
		if i < 0 {
			return offs
		}
		offs = append(offs, start+i)
		start += i + len(sig)
	}
}

// Find returns the set of offsets at which any known metadata signature
// starts in buf. The scans are independent per signature, so a match of
// one signature may begin inside a match of another.
func Find(buf []byte) map[int]struct{} {
	offsets := make(map[int]struct{})
	for _, sig := range signatures {
		for _, off := range FindAll(buf, sig) {
			offsets[off] = struct{}{}
		}
	}
	return offsets
}

// FilterAddrs returns the subset of addrs strictly below the smallest
// offset in offsets. An empty offsets set means no metadata was found and
// nothing is filtered; the result is then a copy of addrs.
func FilterAddrs(addrs map[uint64]struct{}, offsets map[int]struct{}) map[uint64]struct{} {
	res := make(map[uint64]struct{}, len(addrs))
	if len(offsets) == 0 {
		for a := range addrs {
			res[a] = struct{}{}
		}
		return res
	}
	minOff := -1
	for off := range offsets {
		if minOff < 0 || off < minOff {
			minOff = off
		}
	}
	for a := range addrs {
		if a < uint64(minOff) {
			res[a] = struct{}{}
		}
	}
	return res
}
