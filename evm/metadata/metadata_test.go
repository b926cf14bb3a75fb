package metadata

import (
	"bytes"
	"reflect"
	"testing"
)

var (
	sigSwarmV0 = []byte{0xa1, 0x65, 'b', 'z', 'z', 'r', '0', 0x58, 0x20}
	sigIpfs    = []byte{0xa2, 0x64, 'i', 'p', 'f', 's', 0x58, 0x22}
)

func offsetSet(offs ...int) map[int]struct{} {
	s := make(map[int]struct{})
	for _, o := range offs {
		s[o] = struct{}{}
	}
	return s
}

func addrSet(addrs ...uint64) map[uint64]struct{} {
	s := make(map[uint64]struct{})
	for _, a := range addrs {
		s[a] = struct{}{}
	}
	return s
}

func TestFindAll(t *testing.T) {
	if offs := FindAll([]byte("aaaa"), []byte("aa")); !reflect.DeepEqual(offs, []int{0, 2}) {
		t.Fatalf("non-overlapping scan wrong: %v", offs)
	}
	if offs := FindAll([]byte("xaaay"), []byte("aa")); !reflect.DeepEqual(offs, []int{1}) {
		t.Fatalf("overlap within one occurrence not skipped: %v", offs)
	}
	if offs := FindAll(nil, []byte("aa")); len(offs) != 0 {
		t.Fatalf("empty buffer: %v", offs)
	}
}

func TestFindBackToBackSignatures(t *testing.T) {
	buf := bytes.Join([][]byte{{0x60}, sigSwarmV0, sigSwarmV0}, nil)
	want := offsetSet(1, 1+len(sigSwarmV0))
	if got := Find(buf); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestFindMultipleVariants(t *testing.T) {
	buf := bytes.Join([][]byte{{0x60, 0x60}, sigSwarmV0, {0xaa}, sigIpfs}, nil)
	want := offsetSet(2, 2+len(sigSwarmV0)+1)
	if got := Find(buf); !reflect.DeepEqual(got, want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestFindNone(t *testing.T) {
	if got := Find([]byte{0x60, 0x60, 0x00}); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
	if got := Find(nil); len(got) != 0 {
		t.Fatalf("expected empty set on empty buffer, got %v", got)
	}
}

func TestFilterAddrsThreshold(t *testing.T) {
	prefix := []byte{0x60, 0x60}
	buf := bytes.Join([][]byte{prefix, sigSwarmV0, {0xaa, 0xbb}}, nil)
	sigOff := uint64(len(prefix))
	addrs := addrSet(0, 1, sigOff, sigOff+10)
	got := FilterAddrs(addrs, Find(buf))
	if !reflect.DeepEqual(got, addrSet(0, 1)) {
		t.Fatalf("wrong survivors: %v", got)
	}
	for a := range got {
		if _, ok := addrs[a]; !ok {
			t.Fatalf("address %d not in input set", a)
		}
		if a >= sigOff {
			t.Fatalf("address %d at or beyond threshold %d survived", a, sigOff)
		}
	}
}

func TestFilterAddrsNoMetadata(t *testing.T) {
	addrs := addrSet(0, 5, 100)
	got := FilterAddrs(addrs, nil)
	if !reflect.DeepEqual(got, addrs) {
		t.Fatalf("no-metadata filter must keep everything: %v", got)
	}
	got[9999] = struct{}{}
	if _, ok := addrs[9999]; ok {
		t.Fatal("result aliases the input set")
	}
}

func TestFilterIdempotent(t *testing.T) {
	offs := offsetSet(7, 20)
	addrs := addrSet(0, 3, 7, 8, 25)
	once := FilterAddrs(addrs, offs)
	twice := FilterAddrs(once, offs)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("second filter changed the set: %v vs %v", once, twice)
	}
	if len(once) > len(addrs) {
		t.Fatal("filter grew the set")
	}
}
