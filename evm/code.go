package evm

import (
	"github.com/ethereum/go-ethereum/core/vm"
	"github.com/holiman/uint256"
)

type bitvec []byte

func (b bitvec) set(i int)      { b[i/8] |= 1 << (i % 8) }
func (b bitvec) get(i int) bool { return b[i/8]&(1<<(i%8)) != 0 }

// CodeMeta records, for one runtime code buffer, which byte offsets start
// an instruction and which are valid JUMPDESTs. A 0x5b byte inside PUSH
// data is neither.
type CodeMeta struct {
	code     []byte
	isInst   bitvec
	jumpdest bitvec
}

func NewCodeMeta(code []byte) *CodeMeta {
	m := &CodeMeta{
		code:     code,
		isInst:   make(bitvec, (len(code)+7)/8),
		jumpdest: make(bitvec, (len(code)+7)/8),
	}
	for pc := 0; pc < len(code); {
		op := vm.OpCode(code[pc])
		m.isInst.set(pc)
		if op == vm.JUMPDEST {
			m.jumpdest.set(pc)
		}
		if op.IsPush() {
			pc += int(op-vm.PUSH1) + 2
		} else {
			pc++
		}
	}
	return m
}

func (m *CodeMeta) Len() int { return len(m.code) }

// IsInstruction reports whether pos is the first byte of an instruction.
func (m *CodeMeta) IsInstruction(pos int) bool {
	return pos >= 0 && pos < len(m.code) && m.isInst.get(pos)
}

// IsValidJumpdest reports whether pos holds a JUMPDEST that is not part of
// some PUSH operand.
func (m *CodeMeta) IsValidJumpdest(pos int) bool {
	return pos >= 0 && pos < len(m.code) && m.jumpdest.get(pos)
}

// pushTarget decodes the operand of the PUSH at pc and reports whether it
// names a valid jumpdest.
func (m *CodeMeta) pushTarget(pc int) (uint64, bool) {
	op := vm.OpCode(m.code[pc])
	end := pc + int(op-vm.PUSH1) + 2
	if end > len(m.code) {
		return 0, false
	}
	var v uint256.Int
	v.SetBytes(m.code[pc+1 : end])
	if !v.IsUint64() {
		return 0, false
	}
	t := v.Uint64()
	if t >= uint64(len(m.code)) || !m.IsValidJumpdest(int(t)) {
		return 0, false
	}
	return t, true
}
