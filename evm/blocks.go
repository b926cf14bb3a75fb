package evm

import "github.com/ethereum/go-ethereum/core/vm"

// BasicBlocks returns the set of basic-block start offsets of code: offset
// 0, every valid JUMPDEST, and the offset following each block-terminating
// instruction.
func BasicBlocks(code []byte) map[uint64]struct{} {
	blocks := make(map[uint64]struct{})
	if len(code) == 0 {
		return blocks
	}
	blocks[0] = struct{}{}
	for pc := 0; pc < len(code); {
		op := vm.OpCode(code[pc])
		size := 1
		if op.IsPush() {
			size = int(op-vm.PUSH1) + 2
		}
		next := pc + size
		if op == vm.JUMPDEST {
			blocks[uint64(pc)] = struct{}{}
		} else if terminatesBlock(op) && next < len(code) {
			blocks[uint64(next)] = struct{}{}
		}
		pc = next
	}
	return blocks
}

// terminatesBlock reports whether op ends a straight-line sequence: the
// jumps, the halting instructions and the designated invalid opcode.
func terminatesBlock(op vm.OpCode) bool {
	switch op {
	case vm.JUMP, vm.JUMPI, vm.STOP, vm.RETURN, vm.REVERT, vm.SELFDESTRUCT, vm.INVALID:
		return true
	}
	return false
}

// ReachableBlocks returns the subset of BasicBlocks reachable from offset
// 0 following fall-through edges and jumps whose target is pushed by the
// immediately preceding instruction. Blocks only entered through computed
// jumps are not found.
func ReachableBlocks(code []byte) map[uint64]struct{} {
	reached := make(map[uint64]struct{})
	if len(code) == 0 {
		return reached
	}
	m := NewCodeMeta(code)
	work := []uint64{0}
	for len(work) > 0 {
		start := work[len(work)-1]
		work = work[:len(work)-1]
		if _, ok := reached[start]; ok {
			continue
		}
		reached[start] = struct{}{}
		prevPush := -1
		for pc := int(start); pc < len(code); {
			op := vm.OpCode(code[pc])
			if pc != int(start) && m.IsValidJumpdest(pc) {
				// fell into the next block
				work = append(work, uint64(pc))
				break
			}
			if op == vm.JUMP || op == vm.JUMPI {
				if prevPush >= 0 {
					if t, ok := m.pushTarget(prevPush); ok {
						work = append(work, t)
					}
				}
				if op == vm.JUMPI && pc+1 < len(code) {
					work = append(work, uint64(pc+1))
				}
				break
			}
			if terminatesBlock(op) {
				break
			}
			if op.IsPush() {
				prevPush = pc
				pc += int(op-vm.PUSH1) + 2
			} else {
				prevPush = -1
				pc++
			}
		}
	}
	return reached
}
