// Copyright 2022 The go-ethereum Authors
// This file is part of the go-ethereum library.
//
// The go-ethereum library is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The go-ethereum library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with the go-ethereum library. If not, see <http://www.gnu.org/licenses/>.

package vm

import (
	"fmt"

	"github.com/holiman/uint256"
)

// Validate statically verifies raw bytecode against the default instruction
// set. It is the entry point for the deployment pipeline: a non-nil error
// must abort code creation before anything is persisted.
func Validate(code []byte) error {
	return ValidateCode(NewCode(code), nil)
}

// ValidateCode walks every control-flow path of the code exactly once and
// proves that no reachable instruction can cause an exceptional halt other
// than out-of-gas: no undefined instruction is ever executed, every jump
// lands on a JUMPDEST at an instruction boundary, and the data stack can
// neither underflow nor grow past the stack limit on any path.
//
// Jump destinations must be compile-time constants, i.e. traceable to a
// single PUSH literal through pure stack shuffling. A destination that is
// the result of any computation fails with ErrUnresolvedJump; rejecting
// dynamic jumps is what keeps the walk a single linear pass.
//
// Each position is analyzed at most once: the visited table memoizes the
// stack height recorded on first entry, and an edge reaching a visited
// position terminates that path with the cached verdict, provided it arrives
// at the recorded height. Paths joining at conflicting heights are rejected
// with ErrConflictingStack, since the cached bounds would not carry over.
// Total work is therefore O(len(code) + number of control-flow edges).
func ValidateCode(c *Code, jt *JumpTable) error {
	if jt == nil {
		jt = DefaultJumpTable()
	}
	// branch is one pending path: the untaken successor of a JUMPI, with a
	// snapshot of the constant shadow stack at the branch point.
	type branch struct {
		pc     int
		height int
		consts *constStack
	}
	var (
		// visited[pc] is the stack height recorded when pc was first
		// analyzed. -1 is the explicit unvisited sentinel, so a real
		// height of zero is representable.
		visited  = make([]int32, c.Len())
		worklist = []branch{{pc: 0, height: 0, consts: newConstStack()}}
	)
	for i := range visited {
		visited[i] = -1
	}
	for len(worklist) > 0 {
		var (
			idx    = len(worklist) - 1
			pc     = worklist[idx].pc
			height = worklist[idx].height
			consts = worklist[idx].consts
		)
		worklist = worklist[:idx]

	path:
		for pc < c.Len() {
			if want := visited[pc]; want >= 0 {
				// This edge closes a cycle or joins a block analyzed from
				// another path. The earlier verdict only transfers if the
				// stack height agrees: the continuation's bounds were
				// proven relative to the recorded height, so a shallower
				// entry could underflow and a deeper one overflow.
				if int(want) != height {
					return fmt.Errorf("%w: have %d, want %d, pos %d", ErrConflictingStack, height, want, pc)
				}
				break path
			}
			visited[pc] = int32(height)

			op := c.OpAt(pc)
			entry := jt[op]
			if entry.undefined {
				return fmt.Errorf("%w: op %#x, pos %d", ErrUndefinedInstruction, byte(op), pc)
			}
			if entry.immediate > 0 && pc+1+entry.immediate > c.Len() {
				return fmt.Errorf("%w: op %s, pos %d", ErrTruncatedImmediate, op, pc)
			}
			if height < entry.minStack {
				return fmt.Errorf("%w: pos %d", ErrStackUnderflow{stackLen: height, required: entry.minStack}, pc)
			}
			if height > entry.maxStack {
				return fmt.Errorf("%w: pos %d", ErrStackOverflow{stackLen: height, limit: entry.maxStack}, pc)
			}

			switch {
			case op == JUMP:
				dest := consts.pop()
				if dest == nil {
					return fmt.Errorf("%w: pos %d", ErrUnresolvedJump, pc)
				}
				if !c.validJumpdest(dest) {
					return fmt.Errorf("%w: dest %v, pos %d", ErrInvalidJumpDest, dest, pc)
				}
				height--
				// A new basic block starts at the target; same path, the
				// target's JUMPDEST is checked like any other position.
				pc = int(dest.Uint64())

			case op == JUMPI:
				dest := consts.pop()
				consts.pop() // condition, value irrelevant
				if dest == nil {
					return fmt.Errorf("%w: pos %d", ErrUnresolvedJump, pc)
				}
				if !c.validJumpdest(dest) {
					return fmt.Errorf("%w: dest %v, pos %d", ErrInvalidJumpDest, dest, pc)
				}
				height -= 2
				// Both successors are live. Queue the taken branch with a
				// snapshot of the shadow stack, walk the fallthrough now.
				worklist = append(worklist, branch{pc: int(dest.Uint64()), height: height, consts: consts.copy()})
				pc++

			case entry.pushesConstant:
				// PUSH0 has no immediate; SetBytes of the empty slice is 0.
				consts.pushConstant(new(uint256.Int).SetBytes(c.code[pc+1 : pc+1+entry.immediate]))
				height++
				pc += 1 + entry.immediate

			case DUP1 <= op && op <= DUP16:
				consts.dup(int(op-DUP1) + 1)
				height++
				pc++

			case SWAP1 <= op && op <= SWAP16:
				consts.swap(int(op-SWAP1) + 1)
				pc++

			case entry.terminal:
				// Normal halt, path done.
				break path

			default:
				for i := 0; i < entry.pops(); i++ {
					consts.pop()
				}
				for i := 0; i < entry.pushes(); i++ {
					consts.pushUnknown()
				}
				height += entry.stackDelta()
				pc++
			}
		}
		// Advancing to len(code) is an implicit stop; the path ends cleanly.
	}
	return nil
}
