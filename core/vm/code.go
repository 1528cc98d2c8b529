// Copyright 2015 The go-ethereum Authors
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
	"github.com/holiman/uint256"
)

// Code is an immutable bytecode blob handed over by the creation-time
// container layer, together with the lazily built code/data bitmap. All
// offsets the validator dereferences are bounds-checked against Len.
type Code struct {
	code     []byte
	analysis bitvec
}

// NewCode wraps raw bytecode for validation. The byte slice is retained,
// not copied; callers must not mutate it afterwards.
func NewCode(code []byte) *Code {
	return &Code{code: code}
}

// Len returns the length of the bytecode.
func (c *Code) Len() int {
	return len(c.code)
}

// Bytes returns the raw bytecode.
func (c *Code) Bytes() []byte {
	return c.code
}

// OpAt returns the instruction byte at pc. The caller guarantees pc < Len.
func (c *Code) OpAt(pc int) OpCode {
	return OpCode(c.code[pc])
}

// validJumpdest reports whether dest is a JUMPDEST instruction located at an
// instruction boundary (not inside PUSH immediate data).
func (c *Code) validJumpdest(dest *uint256.Int) bool {
	udest, overflow := dest.Uint64WithOverflow()
	// PC cannot go beyond len(code) and certainly can't be bigger than 63bits.
	// Don't bother checking for JUMPDEST in that case.
	if overflow || udest >= uint64(len(c.code)) {
		return false
	}
	// Only JUMPDESTs allowed for destinations
	if OpCode(c.code[udest]) != JUMPDEST {
		return false
	}
	return c.isCode(udest)
}

// isCode returns true if the provided PC location is an actual opcode, as
// opposed to a data-segment following a PUSHN operation.
func (c *Code) isCode(udest uint64) bool {
	// Do we have it cached?
	if c.analysis == nil {
		c.analysis = codeBitmap(c.code)
	}
	return c.analysis.codeSegment(udest)
}
