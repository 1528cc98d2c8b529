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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kreator666/EIPs-1/params"
)

// TestJumpTableComplete checks that every slot holds a descriptor, so the
// validator never has to nil-check a table lookup.
func TestJumpTableComplete(t *testing.T) {
	jt := DefaultJumpTable()
	for i, entry := range jt {
		require.NotNilf(t, entry, "op %#x: missing descriptor", i)
	}
}

func TestJumpTableStackBounds(t *testing.T) {
	jt := DefaultJumpTable()
	for i, entry := range jt {
		if entry.undefined {
			continue
		}
		op := OpCode(i)
		require.GreaterOrEqual(t, entry.pops(), 0, "op %v", op)
		require.GreaterOrEqual(t, entry.pushes(), 0, "op %v", op)
		// Reconstructing maxStack from pops/pushes must round-trip.
		require.Equal(t, maxStack(entry.pops(), entry.pushes()), entry.maxStack, "op %v", op)
		require.Equal(t, minStack(entry.pops(), entry.pushes()), entry.minStack, "op %v", op)
	}
}

func TestJumpTableDescriptors(t *testing.T) {
	jt := DefaultJumpTable()

	// PUSH0..PUSH32 produce a statically known value; nothing else does.
	for i, entry := range jt {
		op := OpCode(i)
		require.Equal(t, op.IsPush(), entry.pushesConstant, "op %v", op)
	}
	// PUSHn carries n immediate bytes, PUSH0 none.
	require.Equal(t, 0, Immediates(PUSH0))
	for i := 0; i < 32; i++ {
		require.Equal(t, i+1, Immediates(PUSH1+OpCode(i)))
	}
	require.Equal(t, 0, Immediates(ADD))

	// Exactly the halting instructions end a path.
	terminals := map[OpCode]bool{STOP: true, RETURN: true, REVERT: true, SELFDESTRUCT: true}
	for i, entry := range jt {
		if entry.undefined {
			continue
		}
		op := OpCode(i)
		require.Equal(t, terminals[op], entry.terminal, "op %v", op)
	}

	// INVALID and the instruction-set holes are undefined; the named opcodes
	// are not.
	require.True(t, jt[INVALID].undefined)
	require.True(t, jt[0x0c].undefined)
	require.True(t, jt[0x21].undefined)
	require.False(t, jt[JUMPDEST].undefined)
	require.False(t, jt[STOP].undefined)
}

func TestJumpTableStackDelta(t *testing.T) {
	jt := DefaultJumpTable()
	for _, test := range []struct {
		op    OpCode
		delta int
	}{
		{PUSH1, 1},
		{DUP1, 1},
		{DUP16, 1},
		{SWAP1, 0},
		{SWAP16, 0},
		{POP, -1},
		{ADD, -1},
		{JUMP, -1},
		{JUMPI, -2},
		{JUMPDEST, 0},
		{CALL, -6},
		{LOG4, -6},
	} {
		require.Equal(t, test.delta, jt[test.op].stackDelta(), "op %v", test.op)
	}
	// The overflow bound derives from the configured stack limit: DUP1 on a
	// full stack of 1024 items must be over the line.
	require.Equal(t, int(params.StackLimit)-1, jt[DUP1].maxStack)
}
