// Copyright 2017 The go-ethereum Authors
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

	"github.com/holiman/uint256"
)

func TestConstStackPushPop(t *testing.T) {
	st := newConstStack()
	st.pushConstant(uint256.NewInt(8))
	st.pushUnknown()
	if st.len() != 2 {
		t.Fatalf("expected len 2, got %d", st.len())
	}
	if v := st.pop(); v != nil {
		t.Fatalf("expected unknown on top, got %v", v)
	}
	if v := st.pop(); v == nil || v.Uint64() != 8 {
		t.Fatalf("expected constant 8, got %v", v)
	}
	if st.len() != 0 {
		t.Fatalf("expected empty stack, got len %d", st.len())
	}
}

func TestConstStackDup(t *testing.T) {
	st := newConstStack()
	st.pushConstant(uint256.NewInt(8))
	st.pushUnknown()

	// DUP2 lifts the constant over the unknown.
	st.dup(2)
	if v := st.pop(); v == nil || v.Uint64() != 8 {
		t.Fatalf("dup lost the constant, got %v", v)
	}
	// DUP1 of an unknown stays unknown.
	st.dup(1)
	if v := st.pop(); v != nil {
		t.Fatalf("dup invented a constant: %v", v)
	}
}

func TestConstStackSwap(t *testing.T) {
	st := newConstStack()
	st.pushConstant(uint256.NewInt(8))
	st.pushUnknown()
	st.pushUnknown()

	// SWAP2 brings the bottom constant to the top.
	st.swap(2)
	if v := st.pop(); v == nil || v.Uint64() != 8 {
		t.Fatalf("swap lost the constant, got %v", v)
	}
	if v := st.pop(); v != nil {
		t.Fatalf("expected unknown, got %v", v)
	}
	if v := st.pop(); v != nil {
		t.Fatalf("expected unknown in the swapped slot, got %v", v)
	}
}

func TestConstStackCopy(t *testing.T) {
	st := newConstStack()
	st.pushConstant(uint256.NewInt(8))
	st.pushUnknown()

	cpy := st.copy()
	// Draining the original must not disturb the snapshot.
	st.pop()
	st.pop()
	if cpy.len() != 2 {
		t.Fatalf("copy shares backing store, len %d", cpy.len())
	}
	if v := cpy.pop(); v != nil {
		t.Fatalf("expected unknown on top of copy, got %v", v)
	}
	if v := cpy.pop(); v == nil || v.Uint64() != 8 {
		t.Fatalf("copy lost the constant, got %v", v)
	}
}
