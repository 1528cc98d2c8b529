// Copyright 2014 The go-ethereum Authors
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

// constStack shadows the simulated data stack during validation and records
// which slots hold compile-time constants. Entries are index-aligned with the
// simulated stack; a nil entry means the value is not statically known.
//
// Only direct literal pushes produce constants. DUP copies the tracked slot,
// SWAP exchanges slots; every other producer pushes unknown. There is
// deliberately no folding through arithmetic: an ADD of two constants is
// unknown, so a jump through it stays unresolvable.
type constStack struct {
	data []*uint256.Int
}

func newConstStack() *constStack {
	return &constStack{}
}

func (st *constStack) len() int {
	return len(st.data)
}

// pushConstant records a statically known value on the shadow stack. The
// value is retained, not copied; it is treated as immutable from here on.
func (st *constStack) pushConstant(v *uint256.Int) {
	st.data = append(st.data, v)
}

// pushUnknown records a slot whose runtime value cannot be predicted.
func (st *constStack) pushUnknown() {
	st.data = append(st.data, nil)
}

// pop removes the top slot and returns its constant value, or nil if the
// slot is not statically known.
func (st *constStack) pop() *uint256.Int {
	v := st.data[len(st.data)-1]
	st.data = st.data[:len(st.data)-1]
	return v
}

// dup mirrors DUPn: it copies the n'th slot from the top onto the top. A
// duplicated constant stays a constant.
func (st *constStack) dup(n int) {
	st.data = append(st.data, st.data[len(st.data)-n])
}

// swap mirrors SWAPn: it exchanges the top slot with the n+1'th slot from
// the top. Pure shuffling preserves tracked constants, which is what makes
// the push-return-address subroutine pattern resolvable.
func (st *constStack) swap(n int) {
	st.data[st.len()-n-1], st.data[st.len()-1] = st.data[st.len()-1], st.data[st.len()-n-1]
}

// copy clones the shadow stack for the taken branch of a JUMPI. Slot values
// are shared; they are never mutated in place.
func (st *constStack) copy() *constStack {
	cpy := &constStack{data: make([]*uint256.Int, len(st.data))}
	copy(cpy.data, st.data)
	return cpy
}
