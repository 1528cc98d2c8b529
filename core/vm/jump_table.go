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
	"github.com/kreator666/EIPs-1/params"
)

// operation holds the static metadata the validator needs about an opcode.
// No execution function lives here; the table only describes stack and
// control-flow behaviour.
type operation struct {
	// minStack tells how many stack items are required
	minStack int
	// maxStack specifies the max length the stack can have for this operation
	// to not overflow the stack.
	maxStack int

	// immediate is the number of immediate-data bytes following the opcode.
	immediate int

	// pushesConstant marks opcodes whose produced value is the literal
	// immediate, i.e. statically known (PUSH0..PUSH32).
	pushesConstant bool

	// terminal indicates whether the operation halts further execution.
	terminal bool

	// undefined denotes an instruction not in the instruction set.
	undefined bool
}

// JumpTable contains the validation descriptors for every opcode.
type JumpTable [256]*operation

func minStack(pops, push int) int {
	return pops
}

func maxStack(pops, push int) int {
	return int(params.StackLimit) + pops - push
}

// pops returns how many stack items the operation consumes.
func (op *operation) pops() int {
	return op.minStack
}

// pushes returns how many stack items the operation produces.
func (op *operation) pushes() int {
	return op.minStack + int(params.StackLimit) - op.maxStack
}

// stackDelta is the net effect on the stack height.
func (op *operation) stackDelta() int {
	return int(params.StackLimit) - op.maxStack
}

var defaultInstructionSet = newInstructionSet()

// DefaultJumpTable returns the canonical instruction set used for validation.
func DefaultJumpTable() *JumpTable {
	return &defaultInstructionSet
}

// newInstructionSet returns the descriptor table of the full legacy
// instruction set up to and including the Cancun opcodes.
func newInstructionSet() JumpTable {
	tbl := JumpTable{
		STOP:       {minStack: minStack(0, 0), maxStack: maxStack(0, 0), terminal: true},
		ADD:        {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		MUL:        {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SUB:        {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		DIV:        {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SDIV:       {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		MOD:        {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SMOD:       {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		ADDMOD:     {minStack: minStack(3, 1), maxStack: maxStack(3, 1)},
		MULMOD:     {minStack: minStack(3, 1), maxStack: maxStack(3, 1)},
		EXP:        {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SIGNEXTEND: {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},

		LT:     {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		GT:     {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SLT:    {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SGT:    {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		EQ:     {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		ISZERO: {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		AND:    {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		OR:     {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		XOR:    {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		NOT:    {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		BYTE:   {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SHL:    {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SHR:    {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},
		SAR:    {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},

		KECCAK256: {minStack: minStack(2, 1), maxStack: maxStack(2, 1)},

		ADDRESS:        {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		BALANCE:        {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		ORIGIN:         {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		CALLER:         {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		CALLVALUE:      {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		CALLDATALOAD:   {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		CALLDATASIZE:   {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		CALLDATACOPY:   {minStack: minStack(3, 0), maxStack: maxStack(3, 0)},
		CODESIZE:       {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		CODECOPY:       {minStack: minStack(3, 0), maxStack: maxStack(3, 0)},
		GASPRICE:       {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		EXTCODESIZE:    {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		EXTCODECOPY:    {minStack: minStack(4, 0), maxStack: maxStack(4, 0)},
		RETURNDATASIZE: {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		RETURNDATACOPY: {minStack: minStack(3, 0), maxStack: maxStack(3, 0)},
		EXTCODEHASH:    {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},

		BLOCKHASH:   {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		COINBASE:    {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		TIMESTAMP:   {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		NUMBER:      {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		PREVRANDAO:  {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		GASLIMIT:    {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		CHAINID:     {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		SELFBALANCE: {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		BASEFEE:     {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		BLOBHASH:    {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		BLOBBASEFEE: {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},

		POP:      {minStack: minStack(1, 0), maxStack: maxStack(1, 0)},
		MLOAD:    {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		MSTORE:   {minStack: minStack(2, 0), maxStack: maxStack(2, 0)},
		MSTORE8:  {minStack: minStack(2, 0), maxStack: maxStack(2, 0)},
		SLOAD:    {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		SSTORE:   {minStack: minStack(2, 0), maxStack: maxStack(2, 0)},
		JUMP:     {minStack: minStack(1, 0), maxStack: maxStack(1, 0)},
		JUMPI:    {minStack: minStack(2, 0), maxStack: maxStack(2, 0)},
		PC:       {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		MSIZE:    {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		GAS:      {minStack: minStack(0, 1), maxStack: maxStack(0, 1)},
		JUMPDEST: {minStack: minStack(0, 0), maxStack: maxStack(0, 0)},
		TLOAD:    {minStack: minStack(1, 1), maxStack: maxStack(1, 1)},
		TSTORE:   {minStack: minStack(2, 0), maxStack: maxStack(2, 0)},
		MCOPY:    {minStack: minStack(3, 0), maxStack: maxStack(3, 0)},
		PUSH0:    {minStack: minStack(0, 1), maxStack: maxStack(0, 1), pushesConstant: true},

		LOG0: {minStack: minStack(2, 0), maxStack: maxStack(2, 0)},
		LOG1: {minStack: minStack(3, 0), maxStack: maxStack(3, 0)},
		LOG2: {minStack: minStack(4, 0), maxStack: maxStack(4, 0)},
		LOG3: {minStack: minStack(5, 0), maxStack: maxStack(5, 0)},
		LOG4: {minStack: minStack(6, 0), maxStack: maxStack(6, 0)},

		CREATE:       {minStack: minStack(3, 1), maxStack: maxStack(3, 1)},
		CALL:         {minStack: minStack(7, 1), maxStack: maxStack(7, 1)},
		CALLCODE:     {minStack: minStack(7, 1), maxStack: maxStack(7, 1)},
		RETURN:       {minStack: minStack(2, 0), maxStack: maxStack(2, 0), terminal: true},
		DELEGATECALL: {minStack: minStack(6, 1), maxStack: maxStack(6, 1)},
		CREATE2:      {minStack: minStack(4, 1), maxStack: maxStack(4, 1)},
		STATICCALL:   {minStack: minStack(6, 1), maxStack: maxStack(6, 1)},
		REVERT:       {minStack: minStack(2, 0), maxStack: maxStack(2, 0), terminal: true},
		SELFDESTRUCT: {minStack: minStack(1, 0), maxStack: maxStack(1, 0), terminal: true},
	}
	for i := 0; i < params.MaxPushSize; i++ {
		tbl[PUSH1+OpCode(i)] = &operation{
			minStack:       minStack(0, 1),
			maxStack:       maxStack(0, 1),
			immediate:      i + 1,
			pushesConstant: true,
		}
	}
	for i := 0; i < 16; i++ {
		n := i + 1
		tbl[DUP1+OpCode(i)] = &operation{
			minStack: minStack(n, n+1),
			maxStack: maxStack(n, n+1),
		}
		tbl[SWAP1+OpCode(i)] = &operation{
			minStack: minStack(n+1, n+1),
			maxStack: maxStack(n+1, n+1),
		}
	}
	// Every byte not assigned above is not part of the instruction set. That
	// includes INVALID (0xfe): reaching it aborts execution, which is exactly
	// the halt the validator must rule out.
	for i, entry := range tbl {
		if entry == nil {
			tbl[i] = &operation{undefined: true}
		}
	}
	return tbl
}

// Immediates returns the number of immediate-data bytes following op.
func Immediates(op OpCode) int {
	return defaultInstructionSet[op].immediate
}
