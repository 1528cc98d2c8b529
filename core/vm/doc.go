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

/*
Package vm implements creation-time static validation of EVM bytecode.

Code is checked once, when it is about to be deployed, and either accepted
or rejected outright. Accepted code carries a guarantee for every later
execution: no undefined instruction is reachable, every jump lands on a
JUMPDEST at an instruction boundary, and the data stack can neither
underflow nor exceed its limit on any control-flow path.

The guarantee is only decidable because jump destinations are restricted to
compile-time constants. A destination must be traceable to a single PUSH
literal through pure stack shuffling (DUP/SWAP); anything computed, loaded,
or read from the environment is rejected as unresolvable. With that
restriction the control-flow graph is fully known and a single worklist
walk, memoized per position, validates the whole program in time linear in
the code size plus the number of branch edges.
*/
package vm
