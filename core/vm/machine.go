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

import "github.com/holiman/uint256"

// machine is the mutable state one invocation carries: program counter, gas
// remaining, stack, memory, return buffer, and mnemonic log. It is created
// fresh for every invocation and discarded (save asmLog/returns/pc/gas,
// which the driver hands back to the caller) once Run returns.
type machine struct {
	env *Environment

	pc  uint64
	gas uint64

	stack  *Stack
	memory *Memory

	asmLog  []string
	returns []byte
}

func newMachine(env *Environment) *machine {
	return &machine{
		env:    env,
		pc:     0,
		gas:    env.value / env.gasPrice,
		stack:  newStack(),
		memory: newMemory(),
	}
}

// consumeGas subtracts n from remaining gas. Returns false (no mutation)
// when gas < n, which the caller treats as a fatal abort.
func (m *machine) consumeGas(n uint64) bool {
	if m.gas < n {
		return false
	}
	m.gas -= n
	return true
}

// appendMnemonic records one dispatched opcode's name for the disassembly
// log. The invariant that len(asmLog) equals the number of dispatched
// opcodes holds because every handler calls this exactly once, before
// charging gas or mutating state.
func (m *machine) appendMnemonic(s string) {
	m.asmLog = append(m.asmLog, s)
}

// memStore writes b at offset, expanding memory as needed.
func (m *machine) memStore(offset uint64, b []byte) {
	m.memory.set(offset, b)
}

// memLoad32 returns the 32 bytes at offset, zero-padded past the current
// memory length.
func (m *machine) memLoad32(offset uint64) [32]byte {
	var out [32]byte
	copy(out[:], m.memory.get(offset, 32))
	return out
}

// push delegates to the stack and reports false when the stack is already
// at params.StackLimit.
func (m *machine) push(w uint256.Int) bool { return m.stack.push(w) }
