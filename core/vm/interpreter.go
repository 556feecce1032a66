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

	"github.com/berith-chain/evm/internal/evmlog"
)

var interpreterLog = evmlog.Root().New("pkg", "vm")

// Result is the outcome of one Run. PC, Gas, StackTop and StackDepth
// describe the machine's final state regardless of outcome; Returns and
// Op/Reason are meaningful only on their respective branch of Ok.
type Result struct {
	Ok bool

	// Populated when Ok is true: the RETURN payload, or nil if execution
	// fell off the end of the code without an explicit RETURN.
	Returns []byte

	// Populated when Ok is false.
	Reason ErrorKind
	Op     OpCode

	// PC and Gas reflect the machine's state at halt or abort, on every
	// path.
	PC  uint64
	Gas uint64

	// StackTop and StackDepth describe the operand stack at halt or abort.
	// StackTop is the zero word when the stack is empty.
	StackTop   uint256.Int
	StackDepth int

	// Log is the full mnemonic disassembly recorded up to the halt/abort,
	// regardless of outcome.
	Log []string
}

// snapshot builds the PC/Gas/stack portion of a Result common to every
// return path out of Run.
func snapshot(m *machine) (pc, gas uint64, top uint256.Int, depth int) {
	top, _ = m.stack.peek(0)
	return m.pc, m.gas, top, m.stack.len()
}

// jumpTable is built once: there is a single fixed opcode set with no
// hard-fork axis, so there is nothing to rebuild per invocation.
var jumpTable = newJumpTable()

// Run executes env's code against storage until it halts via RETURN, falls
// off the end of the code, or aborts fatally. Gas is derived from env at
// construction (value/gasPrice); there is no gas refund or carry-over
// between invocations.
func Run(env *Environment, storage Storage) Result {
	m := newMachine(env)

	for {
		if m.pc >= uint64(len(env.code)) {
			pc, gas, top, depth := snapshot(m)
			return Result{Ok: true, PC: pc, Gas: gas, StackTop: top, StackDepth: depth, Log: m.asmLog}
		}

		op := OpCode(env.code[m.pc])
		entry := jumpTable[op]
		if entry.execute == nil {
			interpreterLog.Warn("unknown opcode", "op", op, "pc", m.pc, "reason", UnknownOpcode)
			return abort(m, UnknownOpcode, op)
		}
		if m.stack.len() < entry.minStack {
			interpreterLog.Warn("execution aborted", "op", op, "pc", m.pc, "reason", StackUnderflow)
			return abort(m, StackUnderflow, op)
		}
		if m.stack.len() > entry.maxStack {
			interpreterLog.Warn("execution aborted", "op", op, "pc", m.pc, "reason", StackOverflow)
			return abort(m, StackOverflow, op)
		}

		m.pc++
		if err := entry.execute(&m.pc, m, storage); err != nil {
			execErr, ok := err.(*ExecutionError)
			if !ok {
				interpreterLog.Error("unexpected handler error", "op", op, "err", err)
				return abort(m, UnknownOpcode, op)
			}
			interpreterLog.Warn("execution aborted", "op", op, "pc", execErr.PC, "reason", execErr.Kind)
			top, _ := m.stack.peek(0)
			return Result{
				Ok:         false,
				Reason:     execErr.Kind,
				Op:         execErr.Op,
				PC:         execErr.PC,
				Gas:        execErr.Gas,
				StackTop:   top,
				StackDepth: m.stack.len(),
				Log:        m.asmLog,
			}
		}

		if op == RETURN {
			pc, gas, top, depth := snapshot(m)
			return Result{Ok: true, Returns: m.returns, PC: pc, Gas: gas, StackTop: top, StackDepth: depth, Log: m.asmLog}
		}
	}
}

func abort(m *machine, kind ErrorKind, op OpCode) Result {
	pc, gas, top, depth := snapshot(m)
	return Result{
		Ok:         false,
		Reason:     kind,
		Op:         op,
		PC:         pc,
		Gas:        gas,
		StackTop:   top,
		StackDepth: depth,
		Log:        m.asmLog,
	}
}
