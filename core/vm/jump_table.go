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

import "github.com/berith-chain/evm/params"

// executionFunc is the shape every opcode handler has: it receives the
// dispatcher's pc (already advanced past the opcode byte, mutable so
// PUSH/JUMP/JUMPI can move it further) and the machine, plus the external
// account storage SLOAD/SSTORE touch.
type executionFunc func(pc *uint64, m *machine, storage Storage) error

// operation is one jump-table entry: an execute/minStack/maxStack triple,
// trimmed to what this core's fixed, fork-less opcode set needs.
type operation struct {
	execute  executionFunc
	minStack int
	maxStack int
}

// minStack/maxStack mirror go-ethereum's stack-validation helpers: an
// operation that pops `pops` words and pushes `push` needs at least `pops`
// words present, and must leave room for the net growth without breaching
// params.StackLimit.
func minStack(pops, push int) int {
	return pops
}

func maxStack(pops, push int) int {
	return params.StackLimit + pops - push
}

// newJumpTable builds the single static 256-entry dispatch table this core
// uses. There is one fixed opcode set with no hard-fork axis, so
// construction is a flat literal instead of a per-fork activation pipeline
// — see DESIGN.md for why that machinery isn't reproduced.
func newJumpTable() [256]operation {
	var tbl [256]operation

	tbl[STOP] = operation{execute: opStop, minStack: minStack(0, 0), maxStack: maxStack(0, 0)}
	tbl[ADD] = operation{execute: opAdd, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[MUL] = operation{execute: opMul, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[SUB] = operation{execute: opSub, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[DIV] = operation{execute: opDiv, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[EXP] = operation{execute: opExp, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[LT] = operation{execute: opLt, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[GT] = operation{execute: opGt, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[EQ] = operation{execute: opEq, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[ISZERO] = operation{execute: opIsZero, minStack: minStack(1, 1), maxStack: maxStack(1, 1)}
	tbl[AND] = operation{execute: opAnd, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[OR] = operation{execute: opOr, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[XOR] = operation{execute: opXor, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[NOT] = operation{execute: opNot, minStack: minStack(1, 1), maxStack: maxStack(1, 1)}
	tbl[BYTE] = operation{execute: opByte, minStack: minStack(2, 1), maxStack: maxStack(2, 1)}
	tbl[ADDRESS] = operation{execute: opAddress, minStack: minStack(0, 1), maxStack: maxStack(0, 1)}
	tbl[CALLER] = operation{execute: opCaller, minStack: minStack(0, 1), maxStack: maxStack(0, 1)}
	tbl[CALLDATALOAD] = operation{execute: opCallDataLoad, minStack: minStack(1, 1), maxStack: maxStack(1, 1)}
	tbl[CALLDATASIZE] = operation{execute: opCallDataSize, minStack: minStack(0, 1), maxStack: maxStack(0, 1)}
	tbl[CODECOPY] = operation{execute: opCodeCopy, minStack: minStack(3, 0), maxStack: maxStack(3, 0)}
	tbl[MLOAD] = operation{execute: opMLoad, minStack: minStack(1, 1), maxStack: maxStack(1, 1)}
	tbl[MSTORE] = operation{execute: opMStore, minStack: minStack(2, 0), maxStack: maxStack(2, 0)}
	tbl[SLOAD] = operation{execute: opSLoad, minStack: minStack(1, 1), maxStack: maxStack(1, 1)}
	tbl[SSTORE] = operation{execute: opSStore, minStack: minStack(2, 0), maxStack: maxStack(2, 0)}
	tbl[JUMP] = operation{execute: opJump, minStack: minStack(1, 0), maxStack: maxStack(1, 0)}
	tbl[JUMPI] = operation{execute: opJumpi, minStack: minStack(2, 0), maxStack: maxStack(2, 0)}
	tbl[JUMPDEST] = operation{execute: opJumpdest, minStack: minStack(0, 0), maxStack: maxStack(0, 0)}
	tbl[RETURN] = operation{execute: opReturn, minStack: minStack(2, 0), maxStack: maxStack(2, 0)}

	for i := 0; i < 32; i++ {
		tbl[int(PUSH1)+i] = operation{execute: opPush, minStack: minStack(0, 1), maxStack: maxStack(0, 1)}
	}
	for i := 0; i < 16; i++ {
		depth := i // DUP(i+1) duplicates the element i deep (0-indexed)
		tbl[int(DUP1)+i] = operation{
			execute:  makeDup(depth),
			minStack: minStack(depth+1, depth+2),
			maxStack: maxStack(depth+1, depth+2),
		}
	}
	for i := 0; i < 16; i++ {
		n := i + 1 // SWAPi swaps top with the element n deep
		tbl[int(SWAP1)+i] = operation{
			execute:  makeSwap(n),
			minStack: minStack(n+1, n+1),
			maxStack: maxStack(n+1, n+1),
		}
	}

	for op, name := range stubOpcodeNames {
		tbl[op] = operation{execute: opNotImplemented(name), minStack: 0, maxStack: params.StackLimit}
	}

	return tbl
}

// stubOpcodeNames lists every opcode this core recognizes but does not
// execute. Reproducing the full set here means an unsupported opcode still
// gets its mnemonic appended before aborting with NotImplemented, rather
// than falling through to UnknownOpcode.
var stubOpcodeNames = map[OpCode]string{
	SDIV: "SDIV", MOD: "MOD", SMOD: "SMOD", ADDMOD: "ADDMOD", MULMOD: "MULMOD",
	SLT: "SLT", SGT: "SGT", SHA3: "SHA3",
	BALANCE: "BALANCE", ORIGIN: "ORIGIN", CALLVALUE: "CALLVALUE",
	CALLDATACOPY: "CALLDATACOPY", CODESIZE: "CODESIZE", GASPRICE: "GASPRICE",
	EXTCODESIZE: "EXTCODESIZE", EXTCODECOPY: "EXTCODECOPY",
	RETURNDATASIZE: "RETURNDATASIZE", RETURNDATACOPY: "RETURNDATACOPY",
	EXTCODEHASH: "EXTCODEHASH", BLOCKHASH: "BLOCKHASH", COINBASE: "COINBASE",
	TIMESTAMP: "TIMESTAMP", NUMBER: "NUMBER", DIFFICULTY: "DIFFICULTY",
	GASLIMIT: "GASLIMIT", POP: "POP",
	LOG0: "LOG0", LOG1: "LOG1", LOG2: "LOG2", LOG3: "LOG3", LOG4: "LOG4",
	CREATE: "CREATE", CALL: "CALL", CALLCODE: "CALLCODE",
	DELEGATECALL: "DELEGATECALL", CREATE2: "CREATE2", STATICCALL: "STATICCALL",
	REVERT: "REVERT", SELFDESTRUCT: "SELFDESTRUCT",
}
