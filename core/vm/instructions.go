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

	"github.com/berith-chain/evm/params"
)

// Every handler below follows the same shape: append the mnemonic, charge
// gas, then mutate stack/memory/storage/pc. Stack operands are named
// top-down, a = pop() first, matching the source interpreter's own
// operand1/operand2 convention.

func popFatal(m *machine, pc uint64, op OpCode) (uint256.Int, error) {
	v, ok := m.stack.pop()
	if !ok {
		return uint256.Int{}, newError(StackUnderflow, op, pc, m.gas)
	}
	return v, nil
}

func chargeFatal(m *machine, cost uint64, pc uint64, op OpCode) error {
	if !m.consumeGas(cost) {
		return newError(GasExhausted, op, pc, m.gas)
	}
	return nil
}

func opStop(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("STOP")
	return chargeFatal(m, params.GasStop, *pc, STOP)
}

func opAdd(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("ADD")
	if err := chargeFatal(m, params.GasAdd, *pc, ADD); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, ADD)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, ADD)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.Add(&a, &b)
	m.push(r)
	return nil
}

func opMul(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("MUL")
	if err := chargeFatal(m, params.GasMul, *pc, MUL); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, MUL)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, MUL)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.Mul(&a, &b)
	m.push(r)
	return nil
}

func opSub(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("SUB")
	if err := chargeFatal(m, params.GasSub, *pc, SUB); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, SUB)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, SUB)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.Sub(&a, &b)
	m.push(r)
	return nil
}

func opDiv(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("DIV")
	if err := chargeFatal(m, params.GasDiv, *pc, DIV); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, DIV)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, DIV)
	if err != nil {
		return err
	}
	var r uint256.Int
	// uint256.Int.Div already returns zero for division by zero, matching
	// the EVM convention.
	r.Div(&a, &b)
	m.push(r)
	return nil
}

func opExp(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("EXP")
	if err := chargeFatal(m, params.GasExp, *pc, EXP); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, EXP)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, EXP)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.Exp(&a, &b)
	m.push(r)
	return nil
}

func boolWord(b bool) uint256.Int {
	if b {
		return *uint256.NewInt(1)
	}
	return uint256.Int{}
}

func opLt(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("LT")
	if err := chargeFatal(m, params.GasLt, *pc, LT); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, LT)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, LT)
	if err != nil {
		return err
	}
	m.push(boolWord(a.Lt(&b)))
	return nil
}

func opGt(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("GT")
	if err := chargeFatal(m, params.GasGt, *pc, GT); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, GT)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, GT)
	if err != nil {
		return err
	}
	m.push(boolWord(a.Gt(&b)))
	return nil
}

func opEq(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("EQ")
	if err := chargeFatal(m, params.GasEq, *pc, EQ); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, EQ)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, EQ)
	if err != nil {
		return err
	}
	m.push(boolWord(a.Eq(&b)))
	return nil
}

func opIsZero(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("ISZERO")
	if err := chargeFatal(m, params.GasIsZero, *pc, ISZERO); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, ISZERO)
	if err != nil {
		return err
	}
	m.push(boolWord(a.IsZero()))
	return nil
}

func opAnd(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("AND")
	if err := chargeFatal(m, params.GasAnd, *pc, AND); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, AND)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, AND)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.And(&a, &b)
	m.push(r)
	return nil
}

func opOr(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("OR")
	if err := chargeFatal(m, params.GasOr, *pc, OR); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, OR)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, OR)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.Or(&a, &b)
	m.push(r)
	return nil
}

func opXor(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("XOR")
	if err := chargeFatal(m, params.GasXor, *pc, XOR); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, XOR)
	if err != nil {
		return err
	}
	b, err := popFatal(m, *pc, XOR)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.Xor(&a, &b)
	m.push(r)
	return nil
}

func opNot(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("NOT")
	if err := chargeFatal(m, params.GasNot, *pc, NOT); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, NOT)
	if err != nil {
		return err
	}
	var r uint256.Int
	r.Not(&a)
	m.push(r)
	return nil
}

// opByte implements BYTE(i, x): byte i of x counting from the
// most-significant end as byte 0, zero if i >= 32.
func opByte(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("BYTE")
	if err := chargeFatal(m, params.GasByte, *pc, BYTE); err != nil {
		return err
	}
	i, err := popFatal(m, *pc, BYTE)
	if err != nil {
		return err
	}
	x, err := popFatal(m, *pc, BYTE)
	if err != nil {
		return err
	}
	// Byte mutates its receiver to the requested byte (zero if i >= 32) and
	// returns it, matching uint256's chained-arithmetic convention.
	x.Byte(&i)
	m.push(x)
	return nil
}

func opAddress(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("ADDRESS")
	if err := chargeFatal(m, params.GasAddress, *pc, ADDRESS); err != nil {
		return err
	}
	m.push(m.env.widenContractAddress())
	return nil
}

func opCaller(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("CALLER")
	if err := chargeFatal(m, params.GasCaller, *pc, CALLER); err != nil {
		return err
	}
	m.push(m.env.widenSender())
	return nil
}

// opCallDataLoad pushes 32 bytes of input starting at index a, zero-padded
// on the right if the calldata is shorter than the requested window.
func opCallDataLoad(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("CALLDATALOAD")
	if err := chargeFatal(m, params.GasCallDataLoad, *pc, CALLDATALOAD); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, CALLDATALOAD)
	if err != nil {
		return err
	}
	start := a.Uint64()
	var buf [32]byte
	if start < uint64(len(m.env.input)) {
		copy(buf[:], m.env.input[start:])
	}
	var r uint256.Int
	r.SetBytes(buf[:])
	m.push(r)
	return nil
}

func opCallDataSize(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("CALLDATASIZE")
	if err := chargeFatal(m, params.GasCallDataSize, *pc, CALLDATASIZE); err != nil {
		return err
	}
	m.push(*uint256.NewInt(uint64(len(m.env.input))))
	return nil
}

// opCodeCopy pops dest, offset, length and copies code[offset:offset+length]
// into memory at dest.
func opCodeCopy(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("CODECOPY")
	if err := chargeFatal(m, params.GasCodeCopy, *pc, CODECOPY); err != nil {
		return err
	}
	dest, err := popFatal(m, *pc, CODECOPY)
	if err != nil {
		return err
	}
	offset, err := popFatal(m, *pc, CODECOPY)
	if err != nil {
		return err
	}
	length, err := popFatal(m, *pc, CODECOPY)
	if err != nil {
		return err
	}

	destOff, off, ln := dest.Uint64(), offset.Uint64(), length.Uint64()
	buf := make([]byte, ln)
	if off < uint64(len(m.env.code)) {
		end := off + ln
		if end > uint64(len(m.env.code)) {
			end = uint64(len(m.env.code))
		}
		copy(buf, m.env.code[off:end])
	}
	m.memStore(destOff, buf)
	return nil
}

func opMLoad(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("MLOAD")
	if err := chargeFatal(m, params.GasMLoad, *pc, MLOAD); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, MLOAD)
	if err != nil {
		return err
	}
	buf := m.memLoad32(a.Uint64())
	var r uint256.Int
	r.SetBytes(buf[:])
	m.push(r)
	return nil
}

func opMStore(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("MSTORE")
	if err := chargeFatal(m, params.GasMStore, *pc, MSTORE); err != nil {
		return err
	}
	addr, err := popFatal(m, *pc, MSTORE)
	if err != nil {
		return err
	}
	val, err := popFatal(m, *pc, MSTORE)
	if err != nil {
		return err
	}
	b := val.Bytes32()
	m.memStore(addr.Uint64(), b[:])
	return nil
}

func opSLoad(pc *uint64, m *machine, storage Storage) error {
	m.appendMnemonic("SLOAD")
	if err := chargeFatal(m, params.GasSLoad, *pc, SLOAD); err != nil {
		return err
	}
	a, err := popFatal(m, *pc, SLOAD)
	if err != nil {
		return err
	}
	m.push(storage.Load(a))
	return nil
}

// opSStore charges params.SstoreSetGas when the key is zero and the value
// being written is nonzero, and params.SstoreResetGas otherwise; the slot's
// current contents do not affect the cost.
// The cost depends on the operands, so they are peeked (not popped) to
// compute it before the charge-then-mutate ordering resumes: mnemonic,
// then gas, then the actual pop/store mutation.
func opSStore(pc *uint64, m *machine, storage Storage) error {
	m.appendMnemonic("SSTORE")
	key, ok := m.stack.peek(0)
	if !ok {
		return newError(StackUnderflow, SSTORE, *pc, m.gas)
	}
	val, ok := m.stack.peek(1)
	if !ok {
		return newError(StackUnderflow, SSTORE, *pc, m.gas)
	}

	cost := params.SstoreResetGas
	if key.IsZero() && !val.IsZero() {
		cost = params.SstoreSetGas
	}
	if err := chargeFatal(m, cost, *pc, SSTORE); err != nil {
		return err
	}

	a, _ := popFatal(m, *pc, SSTORE)
	b, _ := popFatal(m, *pc, SSTORE)
	storage.Store(a, b)
	return nil
}

// opJump pops destination d, requires code[d] == JUMPDEST, and sets
// pc = d+1, a deliberately reproduced quirk kept for observable-gas parity.
func opJump(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("JUMP")
	if err := chargeFatal(m, params.GasJump, *pc, JUMP); err != nil {
		return err
	}
	d, err := popFatal(m, *pc, JUMP)
	if err != nil {
		return err
	}
	dest := d.Uint64()
	if dest >= uint64(len(m.env.code)) || OpCode(m.env.code[dest]) != JUMPDEST {
		return newError(InvalidJumpDestination, JUMP, *pc, m.gas)
	}
	*pc = dest + 1
	return nil
}

func opJumpi(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("JUMPI")
	if err := chargeFatal(m, params.GasJumpi, *pc, JUMPI); err != nil {
		return err
	}
	d, err := popFatal(m, *pc, JUMPI)
	if err != nil {
		return err
	}
	c, err := popFatal(m, *pc, JUMPI)
	if err != nil {
		return err
	}
	dest := d.Uint64()
	if dest >= uint64(len(m.env.code)) || OpCode(m.env.code[dest]) != JUMPDEST {
		return newError(InvalidJumpDestination, JUMPI, *pc, m.gas)
	}
	if !c.IsZero() {
		*pc = dest + 1
	}
	return nil
}

func opJumpdest(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("JUMPDEST")
	return chargeFatal(m, params.GasJumpdest, *pc, JUMPDEST)
}

// opPush reads the k immediate bytes following the opcode (k derived from
// which PUSH variant pc-1 pointed at), big-endian zero-extends them to 32
// bytes, pushes the result, and advances pc past the immediate.
func opPush(pc *uint64, m *machine, _ Storage) error {
	op := OpCode(m.env.code[*pc-1])
	k := int(op-PUSH1) + 1

	start := *pc
	end := start + uint64(k)
	if end > uint64(len(m.env.code)) {
		m.appendMnemonic("PUSH " + hexLower(m.env.code[start:]))
		return newError(MalformedCode, op, *pc, m.gas)
	}
	immediate := m.env.code[start:end]

	m.appendMnemonic("PUSH " + hexLower(immediate))
	if err := chargeFatal(m, params.GasPush, *pc, op); err != nil {
		return err
	}

	var buf [32]byte
	copy(buf[32-k:], immediate)
	var r uint256.Int
	r.SetBytes(buf[:])
	m.push(r)
	*pc = end
	return nil
}

func hexLower(b []byte) string {
	const digits = "0123456789abcdef"
	out := make([]byte, len(b)*2)
	for i, c := range b {
		out[i*2] = digits[c>>4]
		out[i*2+1] = digits[c&0xf]
	}
	return string(out)
}

// makeDup returns the handler for DUPi, where depth = i-1 (0-indexed).
func makeDup(depth int) executionFunc {
	op := OpCode(int(DUP1) + depth)
	return func(pc *uint64, m *machine, _ Storage) error {
		m.appendMnemonic("DUP" + itoa(depth+1))
		if err := chargeFatal(m, params.GasDup, *pc, op); err != nil {
			return err
		}
		if !m.stack.dup(depth) {
			return newError(StackUnderflow, op, *pc, m.gas)
		}
		return nil
	}
}

// makeSwap returns the handler for SWAPi, where n = i (the depth swapped
// with, top counted as depth 0).
func makeSwap(n int) executionFunc {
	op := OpCode(int(SWAP1) + n - 1)
	return func(pc *uint64, m *machine, _ Storage) error {
		m.appendMnemonic("SWAP" + itoa(n))
		if err := chargeFatal(m, params.GasSwap, *pc, op); err != nil {
			return err
		}
		if !m.stack.swap(n) {
			return newError(StackUnderflow, op, *pc, m.gas)
		}
		return nil
	}
}

// opReturn pops offset, length, captures memory[offset:offset+length] as
// the return payload, and halts the transaction. RETURN is opcode 0xf3,
// the byte that makes the dispatcher report halt=true — see DESIGN.md for
// why this core uses 0xf3 rather than 0x3f (EXTCODEHASH).
func opReturn(pc *uint64, m *machine, _ Storage) error {
	m.appendMnemonic("RETURN")
	if err := chargeFatal(m, params.GasReturn, *pc, RETURN); err != nil {
		return err
	}
	offset, err := popFatal(m, *pc, RETURN)
	if err != nil {
		return err
	}
	length, err := popFatal(m, *pc, RETURN)
	if err != nil {
		return err
	}
	m.returns = m.memory.get(offset.Uint64(), length.Uint64())
	return nil
}

// opNotImplemented builds the stub handler for recognized but unsupported
// opcodes: they still record their mnemonic before aborting, so a partial
// disassembly remains observable.
func opNotImplemented(name string) executionFunc {
	return func(pc *uint64, m *machine, _ Storage) error {
		m.appendMnemonic(name)
		return newError(NotImplemented, OpCode(m.env.code[*pc-1]), *pc, m.gas)
	}
}
