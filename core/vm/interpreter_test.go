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
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/berith-chain/evm/common"
	"github.com/berith-chain/evm/core/account"
)

func runCode(t *testing.T, code, input []byte) (Result, *machine) {
	t.Helper()
	env := NewEnvironment(common.Address{}, common.Address{}, 1, 1_000_000)
	env.SetCode(code)
	env.SetInput(input)
	m := newMachine(env)
	storage := account.NewMemoryStorage()

	for {
		if m.pc >= uint64(len(env.code)) {
			return Result{Ok: true, Log: m.asmLog}, m
		}
		op := OpCode(env.code[m.pc])
		entry := jumpTable[op]
		require.NotNil(t, entry.execute, "unrecognized opcode 0x%x", byte(op))
		if m.stack.len() < entry.minStack || m.stack.len() > entry.maxStack {
			return Result{Ok: false, Reason: StackUnderflow, PC: m.pc}, m
		}
		m.pc++
		if err := entry.execute(&m.pc, m, storage); err != nil {
			execErr := err.(*ExecutionError)
			return Result{
				Ok: false, Reason: execErr.Kind, PC: execErr.PC,
				Gas: execErr.Gas, Op: execErr.Op, Log: m.asmLog,
			}, m
		}
		if op == RETURN {
			return Result{Ok: true, Returns: m.returns, Log: m.asmLog}, m
		}
	}
}

func gasConsumed(initial uint64, m *machine) uint64 { return initial - m.gas }

// Scenario 1: ADD. code = 6005 6004 01
func TestScenarioAdd(t *testing.T) {
	code := []byte{0x60, 0x05, 0x60, 0x04, 0x01}
	res, m := runCode(t, code, nil)
	require.True(t, res.Ok)
	require.EqualValues(t, 5, m.pc)
	require.Equal(t, 1, m.stack.len())
	top, _ := m.stack.peek(0)
	require.Equal(t, uint64(9), top.Uint64())
	require.EqualValues(t, 9, gasConsumed(1_000_000, m))
}

// Scenario 2: SUB. code = 6004 6005 03
func TestScenarioSub(t *testing.T) {
	code := []byte{0x60, 0x04, 0x60, 0x05, 0x03}
	res, m := runCode(t, code, nil)
	require.True(t, res.Ok)
	top, _ := m.stack.peek(0)
	require.Equal(t, uint64(1), top.Uint64())
	require.EqualValues(t, 9, gasConsumed(1_000_000, m))
}

// Scenario 3: MSTORE then MLOAD. code = 6005 6004 01 6000 52 6000 51
func TestScenarioMstoreMload(t *testing.T) {
	code := []byte{
		0x60, 0x05, 0x60, 0x04, 0x01,
		0x60, 0x00, 0x52,
		0x60, 0x00, 0x51,
	}
	res, m := runCode(t, code, nil)
	require.True(t, res.Ok)
	top, _ := m.stack.peek(0)
	require.Equal(t, uint64(9), top.Uint64())
	require.EqualValues(t, 24, gasConsumed(1_000_000, m))
	require.Equal(t, byte(0x09), m.memory.store[0x1f])
}

// Scenario 4: CALLDATALOAD + ADD. code = 6000 35 6020 35 01
func TestScenarioCalldataloadAdd(t *testing.T) {
	code := []byte{0x60, 0x00, 0x35, 0x60, 0x20, 0x35, 0x01}
	input := make([]byte, 64)
	input[31] = 0x05
	input[63] = 0x04
	res, m := runCode(t, code, input)
	require.True(t, res.Ok)
	top, _ := m.stack.peek(0)
	require.Equal(t, uint64(9), top.Uint64())
	require.EqualValues(t, 7, m.pc)
	require.EqualValues(t, 15, gasConsumed(1_000_000, m))
}

// Scenario 5: loop via JUMPI. code = 6000 35 5b 6001 90 03 80 6003 57
func TestScenarioJumpiLoop(t *testing.T) {
	code := []byte{
		0x60, 0x00, 0x35,
		0x5b,
		0x60, 0x01, 0x90, 0x03, 0x80, 0x60, 0x03, 0x57,
	}
	input := make([]byte, 32)
	input[31] = 5

	env := NewEnvironment(common.Address{}, common.Address{}, 1, 10_000_000)
	env.SetCode(code)
	env.SetInput(input)
	m := newMachine(env)
	storage := account.NewMemoryStorage()

	// The counter after SUB is 4, 3, 2, 1, 0: JUMPI runs five times and
	// takes the branch on the first four.
	taken, jumpis := 0, 0
	for {
		if m.pc >= uint64(len(env.code)) {
			break
		}
		op := OpCode(env.code[m.pc])
		entry := jumpTable[op]
		require.NotNil(t, entry.execute)
		m.pc++
		before := m.pc
		err := entry.execute(&m.pc, m, storage)
		require.NoError(t, err)
		if op == JUMPI {
			jumpis++
			if m.pc != before {
				taken++
			}
		}
		require.LessOrEqual(t, taken, 4, "loop should converge after 4 taken branches")
	}
	require.Equal(t, 5, jumpis)
	require.Equal(t, 4, taken)
}

// Scenario 6: RETURN. code = 6005 80 600b 6000 39 6000 f3 <5 bytes>
func TestScenarioReturn(t *testing.T) {
	tail := []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee}
	code := append([]byte{
		0x60, 0x05,
		0x80,
		0x60, 0x0b,
		0x60, 0x00,
		0x39,
		0x60, 0x00,
		0xf3,
	}, tail...)
	res, _ := runCode(t, code, nil)
	require.True(t, res.Ok)
	require.Equal(t, tail, res.Returns)
}

func TestDupAlwaysPushesNewTop(t *testing.T) {
	st := newStack()
	st.push(*uint256.NewInt(1))
	st.push(*uint256.NewInt(2))
	st.push(*uint256.NewInt(3))
	require.True(t, st.dup(1)) // dup the element one below top (value 2)
	require.Equal(t, 4, st.len())
	top, _ := st.peek(0)
	require.Equal(t, uint64(2), top.Uint64())
	second, _ := st.peek(1)
	require.Equal(t, uint64(3), second.Uint64(), "dup must not overwrite an existing slot")
}

func TestCallDataLoadZeroPads(t *testing.T) {
	code := []byte{0x60, 0x00, 0x35}
	input := []byte{0xff, 0xff}
	res, m := runCode(t, code, input)
	require.True(t, res.Ok)
	top, _ := m.stack.peek(0)
	var want uint256.Int
	buf := make([]byte, 32)
	buf[0], buf[1] = 0xff, 0xff
	want.SetBytes(buf)
	require.Equal(t, want, top)
}

func TestJumpToNonJumpdestIsFatal(t *testing.T) {
	code := []byte{0x60, 0x03, 0x56, 0x00, 0x00}
	res, _ := runCode(t, code, nil)
	require.False(t, res.Ok)
	require.Equal(t, InvalidJumpDestination, res.Reason)
}

func TestJumpiZeroConditionFallsThrough(t *testing.T) {
	// PUSH1 0 (condition) PUSH1 5 (destination) JUMPI; JUMPDEST at 5.
	code := []byte{0x60, 0x00, 0x60, 0x05, 0x57, 0x5b}
	res, m := runCode(t, code, nil)
	require.True(t, res.Ok)
	require.EqualValues(t, 6, m.pc)
}

func TestByteIndexOutOfRangeIsZero(t *testing.T) {
	code := []byte{0x7f}
	code = append(code, make([]byte, 32)...)
	code[1] = 0xff // high byte of the pushed word, irrelevant here
	code = append(code, 0x60, 0x20, 0x1a) // PUSH1 0x20 (index 32); BYTE
	res, m := runCode(t, code, nil)
	require.True(t, res.Ok)
	top, _ := m.stack.peek(0)
	require.True(t, top.IsZero())
}

func TestPopEmptyStackIsFatal(t *testing.T) {
	code := []byte{0x01} // ADD with nothing pushed
	res, _ := runCode(t, code, nil)
	require.False(t, res.Ok)
	require.Equal(t, StackUnderflow, res.Reason)
}

func TestStubOpcodesReportNotImplemented(t *testing.T) {
	for op := range stubOpcodeNames {
		code := []byte{byte(op)}
		res, _ := runCode(t, code, nil)
		require.False(t, res.Ok)
		require.Equal(t, NotImplemented, res.Reason, "opcode 0x%x", byte(op))
	}
}

func TestSstoreSloadRoundTrip(t *testing.T) {
	// PUSH1 0x2a (value) PUSH1 0x01 (key) SSTORE; PUSH1 0x01 (key) SLOAD
	code := []byte{
		0x60, 0x2a, 0x60, 0x01, 0x55,
		0x60, 0x01, 0x54,
	}
	res, m := runCode(t, code, nil)
	require.True(t, res.Ok)
	top, _ := m.stack.peek(0)
	require.Equal(t, uint64(0x2a), top.Uint64())
}

func TestAsmLogLengthMatchesDispatchCount(t *testing.T) {
	code := []byte{0x60, 0x05, 0x60, 0x04, 0x01}
	_, m := runCode(t, code, nil)
	require.Len(t, m.asmLog, 3) // PUSH1, PUSH1, ADD
}
