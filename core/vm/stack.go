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

// Stack is the EVM operand stack: an ordered sequence of words, top at the
// high end, maximum depth params.StackLimit.
type Stack struct {
	data []uint256.Int
}

func newStack() *Stack {
	return &Stack{data: make([]uint256.Int, 0, 32)}
}

func (st *Stack) len() int { return len(st.data) }

// push appends w. Returns false if depth would exceed params.StackLimit.
func (st *Stack) push(w uint256.Int) bool {
	if len(st.data) >= params.StackLimit {
		return false
	}
	st.data = append(st.data, w)
	return true
}

// pop removes and returns the top word. Returns false on an empty stack.
func (st *Stack) pop() (uint256.Int, bool) {
	n := len(st.data)
	if n == 0 {
		return uint256.Int{}, false
	}
	w := st.data[n-1]
	st.data = st.data[:n-1]
	return w, true
}

// peek returns the word at depth i from the top (0-indexed), without
// removing it. Returns false if depth i doesn't exist.
func (st *Stack) peek(i int) (uint256.Int, bool) {
	n := len(st.data)
	if i < 0 || i >= n {
		return uint256.Int{}, false
	}
	return st.data[n-1-i], true
}

// dup pushes a copy of the element at depth i (0-indexed) from the top.
// Always pushes a new top — it never overwrites an existing slot.
func (st *Stack) dup(i int) bool {
	v, ok := st.peek(i)
	if !ok {
		return false
	}
	return st.push(v)
}

// swap exchanges the top element with the element at depth i (0-indexed
// from the top, counting the top itself as depth 0 — so SWAPi, i in
// 1..16, calls swap(i)). Depth is unchanged; fatal if depth <= i.
func (st *Stack) swap(i int) bool {
	n := len(st.data)
	if i <= 0 || i >= n {
		return false
	}
	st.data[n-1], st.data[n-1-i] = st.data[n-1-i], st.data[n-1]
	return true
}
