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

// Memory is the EVM's byte-addressable scratchpad: conceptually infinite,
// zero-initialized, and expands on write. Reads past the current length
// are zero without expanding the buffer; only writes grow it.
type Memory struct {
	store []byte
}

func newMemory() *Memory {
	return &Memory{}
}

func (m *Memory) len() int { return len(m.store) }

// resize grows the buffer to at least n bytes, zero-filling the gap.
func (m *Memory) resize(n uint64) {
	if uint64(len(m.store)) >= n {
		return
	}
	grown := make([]byte, n)
	copy(grown, m.store)
	m.store = grown
}

// set writes b at offset, extending memory as needed so indices
// [0, offset+len(b)) are defined.
func (m *Memory) set(offset uint64, b []byte) {
	if len(b) == 0 {
		return
	}
	m.resize(offset + uint64(len(b)))
	copy(m.store[offset:], b)
}

// get returns n bytes starting at offset, with out-of-range bytes treated
// as zero — it never mutates m.store.
func (m *Memory) get(offset, n uint64) []byte {
	out := make([]byte, n)
	if offset >= uint64(len(m.store)) {
		return out
	}
	end := offset + n
	if end > uint64(len(m.store)) {
		end = uint64(len(m.store))
	}
	copy(out, m.store[offset:end])
	return out
}
