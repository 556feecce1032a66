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

import "github.com/holiman/uint256"

// Storage is the external collaborator the core depends on for SLOAD/
// SSTORE: only this two-operation shape, never on how it is backed.
// core/account provides the concrete implementations; the core package
// itself imports nothing from it, so any type with this shape — including
// a caller's own in-memory map or trie wrapper — satisfies it.
type Storage interface {
	Load(key uint256.Int) uint256.Int
	Store(key, value uint256.Int)
}
