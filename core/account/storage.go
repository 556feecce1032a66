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

// Package account holds the external collaborator the interpreter core
// consumes but never owns: the persistent per-address key/value store.
// The core only ever sees the Storage interface below; everything else in
// this package is one implementer's choice of backing, included here so
// the module is runnable end to end.
package account

import (
	"sync"

	"github.com/holiman/uint256"
)

// Storage is the two-operation contract SLOAD/SSTORE need: load and
// store, keyed and valued by 256-bit words, with unseen keys reading as
// zero.
type Storage interface {
	Load(key uint256.Int) uint256.Int
	Store(key, value uint256.Int)
}

// MemoryStorage is a plain in-memory map, the default and simplest backend:
// an unseen key reads the zero value, satisfying the contract without any
// explicit initialization step.
type MemoryStorage struct {
	mu   sync.RWMutex
	data map[uint256.Int]uint256.Int
}

// NewMemoryStorage returns an empty, ready-to-use in-memory backend.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[uint256.Int]uint256.Int)}
}

func (s *MemoryStorage) Load(key uint256.Int) uint256.Int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.data[key]
}

func (s *MemoryStorage) Store(key, value uint256.Int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = value
}
