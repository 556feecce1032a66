// Copyright 2019 The go-ethereum Authors
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

// Package common holds the address/byte utilities the interpreter core
// consumes as pure functions but does not itself define the semantics of.
package common

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const (
	// AddressLength is the expected length of the address, in bytes.
	AddressLength = 20
	// HashLength is the expected length of the hash, in bytes.
	HashLength = 32
)

// Address represents the 20-byte address of an Ethereum account.
type Address [AddressLength]byte

// BytesToAddress returns Address with value b. If b is larger than
// AddressLength, b is cropped from the left.
func BytesToAddress(b []byte) Address {
	var a Address
	a.setBytes(b)
	return a
}

// HexToAddress returns Address with byte values of s, accepting an optional
// "0x" prefix.
func HexToAddress(s string) Address {
	b, _ := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	return BytesToAddress(b)
}

func (a *Address) setBytes(b []byte) {
	if len(b) > len(a) {
		b = b[len(b)-AddressLength:]
	}
	copy(a[AddressLength-len(b):], b)
}

// Bytes returns the raw 20 bytes of the address.
func (a Address) Bytes() []byte { return a[:] }

// Hex returns a "0x"-prefixed hex string representation.
func (a Address) Hex() string { return fmt.Sprintf("0x%x", a[:]) }

func (a Address) String() string { return a.Hex() }

// Hash represents a 32-byte word; used here only for the byte-conversion
// boundary (e.g. log topics in a fuller implementation), not on the EVM
// stack — stack words are uint256.Int.
type Hash [HashLength]byte

// BytesToHash returns Hash with value b, cropped from the left if too long.
func BytesToHash(b []byte) Hash {
	var h Hash
	h.setBytes(b)
	return h
}

func (h *Hash) setBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-HashLength:]
	}
	copy(h[HashLength-len(b):], b)
}

func (h Hash) Bytes() []byte { return h[:] }
func (h Hash) Hex() string   { return fmt.Sprintf("0x%x", h[:]) }
func (h Hash) String() string { return h.Hex() }

// FromHex decodes an even-length hex string (with or without a "0x" prefix)
// into a byte slice — the boundary function CLI/HTTP wrappers use to turn
// code/calldata hex strings into byte buffers. Each pair of hex digits is
// one byte.
func FromHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(s, "0x")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("common: hex string of odd length %d", len(s))
	}
	return hex.DecodeString(s)
}

// ToHex renders b as a lowercase "0x"-prefixed hex string.
func ToHex(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}
