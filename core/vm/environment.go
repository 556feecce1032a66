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

	"github.com/berith-chain/evm/common"
)

// Environment is the immutable-after-construction per-invocation context:
// the contract being executed, the caller, the gas price and attached
// value used to derive initial gas, and the code/input byte buffers.
type Environment struct {
	contractAddress common.Address
	sender          common.Address
	gasPrice        uint64
	value           uint64

	code  []byte
	input []byte
}

// NewEnvironment fixes the four scalars construction is responsible for.
// Code and input are installed afterward via SetCode/SetInput.
func NewEnvironment(contractAddress, sender common.Address, gasPrice, value uint64) *Environment {
	return &Environment{
		contractAddress: contractAddress,
		sender:          sender,
		gasPrice:        gasPrice,
		value:           value,
	}
}

// SetCode installs the program to execute. Must be called before Run.
func (e *Environment) SetCode(code []byte) { e.code = code }

// SetInput installs the calldata buffer. Must be called before Run.
func (e *Environment) SetInput(input []byte) { e.input = input }

func (e *Environment) widenContractAddress() uint256.Int {
	var w uint256.Int
	w.SetBytes(e.contractAddress.Bytes())
	return w
}

func (e *Environment) widenSender() uint256.Int {
	var w uint256.Int
	w.SetBytes(e.sender.Bytes())
	return w
}
