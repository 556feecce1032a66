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

// Package types holds the data shapes the rest of the module builds an
// Environment from: a transaction envelope trimmed to what a single-
// invocation interpreter needs.
package types

import (
	"github.com/berith-chain/evm/common"
	"github.com/berith-chain/evm/core/vm"
)

// Transaction carries the fields an Environment is built from: sender,
// contract, gas price, attached value, code, and input. There is
// deliberately no nonce, signature, or RLP/JSON envelope — those belong to
// a chain, which this interpreter has no concept of.
type Transaction struct {
	From     common.Address
	To       common.Address
	GasPrice uint64
	Value    uint64
	Code     []byte
	Input    []byte
}

// NewTransaction builds a Transaction ready to be turned into an
// Environment via ToEnvironment.
func NewTransaction(from, to common.Address, gasPrice, value uint64, code, input []byte) *Transaction {
	return &Transaction{
		From:     from,
		To:       to,
		GasPrice: gasPrice,
		Value:    value,
		Code:     code,
		Input:    input,
	}
}

// ToEnvironment builds the vm.Environment a single invocation runs against.
func (tx *Transaction) ToEnvironment() *vm.Environment {
	env := vm.NewEnvironment(tx.To, tx.From, tx.GasPrice, tx.Value)
	env.SetCode(tx.Code)
	env.SetInput(tx.Input)
	return env
}
