// Copyright 2018 The go-ethereum Authors
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

package executor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/berith-chain/evm/common"
	"github.com/berith-chain/evm/core/account"
	"github.com/berith-chain/evm/core/vm"
)

func TestPoolRunsIndependentJobs(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	// ADD(3,4) for every job; independent storage per job, so results must
	// not interfere with each other regardless of scheduling order.
	code := []byte{0x60, 0x03, 0x60, 0x04, 0x01}

	const n = 20
	channels := make([]<-chan vm.Result, n)
	for i := 0; i < n; i++ {
		env := vm.NewEnvironment(common.Address{}, common.Address{}, 1, 1000)
		env.SetCode(code)
		channels[i] = pool.Submit(Job{Env: env, Storage: account.NewMemoryStorage()})
	}

	for i := 0; i < n; i++ {
		res := <-channels[i]
		require.True(t, res.Ok)
	}
}
