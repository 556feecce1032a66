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

package account

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"

	"github.com/berith-chain/evm/common"
)

func TestMemoryStorageRoundTrip(t *testing.T) {
	s := NewMemoryStorage()
	key := *uint256.NewInt(7)
	val := *uint256.NewInt(42)

	require.True(t, s.Load(key).IsZero(), "unseen key reads zero")
	s.Store(key, val)
	require.Equal(t, val, s.Load(key))
}

func TestCachedDiskStorageRoundTrip(t *testing.T) {
	dir := t.TempDir()
	addr := common.HexToAddress("0x1111111111111111111111111111111111111111")
	s, err := NewCachedDiskStorage(dir, addr, 128, 1<<20)
	require.NoError(t, err)
	defer s.Close()

	key := *uint256.NewInt(1)
	val := *uint256.NewInt(99)

	require.True(t, s.Load(key).IsZero())
	s.Store(key, val)
	require.Equal(t, val, s.Load(key))

	// A second address scoped to its own database must not see the first's
	// data — CachedDiskStorage keys strictly by (address, key).
	other := common.HexToAddress("0x2222222222222222222222222222222222222222")
	s2, err := NewCachedDiskStorage(t.TempDir(), other, 128, 1<<20)
	require.NoError(t, err)
	defer s2.Close()
	require.True(t, s2.Load(key).IsZero())
}
