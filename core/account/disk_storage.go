// Copyright 2016 The go-ethereum Authors
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
	"github.com/VictoriaMetrics/fastcache"
	lru "github.com/hashicorp/golang-lru"
	"github.com/holiman/uint256"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/berith-chain/evm/common"
	"github.com/berith-chain/evm/internal/evmlog"
)

// CachedDiskStorage is a persistent Storage backend scoped to one contract
// address, layering a hot-key LRU and a byte-level read cache in front of a
// goleveldb handle — the same two-tier shape go-ethereum's trie database
// puts in front of its on-disk key/value store. Retrieve order: LRU (decoded
// values, cheap to reuse across many SLOADs of the same key) -> fastcache
// (encoded 32-byte values, survives LRU eviction without a disk read) ->
// goleveldb (source of truth).
type CachedDiskStorage struct {
	addr common.Address
	db   *leveldb.DB

	hot   *lru.Cache      // key -> uint256.Int, decoded hot keys
	bytes *fastcache.Cache // encoded-key -> 32-byte encoded value

	log *evmlog.Logger
}

// NewCachedDiskStorage opens (or creates) a goleveldb database at dir and
// wraps it with the cache stack described above. hotKeys bounds the LRU;
// byteCacheSize bounds the fastcache in bytes.
func NewCachedDiskStorage(dir string, addr common.Address, hotKeys, byteCacheSize int) (*CachedDiskStorage, error) {
	db, err := leveldb.OpenFile(dir, nil)
	if err != nil {
		return nil, err
	}
	hot, err := lru.New(hotKeys)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &CachedDiskStorage{
		addr:  addr,
		db:    db,
		hot:   hot,
		bytes: fastcache.New(byteCacheSize),
		log:   evmlog.New("component", "account.CachedDiskStorage"),
	}, nil
}

// Close releases the underlying goleveldb handle.
func (s *CachedDiskStorage) Close() error { return s.db.Close() }

func (s *CachedDiskStorage) dbKey(key uint256.Int) []byte {
	kb := key.Bytes32()
	out := make([]byte, 0, len(s.addr)+len(kb))
	out = append(out, s.addr.Bytes()...)
	out = append(out, kb[:]...)
	return out
}

func (s *CachedDiskStorage) Load(key uint256.Int) uint256.Int {
	if v, ok := s.hot.Get(key); ok {
		return v.(uint256.Int)
	}

	dbKey := s.dbKey(key)
	if enc := s.bytes.Get(nil, dbKey); len(enc) == 32 {
		var v uint256.Int
		v.SetBytes(enc)
		s.hot.Add(key, v)
		return v
	}

	enc, err := s.db.Get(dbKey, nil)
	if err == leveldb.ErrNotFound {
		return uint256.Int{}
	}
	if err != nil {
		s.log.Error("account storage read failed", "addr", s.addr, "err", err)
		return uint256.Int{}
	}

	var v uint256.Int
	v.SetBytes(enc)
	s.bytes.Set(dbKey, enc)
	s.hot.Add(key, v)
	return v
}

func (s *CachedDiskStorage) Store(key, value uint256.Int) {
	dbKey := s.dbKey(key)
	enc := value.Bytes32()

	if err := s.db.Put(dbKey, enc[:], nil); err != nil {
		s.log.Error("account storage write failed", "addr", s.addr, "err", err)
		return
	}
	s.bytes.Set(dbKey, enc[:])
	s.hot.Add(key, value)
}
