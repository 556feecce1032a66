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

// Package executor fans independent interpreter invocations out across a
// fixed goroutine pool, grounded on miner/worker.go's channel-driven
// goroutine loop and miner/unconfirmed.go's mutex-guarded shared state.
// Each job runs to completion single-threaded, same as the core's own
// one-invocation-per-call-stack invariant; the pool adds no shared mutable
// state between jobs.
package executor

import (
	"runtime"
	"sync"

	"github.com/berith-chain/evm/core/vm"
	"github.com/berith-chain/evm/internal/evmlog"
)

var poolLog = evmlog.Root().New("pkg", "executor")

// Job is one unit of work: an environment paired with the storage backend
// it should run against.
type Job struct {
	Env     *vm.Environment
	Storage vm.Storage
}

// Pool runs Jobs across a fixed number of worker goroutines.
type Pool struct {
	jobs chan jobRequest

	wg     sync.WaitGroup
	closed chan struct{}
	once   sync.Once
}

type jobRequest struct {
	job  Job
	resp chan vm.Result
}

// NewPool starts workers goroutines (runtime.GOMAXPROCS(0) if workers <= 0).
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{
		jobs:   make(chan jobRequest),
		closed: make(chan struct{}),
	}
	for i := 0; i < workers; i++ {
		p.wg.Add(1)
		go p.workLoop(i)
	}
	poolLog.Debug("executor pool started", "workers", workers)
	return p
}

func (p *Pool) workLoop(id int) {
	defer p.wg.Done()
	for {
		select {
		case req := <-p.jobs:
			req.resp <- vm.Run(req.job.Env, req.job.Storage)
		case <-p.closed:
			return
		}
	}
}

// Submit enqueues job and returns a channel that receives its single
// Result. Submit blocks if every worker is busy and the queue (unbuffered)
// has no free receiver — backpressure, not drop, per the pool's contract.
func (p *Pool) Submit(job Job) <-chan vm.Result {
	resp := make(chan vm.Result, 1)
	select {
	case p.jobs <- jobRequest{job: job, resp: resp}:
	case <-p.closed:
		close(resp)
	}
	return resp
}

// Close stops accepting new work and waits for in-flight jobs to finish.
func (p *Pool) Close() {
	p.once.Do(func() { close(p.closed) })
	p.wg.Wait()
}
