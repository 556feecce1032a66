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

// Package api exposes a single debug HTTP endpoint that runs one scenario
// per request and returns its trace as JSON, using httprouter-based handler
// registration trimmed to the one route this module needs. CORS is wide
// open via rs/cors, suiting a debug surface rather than a production API.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"

	"github.com/berith-chain/evm/common"
	"github.com/berith-chain/evm/core/account"
	"github.com/berith-chain/evm/core/types"
	"github.com/berith-chain/evm/core/vm"
	"github.com/berith-chain/evm/internal/evmlog"
)

var apiLog = evmlog.Root().New("pkg", "api")

// executeRequest is the JSON body POST /execute expects; field names match
// the CLI's TOML scenario shape so either transport can share a sample.
type executeRequest struct {
	Code     string `json:"code"`
	Input    string `json:"input"`
	Address  string `json:"address"`
	Sender   string `json:"sender"`
	GasPrice uint64 `json:"gasPrice"`
	Value    uint64 `json:"value"`
}

type executeResponse struct {
	Ok         bool     `json:"ok"`
	Returns    string   `json:"returns,omitempty"`
	AsmLog     []string `json:"asmLog"`
	PC         uint64   `json:"pc"`
	Gas        uint64   `json:"gas"`
	StackTop   string   `json:"stackTop,omitempty"`
	StackDepth int      `json:"stackDepth"`
	Reason     string   `json:"reason,omitempty"`
}

// NewHandler builds the CORS-wrapped httprouter handler serving /execute.
func NewHandler() http.Handler {
	router := httprouter.New()
	router.POST("/execute", handleExecute)
	return cors.Default().Handler(router)
}

func handleExecute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apiLog.Warn("malformed request body", "err", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	code, err := common.FromHex(req.Code)
	if err != nil {
		http.Error(w, "code: "+err.Error(), http.StatusBadRequest)
		return
	}
	input, err := common.FromHex(req.Input)
	if err != nil {
		http.Error(w, "input: "+err.Error(), http.StatusBadRequest)
		return
	}
	gasPrice := req.GasPrice
	if gasPrice == 0 {
		gasPrice = 1
	}

	tx := types.NewTransaction(
		common.HexToAddress(req.Sender),
		common.HexToAddress(req.Address),
		gasPrice,
		req.Value,
		code,
		input,
	)

	result := vm.Run(tx.ToEnvironment(), account.NewMemoryStorage())

	resp := executeResponse{
		Ok:         result.Ok,
		AsmLog:     result.Log,
		PC:         result.PC,
		Gas:        result.Gas,
		StackTop:   result.StackTop.Hex(),
		StackDepth: result.StackDepth,
	}
	if result.Ok {
		resp.Returns = common.ToHex(result.Returns)
	} else {
		resp.Reason = result.Reason.String()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		apiLog.Error("encoding response", "err", err)
	}
}
