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

// evmrun is a thin CLI wrapper around the interpreter core: it builds one
// Environment from flags or a scenario file, runs it, and prints the
// mnemonic log plus the final outcome. Follows the config loader style
// used elsewhere in this tree (urfave/cli.v1 app, naoina/toml decode with a
// custom field-name convention).
package main

import (
	"fmt"
	"os"
	"reflect"

	"github.com/naoina/toml"
	"gopkg.in/urfave/cli.v1"

	"github.com/berith-chain/evm/common"
	"github.com/berith-chain/evm/core/account"
	"github.com/berith-chain/evm/core/types"
	"github.com/berith-chain/evm/core/vm"
	"github.com/berith-chain/evm/internal/evmlog"
)

var log = evmlog.Root().New("pkg", "evmrun")

// tomlSettings matches TOML keys exactly (case-sensitively) against exported
// Go field names, and treats an unrecognized key as a hard error rather than
// silently ignoring it.
var tomlSettings = toml.Config{
	NormFieldName: func(rt reflect.Type, key string) string { return key },
	FieldToKey:    func(rt reflect.Type, field string) string { return field },
	MissingField: func(rt reflect.Type, field string) error {
		return fmt.Errorf("field %q is not defined in %s", field, rt.String())
	},
}

// scenario is the shape the CLI's --scenario file and flags decode into.
// The HTTP surface decodes into its own request type with the same fields.
type scenario struct {
	Code     string
	Input    string
	Address  string
	Sender   string
	GasPrice uint64
	Value    uint64
}

func (s scenario) toTransaction() (*types.Transaction, error) {
	code, err := common.FromHex(s.Code)
	if err != nil {
		return nil, fmt.Errorf("decoding code: %w", err)
	}
	input, err := common.FromHex(s.Input)
	if err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	gasPrice := s.GasPrice
	if gasPrice == 0 {
		gasPrice = 1
	}
	return types.NewTransaction(
		common.HexToAddress(s.Sender),
		common.HexToAddress(s.Address),
		gasPrice,
		s.Value,
		code,
		input,
	), nil
}

func loadScenario(path string) (scenario, error) {
	var s scenario
	f, err := os.Open(path)
	if err != nil {
		return s, err
	}
	defer f.Close()
	err = tomlSettings.NewDecoder(f).Decode(&s)
	return s, err
}

func run(ctx *cli.Context) error {
	var sc scenario
	var err error

	if path := ctx.String("scenario"); path != "" {
		sc, err = loadScenario(path)
		if err != nil {
			return err
		}
	} else {
		sc = scenario{
			Code:     ctx.String("code"),
			Input:    ctx.String("input"),
			Address:  ctx.String("address"),
			Sender:   ctx.String("sender"),
			GasPrice: ctx.Uint64("gas-price"),
			Value:    ctx.Uint64("value"),
		}
	}

	tx, err := sc.toTransaction()
	if err != nil {
		return err
	}

	storage := account.NewMemoryStorage()
	result := vm.Run(tx.ToEnvironment(), storage)

	for _, line := range result.Log {
		fmt.Println(line)
	}
	if result.Ok {
		fmt.Printf("halted: returns=%s pc=%d gas=%d stack=%s depth=%d\n",
			common.ToHex(result.Returns), result.PC, result.Gas, result.StackTop.Hex(), result.StackDepth)
		return nil
	}
	log.Warn("execution aborted", "reason", result.Reason, "pc", result.PC, "gas", result.Gas)
	fmt.Printf("aborted: reason=%s pc=%d gas=%d op=%s stack=%s depth=%d\n",
		result.Reason, result.PC, result.Gas, result.Op, result.StackTop.Hex(), result.StackDepth)
	return cli.NewExitError("execution aborted", 1)
}

func main() {
	app := cli.NewApp()
	app.Name = "evmrun"
	app.Usage = "run a single EVM-subset invocation and print its trace"
	app.Flags = []cli.Flag{
		cli.StringFlag{Name: "code", Usage: "hex-encoded contract code"},
		cli.StringFlag{Name: "input", Usage: "hex-encoded calldata"},
		cli.StringFlag{Name: "address", Usage: "hex contract address"},
		cli.StringFlag{Name: "sender", Usage: "hex sender address"},
		cli.Uint64Flag{Name: "gas-price", Usage: "gas price (gas = value / gas-price)", Value: 1},
		cli.Uint64Flag{Name: "value", Usage: "attached value"},
		cli.StringFlag{Name: "scenario", Usage: "path to a TOML scenario file"},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
