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

// ecrecover feeds raw precompile calldata through the ECRECOVER contract and
// prints the recovered signer, if any. It is a debugging aid for comparing
// implementations against reference vectors.
package main

import (
	"fmt"
	"os"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/log"
	"github.com/urfave/cli/v2"

	"github.com/stevencartavia/revm/core/vm"
	"github.com/stevencartavia/revm/params"
)

var (
	inputFlag = &cli.StringFlag{
		Name:     "input",
		Usage:    "Hex-encoded calldata: 32-byte digest, 32-byte v, 32-byte r, 32-byte s",
		Required: true,
	}
	gasFlag = &cli.Uint64Flag{
		Name:  "gas",
		Usage: "Gas supplied to the precompile call",
		Value: params.EcrecoverGas,
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=silent, 1=error, 2=warn, 3=info, 4=debug, 5=detail",
		Value: 3,
	}
)

func main() {
	app := &cli.App{
		Name:   "ecrecover",
		Usage:  "run ECRECOVER calldata through the precompile",
		Flags:  []cli.Flag{inputFlag, gasFlag, verbosityFlag},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	handler := log.NewTerminalHandlerWithLevel(os.Stderr, log.FromLegacyLevel(ctx.Int(verbosityFlag.Name)), false)
	log.SetDefault(log.NewLogger(handler))

	input, err := hexutil.Decode(ctx.String(inputFlag.Name))
	if err != nil {
		return fmt.Errorf("invalid --input: %w", err)
	}
	gas := ctx.Uint64(gasFlag.Name)

	log.Debug("Running precompile", "inputLen", len(input), "gas", gas)
	ret, remaining, err := vm.RunPrecompiledContract(vm.Ecrecover, input, gas)
	if err != nil {
		return err
	}
	if len(ret) == 0 {
		log.Warn("No signer recovered", "gasUsed", gas-remaining)
		return nil
	}
	log.Info("Recovered signer", "address", common.BytesToAddress(ret), "gasUsed", gas-remaining)
	fmt.Println(hexutil.Encode(ret))
	return nil
}
