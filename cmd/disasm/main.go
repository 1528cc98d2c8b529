// Copyright 2015 The go-ethereum Authors
// This file is part of go-ethereum.
//
// go-ethereum is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// go-ethereum is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with go-ethereum.  If not, see <http://www.gnu.org/licenses/>.

// disasm is a pretty-printer and static validator for EVM bytecode.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/kreator666/EIPs-1/core/asm"
	"github.com/kreator666/EIPs-1/core/vm"
)

var (
	inputFileFlag = &cli.StringFlag{
		Name:  "input",
		Usage: "file containing hex-encoded bytecode (reads stdin if neither this nor an argument is given)",
	}
	validateOnlyFlag = &cli.BoolFlag{
		Name:  "validate-only",
		Usage: "suppress the disassembly, only report the validation verdict",
	}
)

var app = &cli.App{
	Name:      "disasm",
	Usage:     "disassemble and statically validate EVM bytecode",
	ArgsUsage: "[hexcode]",
	Flags: []cli.Flag{
		inputFileFlag,
		validateOnlyFlag,
	},
	Action: disasm,
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func disasm(ctx *cli.Context) error {
	var (
		in  string
		err error
	)
	switch {
	case ctx.Args().Present():
		in = ctx.Args().First()
	case ctx.IsSet(inputFileFlag.Name):
		blob, err := os.ReadFile(ctx.String(inputFileFlag.Name))
		if err != nil {
			return err
		}
		in = string(blob)
	default:
		blob, err := io.ReadAll(os.Stdin)
		if err != nil {
			return err
		}
		in = string(blob)
	}
	in = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(in), "0x"))

	code, err := hex.DecodeString(in)
	if err != nil {
		return fmt.Errorf("invalid hex input: %v", err)
	}
	if !ctx.Bool(validateOnlyFlag.Name) {
		fmt.Printf("%x\n", code)
		if err := asm.PrintDisassembled(in); err != nil {
			return err
		}
	}
	if err := vm.Validate(code); err != nil {
		return cli.Exit(fmt.Sprintf("code rejected: %v", err), 1)
	}
	fmt.Println("code is valid")
	return nil
}
