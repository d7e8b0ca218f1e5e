// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/kittyd/chain"
)

type metadata struct {
	connect string
	useTLS  bool
	testnet bool
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {

	app := cli.NewApp()
	app.Name = "kitty-cli"
	app.Usage = "create, breed and transfer kitties on a kittyd node"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "network, n",
			Value: chain.Local,
			Usage: " connect to kittyd `NETWORK` [bitmark|testing|local]",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " kittyd host/IP and port, `HOST:PORT`",
			EnvVar: "KITTY_CONNECT",
		},
		cli.BoolFlag{
			Name:  "plain, P",
			Usage: " connect without TLS",
		},
		cli.StringFlag{
			Name:   "seed, s",
			Value:  "",
			Usage:  " identity `SEED` in base58",
			EnvVar: "KITTY_SEED",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "generate",
			Usage:     "generate a new seed and key pair",
			ArgsUsage: "\n   (* = required)",
			Flags:     []cli.Flag{},
			Action:    runGenerate,
		},
		{
			Name:      "create",
			Usage:     "create a new kitty with a random genome",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "offline, o",
					Usage: " only output the signed record for a later submit",
				},
			},
			Action: runCreate,
		},
		{
			Name:      "breed",
			Usage:     "breed two kitties into a new one",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "parent1",
					Usage: "*first parent `ID`",
				},
				cli.UintFlag{
					Name:  "parent2",
					Usage: "*second parent `ID`",
				},
				cli.BoolFlag{
					Name:  "offline, o",
					Usage: " only output the signed record for a later submit",
				},
			},
			Action: runBreed,
		},
		{
			Name:      "transfer",
			Usage:     "transfer a kitty to another account",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "slot, s",
					Usage: "*position of the kitty in the owned list `SLOT`",
				},
				cli.StringFlag{
					Name:  "receiver, r",
					Value: "",
					Usage: "*account or alias to receive the kitty `ACCOUNT`",
				},
				cli.BoolFlag{
					Name:  "offline, o",
					Usage: " only output the signed record for a later submit",
				},
			},
			Action: runTransfer,
		},
		{
			Name:      "submit",
			Usage:     "submit a record signed offline",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "packed, p",
					Value: "",
					Usage: "*signed record `HEX`",
				},
			},
			Action: runSubmit,
		},
		{
			Name:      "kitty",
			Usage:     "display a kitty",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.UintFlag{
					Name:  "id, i",
					Usage: "*kitty `ID`",
				},
			},
			Action: runKitty,
		},
		{
			Name:      "owned",
			Usage:     "list kitties owned",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: " `ACCOUNT` default is the seed's account",
				},
				cli.UintFlag{
					Name:  "start, s",
					Value: 0,
					Usage: " start at `SLOT`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
			},
			Action: runOwned,
		},
		{
			Name:   "info",
			Usage:  "display kittyd status",
			Action: runInfo,
		},
		{
			Name:  "version",
			Usage: "display kitty-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		// only want one of these
		network := c.GlobalString("network")
		switch network {
		case "bitmark", "live":
			network = chain.Bitmark
		case "testing", "test":
			network = chain.Testing
		case "local", "regression":
			network = chain.Local
		default:
			return fmt.Errorf("network: %q can only be bitmark/testing/local", network)
		}

		c.App.Metadata = map[string]interface{}{
			"config": &metadata{
				connect: c.GlobalString("connect"),
				useTLS:  !c.GlobalBool("plain"),
				testnet: chain.IsTesting(network),
				verbose: c.GlobalBool("verbose"),
				e:       c.App.ErrWriter,
				w:       c.App.Writer,
			},
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}
