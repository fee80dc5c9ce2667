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

	"github.com/bitmark-inc/parkingspot/auth"
)

type metadata struct {
	connect     string
	credentials []auth.Credential
	verbose     bool
	e           io.Writer
	w           io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "parkingspot-cli"
	app.Usage = "send actions to a parkingspotd"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:   "connect, c",
			Value:  "127.0.0.1:2130",
			Usage:  " parkingspotd host/IP and port, `HOST:PORT`",
			EnvVar: "PARKINGSPOT_CONNECT",
		},
		cli.StringSliceFlag{
			Name:   "account, a",
			Usage:  " signing `ACCOUNT`, repeat for multiple signatures",
			EnvVar: "PARKINGSPOT_ACCOUNT",
		},
		cli.StringSliceFlag{
			Name:   "key, k",
			Usage:  " `KEY` for the matching --account",
			EnvVar: "PARKINGSPOT_KEY",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "insert",
			Usage:     "create a spot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				userFlag,
				spotFlag,
				zoneFlag,
				cli.StringFlag{
					Name:  "owner, o",
					Value: "",
					Usage: "*spot owner `ACCOUNT`",
				},
				submittedFlag,
			},
			Action: runInsert,
		},
		{
			Name:      "erase",
			Usage:     "remove a spot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				userFlag,
				spotFlag,
				zoneFlag,
				submittedFlag,
			},
			Action: runErase,
		},
		{
			Name:      "modavail",
			Usage:     "pay for a time slot on an available spot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				userFlag,
				spotFlag,
				zoneFlag,
				cli.StringFlag{
					Name:  "quantity, q",
					Value: "",
					Usage: "*payment `AMOUNT SYMBOL` e.g. \"1.0000 VTP\"",
				},
				cli.StringFlag{
					Name:  "time, t",
					Value: "",
					Usage: " RFC3339 `TIME` inside the slot, default is now",
				},
				cli.StringFlag{
					Name:  "buyer, b",
					Value: "",
					Usage: "*buyer `ACCOUNT`",
				},
				cli.StringFlag{
					Name:  "seller, s",
					Value: "",
					Usage: "*seller `ACCOUNT`",
				},
				submittedFlag,
			},
			Action: runModAvail,
		},
		{
			Name:      "notify",
			Usage:     "relay a message to a user (contract account only)",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				userFlag,
				cli.StringFlag{
					Name:  "message, m",
					Value: "",
					Usage: "*message `TEXT`",
				},
				submittedFlag,
			},
			Action: runNotify,
		},
		{
			Name:      "spot",
			Usage:     "display a spot",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				spotFlag,
			},
			Action: runSpot,
		},
		{
			Name:      "spots",
			Usage:     "list spots in id order",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.Uint64Flag{
					Name:  "start, s",
					Value: 0,
					Usage: " first spot `ID`",
				},
				cli.IntFlag{
					Name:  "count, c",
					Value: 20,
					Usage: " maximum records to output `COUNT`",
				},
				cli.StringFlag{
					Name:  "zone, z",
					Value: "",
					Usage: " only spots in zone `ID`",
				},
			},
			Action: runSpots,
		},
		{
			Name:   "info",
			Usage:  "display parkingspotd status",
			Action: runInfo,
		},
		{
			Name:      "timecode",
			Usage:     "convert between times and time codes",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "time, t",
					Value: "",
					Usage: " RFC3339 `TIME`, default is now",
				},
				cli.Uint64Flag{
					Name:  "code, c",
					Value: 0,
					Usage: " time `CODE` to convert back to a time",
				},
			},
			Action: runTimeCode,
		},
		{
			Name:  "version",
			Usage: "display parkingspot-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		verbose := c.GlobalBool("verbose")

		credentials, err := makeCredentials(c.GlobalStringSlice("account"), c.GlobalStringSlice("key"))
		if nil != err {
			return err
		}

		connect := c.GlobalString("connect")
		if verbose {
			fmt.Fprintf(e, "connect: %s\n", connect)
			for _, cr := range credentials {
				fmt.Fprintf(e, "signer: %s\n", cr.Account)
			}
		}

		c.App.Metadata["config"] = &metadata{
			connect:     connect,
			credentials: credentials,
			verbose:     verbose,
			e:           e,
			w:           c.App.Writer,
		}
		return nil
	}

	return app
}

var (
	userFlag = cli.StringFlag{
		Name:  "user, u",
		Value: "",
		Usage: "*acting `ACCOUNT`",
	}
	spotFlag = cli.Uint64Flag{
		Name:  "spot, i",
		Value: 0,
		Usage: "*spot `ID`",
	}
	zoneFlag = cli.Uint64Flag{
		Name:  "zone, z",
		Value: 0,
		Usage: " zone `ID`",
	}
	submittedFlag = cli.StringFlag{
		Name:  "submitted",
		Value: "",
		Usage: " RFC3339 submission `TIME`, default is the server's clock",
	}
)
