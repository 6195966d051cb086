// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Command rangeledgerctl drives one in-process range-ledger Engine
// from a scripted command file, for manual exercising and demos. It
// is not part of the engine: there is no persistence and no network
// listener beyond the optional debug metrics endpoint.
package main

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/certshare/rangeledger/account"
	"github.com/certshare/rangeledger/fault"
	"github.com/certshare/rangeledger/ledger"
)

var version = "zero" // set by the linker: go build -ldflags "-X main.version=M.N" ./...

func main() {
	defer exitwithstatus.Handler()

	if err := fault.Initialise(); nil != err {
		exitwithstatus.Message("rangeledgerctl: %s", err)
	}
	defer fault.Finalise()

	app := cli.NewApp()
	app.Name = "rangeledgerctl"
	app.Version = version
	app.HideVersion = true
	app.Usage = "drive a range-ledger engine from a scripted command file"

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Value: "rangeledgerctl.conf",
			Usage: "configuration `FILE`",
		},
	}

	app.Action = runScript

	if err := app.Run(os.Args); err != nil {
		exitwithstatus.Message("rangeledgerctl: %s", err)
	}
}

func runScript(c *cli.Context) error {
	var cfg configuration
	if err := parseConfigurationFile(c.String("config"), &cfg); err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	issuer, err := account.FromString(cfg.Issuer)
	if nil != err {
		return fmt.Errorf("issuer: %w", err)
	}

	var sink ledger.EventSink
	if "" != cfg.MetricsAt {
		reg := prometheus.NewRegistry()
		sink = ledger.NewPrometheusEventSink(reg)
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		go http.ListenAndServe(cfg.MetricsAt, nil)
	}

	opts := []ledger.Option{}
	if nil != sink {
		opts = append(opts, ledger.WithEventSink(sink))
	}
	e := ledger.New(issuer, allowOracle{}, opts...)

	f, err := os.Open(cfg.Script)
	if nil != err {
		return fmt.Errorf("script: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if "" == line || strings.HasPrefix(line, "#") {
			continue
		}
		if err := runCommand(c.App.Writer, e, issuer, line); nil != err {
			return fmt.Errorf("%q: %w", line, err)
		}
	}
	return scanner.Err()
}

func runCommand(w io.Writer, e *ledger.Engine, issuer account.Address, line string) error {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "mint":
		owner, err := account.FromString(args[0])
		if nil != err {
			return err
		}
		value, err := strconv.ParseUint(args[1], 10, 64)
		if nil != err {
			return err
		}
		when, tag, err := parseTimeTag(args[2], args[3])
		if nil != err {
			return err
		}
		return e.Mint(issuer, owner, value, when, tag)

	case "burn":
		start, stop, err := parseStartStop(args[0], args[1])
		if nil != err {
			return err
		}
		return e.Burn(issuer, start, stop)

	case "transfer":
		from, to, err := parseFromTo(args[0], args[1])
		if nil != err {
			return err
		}
		value, err := strconv.ParseUint(args[2], 10, 64)
		if nil != err {
			return err
		}
		return e.Transfer(from, to, value)

	case "transfer-range":
		from, to, err := parseFromTo(args[0], args[1])
		if nil != err {
			return err
		}
		start, stop, err := parseStartStop(args[2], args[3])
		if nil != err {
			return err
		}
		return e.TransferRange(from, to, start, stop)

	case "modify-range":
		pointer, err := strconv.ParseUint(args[0], 10, 64)
		if nil != err {
			return err
		}
		when, tag, err := parseTimeTag(args[1], args[2])
		if nil != err {
			return err
		}
		return e.ModifyRange(issuer, ledger.Index(pointer), when, tag)

	case "modify-ranges":
		start, stop, err := parseStartStop(args[0], args[1])
		if nil != err {
			return err
		}
		when, tag, err := parseTimeTag(args[2], args[3])
		if nil != err {
			return err
		}
		return e.ModifyRanges(issuer, start, stop, when, tag)

	case "show":
		owner, err := account.FromString(args[0])
		if nil != err {
			return err
		}
		fmt.Fprintf(w, "%s balance=%d ranges=%v\n", owner, e.BalanceOf(owner), e.RangesOf(owner))
		return nil

	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func parseFromTo(fromStr, toStr string) (account.Address, account.Address, error) {
	from, err := account.FromString(fromStr)
	if nil != err {
		return account.Zero, account.Zero, err
	}
	to, err := account.FromString(toStr)
	if nil != err {
		return account.Zero, account.Zero, err
	}
	return from, to, nil
}

func parseStartStop(startStr, stopStr string) (ledger.Index, ledger.Index, error) {
	start, err := strconv.ParseUint(startStr, 10, 64)
	if nil != err {
		return 0, 0, err
	}
	stop, err := strconv.ParseUint(stopStr, 10, 64)
	if nil != err {
		return 0, 0, err
	}
	return ledger.Index(start), ledger.Index(stop), nil
}

func parseTimeTag(whenStr, tagStr string) (uint32, ledger.Tag, error) {
	when, err := strconv.ParseUint(whenStr, 10, 32)
	if nil != err {
		return 0, ledger.ZeroTag, err
	}
	raw, err := strconv.ParseUint(strings.TrimPrefix(tagStr, "0x"), 16, 16)
	if nil != err {
		return 0, ledger.ZeroTag, err
	}
	return uint32(when), ledger.Tag{byte(raw >> 8), byte(raw)}, nil
}
