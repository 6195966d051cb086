// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"
)

// configuration - rangeledgerctl's own configuration, loaded from a
// Lua file the same way bitmarkd.conf is: the file is executed as a
// script and its resulting table is mapped onto this struct.
type configuration struct {
	Issuer    string `gluamapper:"issuer"`
	Script    string `gluamapper:"script"`
	MetricsAt string `gluamapper:"metrics_address"`
}

// parseConfigurationFile - read and execute a Lua configuration file
// and map the result onto config.
func parseConfigurationFile(fileName string, config *configuration) error {
	l := lua.NewState()
	defer l.Close()

	l.OpenLibs()

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	l.SetGlobal("arg", arg)

	if err := l.DoFile(fileName); err != nil {
		return err
	}

	mapper := gluamapper.Mapper{Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	}}
	return mapper.Map(l.Get(l.GetTop()).(*lua.LTable), config)
}
