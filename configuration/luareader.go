// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"reflect"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/parkingspot/fault"
)

// ParseConfigurationFile - read and execute a Lua files and assign
// the results to a configuration structure
//
// each variable is set as a global string before the file runs
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {
	if err := checkStructPointer(config); nil != err {
		return err
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	// create the global "arg" table
	// arg[0] = config file
	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	for name, value := range variables {
		L.SetGlobal(name, lua.LString(value))
	}

	// execute configuration
	if err := L.DoFile(fileName); err != nil {
		return err
	}

	return mapResult(L, config)
}

// ParseConfigurationString - as ParseConfigurationFile but from a string
func ParseConfigurationString(source string, config interface{}) error {
	if err := checkStructPointer(config); nil != err {
		return err
	}

	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	if err := L.DoString(source); err != nil {
		return err
	}

	return mapResult(L, config)
}

// the chunk must return a table
func mapResult(L *lua.LState, config interface{}) error {
	table, ok := L.Get(L.GetTop()).(*lua.LTable)
	if !ok {
		return fault.MissingParameters
	}

	mapperOption := gluamapper.Option{
		NameFunc: func(s string) string {
			return s
		},
		TagName: "gluamapper",
	}
	mapper := gluamapper.Mapper{Option: mapperOption}
	return mapper.Map(table, config)
}

func checkStructPointer(config interface{}) error {
	// since interface{} is untyped, have to verify type compatibility at run-time
	rv := reflect.ValueOf(config)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fault.InvalidStructPointer
	}
	if rv.Elem().Kind() != reflect.Struct {
		return fault.InvalidStructPointer
	}
	return nil
}
