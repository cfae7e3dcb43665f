/*
 * chessengine
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package config holds globally available configuration variables, set by
// defaults or overridden by an optional TOML file (§6 "Recognized
// configuration options": depth, time_ms, deterministic_seed, plus the
// ambient knobs every package here reads from Settings).
package config

import (
	"fmt"
	"log"
	"reflect"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/frankkopp/chessengine/internal/util"
)

// ConfFile is the path to the TOML config file, resolved relative to the
// working directory, the executable, or the user's home directory.
var ConfFile = "./config.toml"

// Settings is the global configuration, valid with zero-value defaults
// even before Setup is called.
var Settings conf

var initialized = false

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup loads ConfFile if present, else leaves the package defaults
// (set in each sub-config's init) untouched.
func Setup() {
	if initialized {
		return
	}
	path, err := util.ResolveFile(ConfFile)
	if err != nil {
		log.Println("config file not found, using defaults:", err)
	} else if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config file could not be parsed, using defaults:", err)
	}
	initialized = true
}

// String dumps the current configuration via reflection, for diagnostics.
func (c *conf) String() string {
	var sb strings.Builder
	dump := func(title string, v interface{}) {
		sb.WriteString(title + ":\n")
		s := reflect.ValueOf(v).Elem()
		t := s.Type()
		for i := 0; i < s.NumField(); i++ {
			f := s.Field(i)
			sb.WriteString(fmt.Sprintf("%-2d: %-22s %-6s = %v\n", i, t.Field(i).Name, f.Type(), f.Interface()))
		}
	}
	dump("Log", &c.Log)
	dump("Search", &c.Search)
	dump("Eval", &c.Eval)
	return sb.String()
}
