// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// objcheck checks the scenarios in YAML files against the built-in prelude, printing the inferred
// type (or failure) of each expression.
//
//	objcheck [-v] [-color auto|always|never] file.yaml...
//
// Each expression is checked independently. The exit status is 1 if any outcome differs from the
// expected outcome, or 2 if a file cannot be read.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/wdamron/objtype"
	"github.com/wdamron/objtype/ast"
	"github.com/wdamron/objtype/internal/scenario"
	"github.com/wdamron/objtype/types"
)

const (
	colorReset = "\x1b[0m"
	colorRed   = "\x1b[31m"
	colorGreen = "\x1b[32m"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("objcheck", flag.ContinueOnError)
	flags.SetOutput(stderr)
	verbose := flags.Bool("v", false, "log each constraint failure")
	colorMode := flags.String("color", "auto", "colorize output: auto, always, or never")
	if err := flags.Parse(args); err != nil {
		return 2
	}
	if flags.NArg() == 0 {
		fmt.Fprintln(stderr, "usage: objcheck [-v] [-color auto|always|never] file.yaml...")
		return 2
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	color, err := useColor(*colorMode, stdout)
	if err != nil {
		logger.Error("invalid flag", "err", err)
		return 2
	}

	c := objtype.NewChecker(objtype.WithLogger(logger))
	status := 0
	for _, path := range flags.Args() {
		scenarios, err := load(path)
		if err != nil {
			logger.Error("cannot load scenarios", "path", path, "err", err)
			return 2
		}
		logger.Debug("loaded scenarios", "path", path, "count", len(scenarios))

		env := objtype.NewPrelude()
		failed := 0
		for i := range scenarios {
			res := scenario.Run(c, env, &scenarios[i])
			report(stdout, color, res)
			if !res.Passed() {
				failed++
			}
		}
		logger.Info("checked scenarios", "path", path, "count", len(scenarios), "failed", failed)
		if failed > 0 {
			status = 1
		}
	}
	return status
}

func load(path string) ([]scenario.Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return scenario.Load(f)
}

// NO_COLOR convention: https://no-color.org/
func useColor(mode string, out io.Writer) (bool, error) {
	switch mode {
	case "always":
		return true, nil
	case "never":
		return false, nil
	case "auto":
	default:
		return false, fmt.Errorf("unknown color mode %q", mode)
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false, nil
	}
	f, ok := out.(*os.File)
	if !ok {
		return false, nil
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
}

func report(w io.Writer, color bool, res scenario.Result) {
	var sb strings.Builder
	sb.WriteString(ast.ExprString(res.Scenario.Expr.Expr))
	if res.Err != nil {
		sb.WriteString(" failed: ")
		sb.WriteString(res.Err.Error())
	} else {
		sb.WriteString(" :: ")
		sb.WriteString(types.TypeString(res.Type))
	}
	fmt.Fprintln(w, sb.String())

	status, code := "ok", colorGreen
	if !res.Passed() {
		status, code = "FAIL", colorRed
	}
	if color {
		status = code + status + colorReset
	}
	if res.Passed() {
		fmt.Fprintf(w, "%s %s\n\n", status, res.Scenario.Name)
	} else {
		fmt.Fprintf(w, "%s %s (line %d): %s\n\n", status, res.Scenario.Name, res.Scenario.Line, res.Mismatch)
	}
}
