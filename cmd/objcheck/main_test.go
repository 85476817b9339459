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

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeScenarios(t *testing.T, src string) string {
	path := filepath.Join(t.TempDir(), "scenarios.yaml")
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	path := writeScenarios(t, `
- name: addition
  expr: {call: {object: "0", method: add, arg: "1"}}
  type: int
- name: missing
  expr: {call: {object: "0", method: sub, arg: "1"}}
  expect: missing-method
`)
	var stdout, stderr bytes.Buffer
	if status := run([]string{"-color", "never", path}, &stdout, &stderr); status != 0 {
		t.Fatalf("unexpected status %d: %s", status, stderr.String())
	}
	out := stdout.String()
	for _, expect := range []string{"0.add(1) :: int", "ok addition", "0.sub(1) failed: undefined method: sub", "ok missing"} {
		if !strings.Contains(out, expect) {
			t.Fatalf("expected %q in output:\n%s", expect, out)
		}
	}
	if !strings.Contains(stderr.String(), "checked scenarios") {
		t.Fatalf("expected a summary log: %s", stderr.String())
	}
}

func TestRunFailures(t *testing.T) {
	path := writeScenarios(t, `
- name: wrong
  expr: "0"
  type: bool
- name: right
  expr: "void"
  type: void
`)
	var stdout, stderr bytes.Buffer
	if status := run([]string{"-v", "-color", "always", path}, &stdout, &stderr); status != 1 {
		t.Fatalf("unexpected status %d", status)
	}
	out := stdout.String()
	if !strings.Contains(out, colorRed+"FAIL"+colorReset+" wrong") || !strings.Contains(out, colorGreen+"ok"+colorReset+" right") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(stderr.String(), "loaded scenarios") {
		t.Fatalf("expected debug logs: %s", stderr.String())
	}

	if status := run(nil, &stdout, &stderr); status != 2 {
		t.Fatalf("expected usage status, found %d", status)
	}
	if status := run([]string{filepath.Join(t.TempDir(), "missing.yaml")}, &stdout, &stderr); status != 2 {
		t.Fatalf("expected load failure status, found %d", status)
	}
	if status := run([]string{"-color", "sometimes", path}, &stdout, &stderr); status != 2 {
		t.Fatalf("expected flag failure status, found %d", status)
	}
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	if on, _ := useColor("auto", &buf); on {
		t.Fatalf("expected no color for a buffer")
	}
	t.Setenv("NO_COLOR", "1")
	if on, _ := useColor("auto", os.Stdout); on {
		t.Fatalf("expected NO_COLOR to disable color")
	}
	if on, _ := useColor("always", &buf); !on {
		t.Fatalf("expected color to be forced")
	}
}
