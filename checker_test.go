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

package objtype_test

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	. "github.com/wdamron/objtype"
	. "github.com/wdamron/objtype/construct"
)

func TestCheckerLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	c := NewChecker(WithLogger(logger))

	if _, err := c.Check(Call(identity(), "id", Var("0")), NewPrelude()); err != nil {
		t.Fatal(err)
	}
	if out := buf.String(); !strings.Contains(out, "msg=checked") || !strings.Contains(out, "type=int") {
		t.Fatalf("unexpected log output: %s", out)
	}

	buf.Reset()
	if _, err := c.Check(Call(Var("0"), "sub", Var("0")), NewPrelude()); err == nil {
		t.Fatalf("expected the check to fail")
	}
	if out := buf.String(); !strings.Contains(out, "check failed") || !strings.Contains(out, "undefined method: sub") {
		t.Fatalf("unexpected log output: %s", out)
	}

	// a nil logger keeps the default:
	if _, err := NewChecker(WithLogger(nil)).Check(Var("0"), NewPrelude()); err != nil {
		t.Fatal(err)
	}
}
