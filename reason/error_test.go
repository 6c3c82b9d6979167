/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package reason

import (
	"errors"
	"strings"
	"testing"

	"dirpx.dev/doption/label"
)

// dialError is a named error type so %T output in assertions is stable.
type dialError struct{}

func (dialError) Error() string { return "dial tcp: connection refused" }

func TestError_String(t *testing.T) {
	tests := []struct {
		name string
		e    *Error
		want string
	}{
		{"empty", NewError(""), "''"},
		{"message", NewError("not found"), "'not found'"},
		{"formatted", Errorf("row %d missing", 7), "'row 7 missing'"},
		{
			"metadata keeps insertion order",
			NewError("bad input").WithMetadata("field", "name").WithMetadata("max", 64),
			"'bad input', Metadata: field: name; max: 64",
		},
		{
			"cause chain",
			NewError("request failed").CausedBy(NewError("db down"), NewError("disk full")),
			"'request failed', Caused by: 'db down' <- 'disk full'",
		},
		{
			"nested causes render recursively",
			NewError("request failed").CausedBy(NewError("db down").CausedBy(NewError("disk full"))),
			"'request failed', Caused by: 'db down', Caused by: 'disk full'",
		},
		{
			"exceptional renders unquoted with type prefix",
			Exceptional(dialError{}),
			"reason.dialError: dial tcp: connection refused",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.String(); got != tt.want {
				t.Fatalf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestError_ImplementsError(t *testing.T) {
	var err error = NewError("boom")
	if err.Error() != "boom" {
		t.Fatalf("Error() = %q, want %q", err.Error(), "boom")
	}
}

func TestExceptional_Unwrap(t *testing.T) {
	root := errors.New("root")
	e := Exceptional(root)

	if !errors.Is(e, root) {
		t.Fatal("errors.Is must see through Exceptional")
	}
	if errors.Unwrap(e) != root {
		t.Fatal("Unwrap must return the wrapped error")
	}
	if e.Exception() != root {
		t.Fatal("Exception must return the wrapped error")
	}
	if NewError("plain").Exception() != nil {
		t.Fatal("plain error must not carry an exception")
	}
}

func TestExceptional_PanicsOnNil(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Fatal("Exceptional(nil) must panic")
		}
	}()
	_ = Exceptional(nil)
}

func TestError_Label(t *testing.T) {
	l := label.MustParse("storage.pg.connect")
	e := NewError("db down").WithLabel(l)

	if e.Label() != l {
		t.Fatalf("Label() = %q, want %q", e.Label(), l)
	}
	if strings.Contains(e.String(), "storage.pg.connect") {
		t.Fatal("label must not leak into String output")
	}
	if NewError("x").Label() != label.Empty {
		t.Fatal("unclassified error must carry label.Empty")
	}
}

func TestError_IsZero(t *testing.T) {
	if !NewError("").IsZero() {
		t.Fatal("empty error must be zero")
	}
	if NewError("x").IsZero() {
		t.Fatal("error with message must not be zero")
	}
	if Exceptional(dialError{}).IsZero() {
		t.Fatal("exceptional error must not be zero")
	}
	if NewError("").WithLabel(label.MustParse("net.dns")).IsZero() {
		t.Fatal("labeled error must not be zero")
	}
}

func TestError_CausedBy_SharedIdentity(t *testing.T) {
	shared := NewError("root cause")
	a := NewError("a").CausedBy(shared)
	b := NewError("b").CausedBy(shared)

	if a.Antecedents()[0] != b.Antecedents()[0] {
		t.Fatal("cause links must preserve identity, not deep copy")
	}
}

func TestError_Print(t *testing.T) {
	chain := NewError("request failed").CausedBy(
		NewError("db down").CausedBy(Exceptional(dialError{})),
	)

	t.Run("default follows first antecedents", func(t *testing.T) {
		want := "request failed <- db down <- reason.dialError: dial tcp: connection refused"
		if got := chain.Print(); got != want {
			t.Fatalf("Print() = %q, want %q", got, want)
		}
	})

	t.Run("depth bounds the walk", func(t *testing.T) {
		want := "request failed <- db down"
		if got := chain.Print(WithDepth(2)); got != want {
			t.Fatalf("Print(WithDepth(2)) = %q, want %q", got, want)
		}
	})

	t.Run("custom separator", func(t *testing.T) {
		want := "request failed | db down"
		if got := chain.Print(WithDepth(2), WithSeparator(" | ")); got != want {
			t.Fatalf("Print = %q, want %q", got, want)
		}
	})

	t.Run("transform sees index and last flag", func(t *testing.T) {
		got := chain.Print(WithTransform(func(msg string, i int, last bool) string {
			if last {
				return "[" + msg + "]"
			}
			if i == 0 {
				return strings.ToUpper(msg)
			}
			return msg
		}))
		want := "REQUEST FAILED <- db down <- [reason.dialError: dial tcp: connection refused]"
		if got != want {
			t.Fatalf("Print with transform = %q, want %q", got, want)
		}
	})

	t.Run("only first antecedent is followed", func(t *testing.T) {
		e := NewError("top").CausedBy(NewError("first"), NewError("second"))
		want := "top <- first"
		if got := e.Print(); got != want {
			t.Fatalf("Print() = %q, want %q", got, want)
		}
	})

	t.Run("self cycle terminates at the cap", func(t *testing.T) {
		e := NewError("loop")
		e.CausedBy(e)
		got := e.Print()
		if n := strings.Count(got, "loop"); n != maxChainDepth {
			t.Fatalf("cyclic Print yielded %d messages, want %d", n, maxChainDepth)
		}
	})
}
