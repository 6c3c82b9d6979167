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

package doption

import (
	"strconv"
	"testing"

	"dirpx.dev/doption/reason"
	"dirpx.dev/doption/violation"
)

func TestMap(t *testing.T) {
	t.Run("transforms a present payload", func(t *testing.T) {
		got := Map(Some(2), func(v int) string { return strconv.Itoa(v * 10) })
		if !got.Contains("20") {
			t.Fatalf("Map result = %v, want Some(20)", got)
		}
	})

	t.Run("carries the success reason over", func(t *testing.T) {
		src := SomeWith(2, reason.NewSuccess("parsed"))
		got := Map(src, func(v int) int { return v + 1 })
		if s, _ := got.Success(); s.Message() != "parsed" {
			t.Fatalf("success = %v, want the source success", s)
		}
	})

	t.Run("never invokes the mapping on None", func(t *testing.T) {
		original := reason.NewError("gone")
		got := Map(None[int](original), func(int) int {
			t.Fatal("mapping must not run on None")
			return 0
		})
		if e, _ := got.Error(); e != original {
			t.Fatalf("error = %v, want the original", e)
		}
	})

	t.Run("causal rewrite on absence", func(t *testing.T) {
		original := reason.NewError("gone")
		subsequent := reason.NewError("lookup failed")
		got := Map(None[int](original), func(v int) int { return v }, subsequent)
		e, _ := got.Error()
		if e != subsequent {
			t.Fatalf("error = %v, want the subsequent error", e)
		}
		if len(e.Antecedents()) != 1 || e.Antecedents()[0] != original {
			t.Fatal("original error must be the cause of the subsequent one")
		}
	})

	wantViolation(t, violation.NilArgument, func() { Map[int, int](Some(1), nil) })
}

func TestFlatMap(t *testing.T) {
	parse := func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return NoneErr[int](err)
		}
		return Some(n)
	}

	t.Run("flattens a successful mapping", func(t *testing.T) {
		if got := FlatMap(Some("17"), parse); !got.Contains(17) {
			t.Fatalf("FlatMap = %v, want Some(17)", got)
		}
	})

	t.Run("inner failure propagates unchanged without subsequent", func(t *testing.T) {
		got := FlatMap(Some("x"), parse)
		e, ok := got.Error()
		if !ok || e.Exception() == nil {
			t.Fatalf("FlatMap = %v, want the inner exceptional error", got)
		}
	})

	t.Run("inner failure rewrites causally with subsequent", func(t *testing.T) {
		subsequent := reason.NewError("config invalid")
		got := FlatMap(Some("x"), parse, subsequent)
		e, _ := got.Error()
		if e != subsequent {
			t.Fatalf("error = %v, want the subsequent error", e)
		}
		if len(e.Antecedents()) != 1 || e.Antecedents()[0].Exception() == nil {
			t.Fatal("inner error must be linked as the cause")
		}
	})

	t.Run("source absence short-circuits", func(t *testing.T) {
		original := reason.NewError("gone")
		got := FlatMap(None[string](original), func(string) Option[int] {
			t.Fatal("mapping must not run on None")
			return Some(0)
		})
		if e, _ := got.Error(); e != original {
			t.Fatalf("error = %v, want the original", e)
		}
	})

	wantViolation(t, violation.NilArgument, func() { FlatMap[int, int](Some(1), nil) })
}

func TestFlatMapOutcome(t *testing.T) {
	nonEmpty := func(s string) Outcome {
		if s == "" {
			return Unsuccessfulf("empty input")
		}
		return Successful(reason.NewSuccess("checked"))
	}

	if got := FlatMapOutcome(Some("x"), nonEmpty); !got.IsSuccessful() {
		t.Fatalf("FlatMapOutcome = %v, want successful", got)
	}
	if got := FlatMapOutcome(Some(""), nonEmpty); got.IsSuccessful() {
		t.Fatalf("FlatMapOutcome = %v, want unsuccessful", got)
	}

	original := reason.NewError("gone")
	subsequent := reason.NewError("check skipped")
	got := FlatMapOutcome(None[string](original), nonEmpty, subsequent)
	e, _ := got.Error()
	if e != subsequent || len(e.Antecedents()) != 1 || e.Antecedents()[0] != original {
		t.Fatalf("causal rewrite broken: %v", got)
	}

	wantViolation(t, violation.NilArgument, func() { FlatMapOutcome[int](Some(1), nil) })
}

func TestFlatten(t *testing.T) {
	inner := reason.NewError("inner gone")
	outer := reason.NewError("outer gone")

	t.Run("some of some", func(t *testing.T) {
		if got := Flatten(Some(Some(5))); !got.Contains(5) {
			t.Fatalf("Flatten = %v, want Some(5)", got)
		}
	})

	t.Run("some of none keeps the inner error", func(t *testing.T) {
		got := Flatten(Some(None[int](inner)))
		if e, _ := got.Error(); e != inner {
			t.Fatalf("error = %v, want the inner error", e)
		}
	})

	t.Run("outer none keeps the outer error", func(t *testing.T) {
		got := Flatten(None[Option[int]](outer))
		if e, _ := got.Error(); e != outer {
			t.Fatalf("error = %v, want the outer error", e)
		}
	})
}

func TestMatchValue(t *testing.T) {
	got := Match(Some(2),
		func(v int, _ *reason.Success) string { return strconv.Itoa(v) },
		func(*reason.Error) string { return "none" },
	)
	if got != "2" {
		t.Fatalf("Match = %q, want 2", got)
	}

	got = Match(Nonef[int]("gone"),
		func(int, *reason.Success) string { return "some" },
		func(e *reason.Error) string { return e.Message() },
	)
	if got != "gone" {
		t.Fatalf("Match = %q, want gone", got)
	}

	wantViolation(t, violation.NilArgument, func() {
		Match[int, int](Some(1), nil, func(*reason.Error) int { return 0 })
	})
}

// End-to-end composition scenarios.
func TestScenario_Chains(t *testing.T) {
	t.Run("map then unwrap", func(t *testing.T) {
		got := Map(Some(1), func(x int) int { return x + 1 }).ValueOr(-1)
		if got != 2 {
			t.Fatalf("got %d, want 2", got)
		}
	})

	t.Run("fallback then unwrap", func(t *testing.T) {
		got := Nonef[int]("bad").OrFunc(func() int { return 5 }).ValueOr(-1)
		if got != 5 {
			t.Fatalf("got %d, want 5", got)
		}
	})

	t.Run("filter mismatch surfaces the supplied error", func(t *testing.T) {
		got := Some("1").Filter(func(s string) bool { return s == "2" }, reason.NewError("mismatch"))
		e, ok := got.Error()
		if !ok || e.Message() != "mismatch" {
			t.Fatalf("got %v, want None(Error='mismatch')", got)
		}
	})

	t.Run("lookup on a mapping", func(t *testing.T) {
		// The collection-helper idiom is plain client code over the façade.
		env := map[string]string{"a": "1", "b": "2", "c": "3"}
		lookup := func(key string) Option[string] {
			if v, ok := env[key]; ok {
				return Some(v)
			}
			return None[string](reason.NewError("key not found").WithMetadata("key", key))
		}

		if got := lookup("b"); !got.Contains("2") {
			t.Fatalf("lookup(b) = %v", got)
		}
		missing := lookup("z")
		e, ok := missing.Error()
		if !ok || e.Message() != "key not found" {
			t.Fatalf("lookup(z) = %v, want the configured not-found error", missing)
		}
		if e.Metadata()[0].Value != "z" {
			t.Fatal("not-found error must carry the key in metadata")
		}
	})
}
