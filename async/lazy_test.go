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

package async

import (
	"context"
	"testing"

	"dirpx.dev/doption/reason"
	"dirpx.dev/doption/violation"
)

func TestAsyncLazy_Resolve(t *testing.T) {
	ctx := context.Background()

	pass := Lazy(Completed(true), reason.NewSuccess("rule ok"), reason.NewError("rule failed"))
	if got := pass.Resolve(ctx); !got.IsSuccessful() {
		t.Fatalf("Resolve = %v, want successful", got)
	}

	fail := Lazy(Completed(false), nil, reason.NewError("rule failed"))
	got := fail.Resolve(ctx)
	if e, _ := got.Error(); e.Message() != "rule failed" {
		t.Fatalf("Resolve = %v, want the failure reason", got)
	}
}

func TestAsyncLazy_NothingAwaitsBeforeResolve(t *testing.T) {
	awaits := 0
	rule := Lazy(counting(Completed(true), &awaits), nil, reason.NewError("x"))
	if awaits != 0 {
		t.Fatal("predicate must not be awaited at construction")
	}
	rule.Resolve(context.Background())
	if awaits != 1 {
		t.Fatalf("predicate awaited %d times, want exactly once", awaits)
	}
}

func TestAsyncLazy_Preconditions(t *testing.T) {
	wantViolation(t, violation.NilArgument, func() {
		Lazy(nil, nil, reason.NewError("x"))
	})
	wantViolation(t, violation.NilArgument, func() {
		Lazy(Completed(true), nil, nil)
	})
	wantViolation(t, violation.InvalidOperation, func() {
		var zero LazyOption
		zero.Resolve(context.Background())
	})
}

func TestAsyncReduce_ShortCircuit(t *testing.T) {
	var evaluated []int
	rule := func(i int, pass bool) LazyOption {
		return Lazy(
			func(context.Context) bool { evaluated = append(evaluated, i); return pass },
			reason.Successf("rule %d ok", i),
			reason.Errorf("rule %d failed", i),
		)
	}

	task := Reduce([]LazyOption{rule(0, true), rule(1, false), rule(2, true)})
	if evaluated != nil {
		t.Fatal("no predicate may be awaited before the fold task is")
	}

	got := task(context.Background())
	if got.IsSuccessful() {
		t.Fatalf("Reduce = %v, want unsuccessful", got)
	}
	if e, _ := got.Error(); e.Message() != "rule 1 failed" {
		t.Fatalf("error = %v, want the first failing rule's error", e)
	}
	if len(evaluated) != 2 || evaluated[0] != 0 || evaluated[1] != 1 {
		t.Fatalf("evaluated = %v; rules after the first failure must never run", evaluated)
	}
}

func TestAsyncReduce_AllPass(t *testing.T) {
	rules := []LazyOption{
		Lazy(Completed(true), reason.NewSuccess("a"), reason.NewError("a failed")),
		Lazy(Completed(true), reason.NewSuccess("b"), reason.NewError("b failed")),
	}
	got := Reduce(rules)(context.Background())
	if !got.IsSuccessful() {
		t.Fatalf("Reduce = %v, want successful", got)
	}
	if s, _ := got.Success(); s.Message() != "b" {
		t.Fatalf("success = %v, want the last rule's", s)
	}
}

func TestAsyncReduce_EmptyPanicsEagerly(t *testing.T) {
	wantViolation(t, violation.InvalidArgument, func() { Reduce(nil) })
	wantViolation(t, violation.InvalidArgument, func() { Reduce([]LazyOption{}) })
}
