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

	"dirpx.dev/doption"
	"dirpx.dev/doption/reason"
	"dirpx.dev/doption/violation"
)

func TestOutcomeElse(t *testing.T) {
	ctx := context.Background()
	alt := doption.Successful(reason.NewSuccess("fallback"))

	task := OutcomeElse(Completed(doption.Unsuccessfulf("gone")), alt)
	if got := task(ctx); !got.IsSuccessful() {
		t.Fatalf("awaited %v, want the alternative", got)
	}

	ok := doption.Successful(reason.NewSuccess("original"))
	task = OutcomeElse(Completed(ok), alt)
	if s, _ := task(ctx).Success(); s.Message() != "original" {
		t.Fatal("successful outcome must pass through unchanged")
	}
}

func TestOutcomeElseTask(t *testing.T) {
	ctx := context.Background()

	task := OutcomeElseTask(Completed(doption.Unsuccessfulf("gone")), func() Task[doption.Outcome] {
		return Completed(doption.Successful(reason.NewSuccess("fallback")))
	})
	if got := task(ctx); !got.IsSuccessful() {
		t.Fatalf("awaited %v, want the alternative", got)
	}

	task = OutcomeElseTask(Completed(doption.Successful(nil)), func() Task[doption.Outcome] {
		t.Fatal("factory must not run when successful")
		return nil
	})
	if got := task(ctx); !got.IsSuccessful() {
		t.Fatalf("awaited %v, want the original", got)
	}

	task = OutcomeElseTask(Completed(doption.Unsuccessfulf("gone")), func() Task[doption.Outcome] { return nil })
	wantViolation(t, violation.InvalidOperation, func() { task(ctx) })
}

func TestOutcomeMatch(t *testing.T) {
	ctx := context.Background()

	task := OutcomeMatch(Completed(doption.Successful(reason.NewSuccess("ok"))),
		func(s *reason.Success) string { return s.Message() },
		func(*reason.Error) string { return "none" },
	)
	if got := task(ctx); got != "ok" {
		t.Fatalf("awaited %q, want ok", got)
	}
}

func TestOutcomeFlatMapTask(t *testing.T) {
	ctx := context.Background()

	t.Run("chains successful outcomes", func(t *testing.T) {
		task := OutcomeFlatMapTask(Completed(doption.Successful(nil)), func() Task[doption.Outcome] {
			return Completed(doption.Successful(reason.NewSuccess("step 2")))
		})
		if s, _ := task(ctx).Success(); s.Message() != "step 2" {
			t.Fatal("chained success must surface")
		}
	})

	t.Run("unsuccessful source short-circuits", func(t *testing.T) {
		original := reason.NewError("gone")
		task := OutcomeFlatMapTask(Completed(doption.Unsuccessful(original)), func() Task[doption.Outcome] {
			t.Fatal("mapping must not run on unsuccessful")
			return nil
		})
		if e, _ := task(ctx).Error(); e != original {
			t.Fatal("original error must propagate unchanged")
		}
	})

	t.Run("inner failure rewrites causally with subsequent", func(t *testing.T) {
		inner := reason.NewError("step failed")
		subsequent := reason.NewError("pipeline aborted")
		task := OutcomeFlatMapTask(Completed(doption.Successful(nil)), func() Task[doption.Outcome] {
			return Completed(doption.Unsuccessful(inner))
		}, subsequent)
		e, _ := task(ctx).Error()
		if e != subsequent || len(e.Antecedents()) != 1 || e.Antecedents()[0] != inner {
			t.Fatal("causal rewrite broken")
		}
	})

	t.Run("nil task handle panics", func(t *testing.T) {
		task := OutcomeFlatMapTask(Completed(doption.Successful(nil)), func() Task[doption.Outcome] { return nil })
		wantViolation(t, violation.InvalidOperation, func() { task(ctx) })
	})
}
