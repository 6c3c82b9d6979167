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

package segmenttrie

import "testing"

func TestInsertAndMatch_Simple(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("unavailable.storage.pg", 503))
	must(t, tr.Insert("auth.jwt.verify", 401))
	must(t, tr.Insert("validation.field", 400))

	if v, ok, p := tr.MatchWithPattern("unavailable.storage.pg.connect"); !ok || v != 503 || p != "unavailable.storage.pg" {
		t.Fatalf("match => ok=%v v=%v p=%q; want ok=true v=503 p=unavailable.storage.pg", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("auth.jwt.verify"); !ok || v != 401 || p != "auth.jwt.verify" {
		t.Fatalf("exact-length key => ok=%v v=%v p=%q; want ok=true v=401", ok, v, p)
	}
	if v, ok, p := tr.MatchWithPattern("validation.field.required"); !ok || v != 400 || p != "validation.field" {
		t.Fatalf("match => ok=%v v=%v p=%q; want 400, validation.field", ok, v, p)
	}
	if _, ok := tr.Match("conflict.version"); ok {
		t.Fatal("unrelated key must not match")
	}
}

func TestWildcard_OneSegment(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.*.verify", 498))
	must(t, tr.Insert("auth.jwt.verify", 401))

	// an exact rule beats a wildcard rule of the same depth
	if v, ok, p := tr.MatchWithPattern("auth.jwt.verify"); !ok || v != 401 || p != "auth.jwt.verify" {
		t.Fatalf("exact must win over wildcard, got ok=%v v=%v p=%q", ok, v, p)
	}
	// the wildcard covers any other middle segment
	if v, ok, p := tr.MatchWithPattern("auth.saml.verify.token"); !ok || v != 498 || p != "auth.*.verify" {
		t.Fatalf("wildcard match failed: ok=%v v=%v p=%q", ok, v, p)
	}
	// "*" matches exactly one segment, never zero
	if _, ok := tr.Match("auth.verify"); ok {
		t.Fatal("wildcard must not match zero segments")
	}
}

func TestLPM_PrefersDeeperAcrossBranches(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("a.*.c", 7))
	// a shallower exact branch that a greedy walk would get stuck on
	must(t, tr.Insert("a.b", 1))

	if v, ok, p := tr.MatchWithPattern("a.b.c"); !ok || v != 7 || p != "a.*.c" {
		t.Fatalf("LPM must choose the deeper wildcard path: ok=%v v=%v p=%q", ok, v, p)
	}
}

func TestInsert_ReplacesValue(t *testing.T) {
	tr := New[int]()
	must(t, tr.Insert("auth.jwt", 401))
	must(t, tr.Insert("auth.jwt", 440))

	if v, _, _ := tr.MatchWithPattern("auth.jwt.expired"); v != 440 {
		t.Fatalf("re-insert must replace the value, got %d", v)
	}
}

func TestInvalidInputs(t *testing.T) {
	tr := New[int]()
	for _, bad := range []string{"", "UPPER.case", "a..b", "*", "*.*", "a b"} {
		if err := tr.Insert(bad, 1); err == nil {
			t.Fatalf("Insert(%q) must fail", bad)
		}
	}

	must(t, tr.Insert("auth.jwt", 401))
	if _, ok := tr.Match("UPPER.case"); ok {
		t.Fatal("invalid key must not match")
	}
	if _, ok := tr.Match("a..b"); ok {
		t.Fatal("key with empty segment must not match")
	}
}

func must(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
