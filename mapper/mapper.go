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

package mapper

import (
	"fmt"
	"strings"

	"dirpx.dev/doption/apis"
	"dirpx.dev/doption/label"
	"dirpx.dev/doption/mapper/internal/segmenttrie"
	"google.golang.org/grpc/codes"
)

// New constructs an immutable apis.Mapper snapshot.
//
// The resulting Mapper is fully thread-safe and designed for long-lived
// reuse. Each build creates a self-contained instance — no shared references
// to global state or user-provided structures remain.
//
// Build process overview:
//
//  1. Seed the builder with library defaults (HTTP & gRPC, per class).
//  2. Apply user-provided options (defaults, overrides, prefix rules).
//  3. Normalize and validate all prefixes via label.Normalize.
//  4. Build the HTTP and gRPC segment tries supporting longest-prefix-match
//     with '*' as a single-segment wildcard.
//  5. Freeze all maps and tries into immutable copies.
//
// Errors indicate invalid prefixes or configuration issues.
func New(opts ...Option) (apis.Mapper, error) {
	b := newBuilder()

	// (1) Seed with package-level defaults, copied into builder-owned maps.
	for k, v := range defaultHTTP {
		b.httpDefaults[k] = v
	}
	for k, v := range defaultGRPC {
		// Keep values as int for builder uniformity; convert to codes.Code
		// when freezing the final snapshot.
		b.grpcDefaults[k] = int(v)
	}

	// (2) Apply user-supplied options.
	for _, opt := range opts {
		opt(b)
	}

	// (3) + (4) Compile the prefix rules into per-transport tries.
	httpTrie, err := compileTrie("HTTP", b.httpPrefixes, func(v int) int { return v })
	if err != nil {
		return nil, err
	}
	grpcTrie, err := compileTrie("gRPC", b.grpcPrefixes, func(v int) codes.Code { return codes.Code(v) })
	if err != nil {
		return nil, err
	}

	// (5) Freeze everything into a read-only snapshot.
	return &mapper{
		httpDefault:  freezeHTTP(b.httpDefaults),
		grpcDefault:  freezeGRPC(b.grpcDefaults),
		httpOverride: freezeHTTP(b.httpOverride),
		grpcOverride: freezeGRPC(b.grpcOverride),
		httpTrie:     httpTrie,
		grpcTrie:     grpcTrie,
		fallbackHTTP: b.fallbackHTTP,
		fallbackGRPC: b.fallbackGRPC,
	}, nil
}

// compileTrie normalizes, validates, and inserts one transport's prefix
// rules. A nil trie is returned when there are no rules.
func compileTrie[T any](transport string, rules []prefixRule, conv func(int) T) (*segmenttrie.Trie[T], error) {
	if len(rules) == 0 {
		return nil, nil
	}
	t := segmenttrie.New[T]()
	for _, r := range rules {
		p, err := normalizePrefix(r.prefix)
		if err != nil {
			return nil, fmt.Errorf("mapper: invalid %s prefix %q: %w", transport, r.prefix, err)
		}
		if err := t.Insert(p, conv(r.val)); err != nil {
			return nil, fmt.Errorf("mapper: cannot insert %s prefix %q: %w", transport, p, err)
		}
	}
	return t, nil
}

// mapper is the immutable snapshot combining class defaults, exact label
// overrides, and segment-aware prefix tries. Lookups are O(label depth) and
// safe for concurrent use once constructed.
type mapper struct {
	// httpDefault holds the base HTTP status per label class, used when no
	// prefix rule and no override are present.
	httpDefault map[label.Label]int

	// grpcDefault holds the base gRPC status per label class.
	grpcDefault map[label.Label]codes.Code

	// httpOverride and grpcOverride hold explicit statuses for exact full
	// labels. These take precedence over everything else.
	httpOverride map[label.Label]int
	grpcOverride map[label.Label]codes.Code

	// httpTrie and grpcTrie resolve statuses by longest-prefix-match over
	// the label ("." separated, "*" matches one segment). Nil when no
	// prefix rules were configured.
	httpTrie *segmenttrie.Trie[int]
	grpcTrie *segmenttrie.Trie[codes.Code]

	// fallbackHTTP and fallbackGRPC cover labels nothing else does,
	// including the empty label.
	fallbackHTTP int
	fallbackGRPC codes.Code
}

// HTTPStatus resolves an HTTP status for the given label.
//
// Resolution order (highest to lowest):
//
//  1. exact full-label override;
//  2. longest-prefix-match rule over the label;
//  3. class default (library or user-adjusted, keyed by first segment);
//  4. global fallback.
func (m *mapper) HTTPStatus(l label.Label) int {
	if v, ok := m.httpOverride[l]; ok {
		return v
	}
	if v, ok := m.httpTrie.Match(string(l)); ok {
		return v
	}
	if v, ok := m.httpDefault[l.Class()]; ok {
		return v
	}
	return m.fallbackHTTP
}

// GRPCStatus resolves a gRPC status for the given label, with the same
// precedence as HTTPStatus.
func (m *mapper) GRPCStatus(l label.Label) codes.Code {
	if v, ok := m.grpcOverride[l]; ok {
		return v
	}
	if v, ok := m.grpcTrie.Match(string(l)); ok {
		return v
	}
	if v, ok := m.grpcDefault[l.Class()]; ok {
		return v
	}
	return m.fallbackGRPC
}

// Status resolves both transports from the same label, so HTTP and gRPC
// decisions never diverge for a single logical error.
func (m *mapper) Status(l label.Label) apis.Status {
	return apis.Status{
		HTTP: m.HTTPStatus(l),
		GRPC: m.GRPCStatus(l),
	}
}

// Explain produces a textual trace of how the mapper resolved both statuses
// for a label.
//
// This is primarily a diagnostic tool: it shows which tier matched
// (override, prefix, default, or fallback) and, for prefix matches, which
// pattern was used.
//
// Example output:
//
//	label="unavailable.storage.pg.connect_timeout"
//	http: source=prefix pattern="unavailable.storage.pg" -> 503
//	grpc: source=default class="unavailable" -> UNAVAILABLE(14)
//
// source ∈ {override | prefix | default | fallback}. The output is meant
// for humans and golden tests, not for machine parsing.
func (m *mapper) Explain(l label.Label) string {
	var b strings.Builder
	_, _ = fmt.Fprintf(&b, "label=%q\n", l)
	_, _ = fmt.Fprintln(&b, m.explainHTTP(l))
	_, _ = fmt.Fprintln(&b, m.explainGRPC(l))
	return strings.TrimSuffix(b.String(), "\n")
}

// explainHTTP walks the same tiers as HTTPStatus and formats the first hit.
func (m *mapper) explainHTTP(l label.Label) string {
	if v, ok := m.httpOverride[l]; ok {
		return fmt.Sprintf("http: source=override -> %d", v)
	}
	if v, ok, pat := m.httpTrie.MatchWithPattern(string(l)); ok {
		return fmt.Sprintf("http: source=prefix pattern=%q -> %d", pat, v)
	}
	if v, ok := m.httpDefault[l.Class()]; ok {
		return fmt.Sprintf("http: source=default class=%q -> %d", l.Class(), v)
	}
	return fmt.Sprintf("http: source=fallback -> %d", m.fallbackHTTP)
}

// explainGRPC is explainHTTP for the gRPC tier set.
func (m *mapper) explainGRPC(l label.Label) string {
	if v, ok := m.grpcOverride[l]; ok {
		return fmt.Sprintf("grpc: source=override -> %s", grpcName(v))
	}
	if v, ok, pat := m.grpcTrie.MatchWithPattern(string(l)); ok {
		return fmt.Sprintf("grpc: source=prefix pattern=%q -> %s", pat, grpcName(v))
	}
	if v, ok := m.grpcDefault[l.Class()]; ok {
		return fmt.Sprintf("grpc: source=default class=%q -> %s", l.Class(), grpcName(v))
	}
	return fmt.Sprintf("grpc: source=fallback -> %s", grpcName(m.fallbackGRPC))
}

// grpcName renders a gRPC code as NAME(number) for Explain output.
func grpcName(c codes.Code) string {
	return fmt.Sprintf("%s(%d)", strings.ToUpper(c.String()), int(c))
}

// normalizePrefix brings a rule prefix to canonical label form and checks
// its segments. Wildcard segments pass through label normalization
// untouched, so the label package's validator cannot be reused verbatim;
// structural checks happen here and in the trie.
func normalizePrefix(raw string) (string, error) {
	p := label.Normalize(raw)
	if p == "" {
		return "", fmt.Errorf("empty prefix")
	}
	allWild := true
	for _, seg := range strings.Split(p, ".") {
		if !validPrefixSegment(seg) {
			return "", fmt.Errorf("invalid segment %q", seg)
		}
		if seg != "*" {
			allWild = false
		}
	}
	if allWild {
		return "", fmt.Errorf("prefix cannot consist of '*' only")
	}
	return p, nil
}

// validPrefixSegment reports whether seg may appear in a rule prefix:
// the wildcard "*", or [a-z][a-z0-9_]*.
func validPrefixSegment(seg string) bool {
	if seg == "*" {
		return true
	}
	if seg == "" || seg[0] < 'a' || seg[0] > 'z' {
		return false
	}
	for i := 1; i < len(seg); i++ {
		c := seg[i]
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '_' {
			continue
		}
		return false
	}
	return true
}
