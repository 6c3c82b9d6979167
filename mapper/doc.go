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

// Package mapper provides deterministic, immutable mappings from error
// labels (dirpx.dev/doption/label) to transport-level statuses for HTTP
// and gRPC.
//
// # Overview
//
// In doption a failed reason carries a single dotted label, e.g.
// "unavailable.storage.pg.connect_timeout" or "validation.field.required".
// Transport layers (HTTP handlers, REST gateways, gRPC servers) need to
// turn that label into concrete status codes. Package mapper does that in
// a way that is:
//
//   - immutable — a Mapper is a snapshot, safe for concurrent reuse;
//   - overridable — callers can change library defaults per label class;
//   - prefix-aware — callers can add fine-grained rules for specific labels;
//   - dual — HTTP and gRPC are resolved with the same logic.
//
// # Resolution model
//
// A Mapper resolves statuses in the following order:
//
//  1. exact override for the full label;
//  2. longest-prefix-match (LPM) on the label's segments;
//  3. class default — keyed by the label's first segment;
//  4. global fallback (500 / codes.Internal).
//
// Prefix rules are segment-aware: labels are treated as "."-separated
// segments, and "*" matches exactly one segment. For example:
//
//	WithHTTPPrefix("unavailable.storage.pg", http.StatusServiceUnavailable)
//	WithHTTPPrefix("unavailable.storage.*.connect", http.StatusServiceUnavailable)
//
// The more specific prefix wins.
//
// # Library defaults
//
// The package ships with defaults for the well-known label classes,
// mapping them to standard net/http constants and grpc/codes values
// (e.g. label.Validation -> 400 / InvalidArgument, label.Auth -> 401 /
// Unauthenticated, label.Unavailable -> 503 / Unavailable). These can be
// adjusted at build time.
//
// # Building a mapper
//
// A Mapper is created once and reused:
//
//	m, err := mapper.New(
//	    mapper.WithHTTPOverride("auth.token.expired", http.StatusUnauthorized),
//	    mapper.WithHTTPPrefix("unavailable.storage.pg", 503),
//	)
//	if err != nil {
//	    // invalid prefix, etc.
//	}
//
//	st := m.Status("unavailable.storage.pg.connect_timeout")
//	// st.HTTP == 503, st.GRPC == codes.Unavailable
//
// # Diagnostics
//
// For debugging and tests, Mapper.Explain returns a human-readable trace of
// how a particular label was resolved, including which tier matched and, for
// prefixes, which pattern was used.
//
// This is intended for inspection and logging, not for stable machine parsing.
//
// # Immutability
//
// All user-provided inputs are copied during New. After construction, the
// Mapper does not observe further changes to the caller's maps or slices.
// This makes it safe to share a single instance across handlers, goroutines,
// and requests.
package mapper
